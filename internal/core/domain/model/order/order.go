package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrHistoryIsInconsistent is returned when a restored order's status
	// does not match the last history record.
	ErrHistoryIsInconsistent = errors.New("order status must equal the last history record's destination")
)

// InvalidTransitionError reports a status change that the transition table
// does not permit. ValidOptions carries the permitted-destination set for
// the order's current status so callers can present choices or retry.
type InvalidTransitionError struct {
	From         Status
	To           Status
	ValidOptions []Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// Order represents a fulfillment order. It is the aggregate root that owns
// the order lifecycle: every status change flows through Transition, which
// validates the change against the transition table and appends an immutable
// audit record.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier
//   - status always equals the destination of the last history record
//   - History is append-only and its timestamps never decrease
//   - Status-specific fields (carrier, awb, rtoReason, deliveryDate) are
//     only written by transitions into the statuses they belong to
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// history is the append-only audit trail of status changes
	history []Transition

	// carrier is the carrier assigned to the order (set on Carrier-Assigned)
	carrier string

	// awb is the carrier tracking reference (set on Label-Generated)
	awb string

	// rtoReason explains why the order entered the RTO path
	rtoReason string

	// deliveryDate is the confirmed delivery date (set on Delivered)
	deliveryDate *time.Time

	// metadata carries free-form caller attributes
	metadata map[string]string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. The history is seeded with
// a creation record whose destination is Pending, so the status/history
// invariant holds from birth and lifecycle metrics can locate the creation
// timestamp.
//
// Parameters:
//   - id: unique identifier for the order (must be valid)
//   - metadata: optional free-form caller attributes (may be nil)
//
// Returns:
//   - *Order: the created order if validation passes
//   - error: validation error if the identifier is invalid
func NewOrder(id kernel.UUID, metadata map[string]string) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:     id,
		status: Pending,
		history: []Transition{{
			From:      Unknown,
			To:        Pending,
			Timestamp: time.Now().UTC(),
			User:      SystemActor,
			Reason:    "order created",
		}},
		metadata:      metadata,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. It validates the
// identifier and status and enforces the invariant that the status equals
// the destination of the last history record (when history is non-empty).
func RestoreOrder(
	id kernel.UUID,
	status Status,
	history []Transition,
	carrier string,
	awb string,
	rtoReason string,
	deliveryDate *time.Time,
	metadata map[string]string,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if len(history) > 0 && history[len(history)-1].To != status {
		return nil, ErrHistoryIsInconsistent
	}

	return &Order{
		id:            id,
		status:        status,
		history:       history,
		carrier:       carrier,
		awb:           awb,
		rtoReason:     rtoReason,
		deliveryDate:  deliveryDate,
		metadata:      metadata,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Call it when receiving orders from external sources before operating on
// them.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the order's audit trail, oldest first.
func (o *Order) History() []Transition {
	out := make([]Transition, len(o.history))
	copy(out, o.history)
	return out
}

// Carrier returns the assigned carrier identifier, or "" when unassigned.
func (o *Order) Carrier() string {
	return o.carrier
}

// AWB returns the carrier tracking reference, or "" before label generation.
func (o *Order) AWB() string {
	return o.awb
}

// RTOReason returns the recorded return-to-origin reason, or "".
func (o *Order) RTOReason() string {
	return o.rtoReason
}

// DeliveryDate returns the confirmed delivery date, or nil.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// Metadata returns the order's free-form attributes. May be nil.
func (o *Order) Metadata() map[string]string {
	return o.metadata
}

// ValidNextStatuses returns the permitted destinations from the order's
// current status.
func (o *Order) ValidNextStatuses() []Status {
	return o.status.ValidNextStatuses()
}

// Transition applies a single status change.
//
// The change is validated against the transition table; an impermissible
// change fails with *InvalidTransitionError carrying the current
// valid-destination set, and the order is left untouched. On success a new
// audit record is appended with a timestamp clamped to be non-decreasing,
// the status is updated, and metadata fields are copied onto the order only
// when the target status matches their applicability:
//
//   - meta.Carrier      -> CarrierAssigned only
//   - meta.AWB          -> LabelGenerated only
//   - meta.DeliveryDate -> Delivered only
//   - meta.RTOReason    -> any RTO-* status
//
// The conditional copy prevents stale fields from earlier requests leaking
// onto unrelated status changes.
func (o *Order) Transition(target Status, meta TransitionMeta) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if !o.status.IsValidTransition(target) {
		return &InvalidTransitionError{
			From:         o.status,
			To:           target,
			ValidOptions: o.status.ValidNextStatuses(),
		}
	}

	ts := time.Now().UTC()
	if n := len(o.history); n > 0 && ts.Before(o.history[n-1].Timestamp) {
		// Clock went backwards; keep history timestamps non-decreasing.
		ts = o.history[n-1].Timestamp
	}

	o.history = append(o.history, Transition{
		From:      o.status,
		To:        target,
		Timestamp: ts,
		User:      meta.actor(),
		Reason:    meta.Reason,
		Notes:     meta.Notes,
	})
	o.status = target

	if target == CarrierAssigned && meta.Carrier != "" {
		o.carrier = meta.Carrier
	}
	if target == LabelGenerated && meta.AWB != "" {
		o.awb = meta.AWB
	}
	if target == Delivered && meta.DeliveryDate != nil {
		o.deliveryDate = meta.DeliveryDate
	}
	if target.IsRTO() && meta.RTOReason != "" {
		o.rtoReason = meta.RTOReason
	}

	return nil
}
