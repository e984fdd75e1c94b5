package order

import "time"

// SystemActor is the actor recorded on transitions when the caller does not
// identify a user.
const SystemActor = "system"

// Transition is an immutable audit record of a single status change. Records
// are only ever appended to an order's history, never modified or removed,
// and their timestamps are monotonically non-decreasing within one order.
type Transition struct {
	// From is the status the order held before the change.
	From Status

	// To is the status the order moved into.
	To Status

	// Timestamp is when the change was applied.
	Timestamp time.Time

	// User identifies the actor who requested the change.
	// Defaults to SystemActor.
	User string

	// Reason is an optional short explanation for the change.
	Reason string

	// Notes carries optional free-form operator notes.
	Notes string
}

// TransitionMeta carries the optional metadata supplied with a transition
// request. User, Reason, and Notes are recorded on the audit record;
// the remaining fields are copied onto the order only when the target status
// matches their applicability (see Order.Transition).
type TransitionMeta struct {
	User   string
	Reason string
	Notes  string

	// Carrier is applied only when transitioning into CarrierAssigned.
	Carrier string

	// AWB is applied only when transitioning into LabelGenerated.
	AWB string

	// DeliveryDate is applied only when transitioning into Delivered.
	DeliveryDate *time.Time

	// RTOReason is applied only when transitioning into an RTO status.
	RTOReason string
}

// actor returns the metadata's user, or SystemActor when unset.
func (m TransitionMeta) actor() string {
	if m.User == "" {
		return SystemActor
	}
	return m.User
}
