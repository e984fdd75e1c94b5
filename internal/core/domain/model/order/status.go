package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// Forward path:
//
//	Pending ──> MTP-Applied ──> QA-Passed ──> Carrier-Assigned ──> Label-Generated
//	   ──> Picked-Up ──> In-Transit ──> Out-for-Delivery ──> Delivered
//
// Reverse logistics branch off Picked-Up / In-Transit / Out-for-Delivery:
//
//	RTO-Initiated ──> RTO-In-Transit ──> RTO-Delivered ──> Pending (re-ship)
//
// Delivered and Cancelled are terminal. On-Hold parks an order until it is
// released back to Pending or cancelled.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order enters the system.
	Pending

	// MTPApplied indicates manufacturer transfer pricing has been applied.
	MTPApplied

	// QAPassed indicates the order passed quality inspection.
	QAPassed

	// CarrierAssigned indicates a shipping carrier has been selected.
	CarrierAssigned

	// LabelGenerated indicates a shipping label and AWB have been issued.
	LabelGenerated

	// PickedUp indicates the carrier collected the shipment.
	PickedUp

	// InTransit indicates the shipment is moving through the carrier network.
	InTransit

	// OutForDelivery indicates the shipment is on the last-mile vehicle.
	OutForDelivery

	// Delivered indicates successful delivery. Terminal.
	Delivered

	// RTOInitiated indicates a failed delivery started the return-to-origin path.
	RTOInitiated

	// RTOInTransit indicates the return shipment is moving back to origin.
	RTOInTransit

	// RTODelivered indicates the return shipment arrived at origin.
	// Permits a single edge back to Pending for a re-ship cycle.
	RTODelivered

	// Cancelled indicates the order was cancelled. Terminal.
	Cancelled

	// OnHold parks an order outside the forward flow.
	OnHold
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		MTPApplied:      "MTP-Applied",
		QAPassed:        "QA-Passed",
		CarrierAssigned: "Carrier-Assigned",
		LabelGenerated:  "Label-Generated",
		PickedUp:        "Picked-Up",
		InTransit:       "In-Transit",
		OutForDelivery:  "Out-for-Delivery",
		Delivered:       "Delivered",
		RTOInitiated:    "RTO-Initiated",
		RTOInTransit:    "RTO-In-Transit",
		RTODelivered:    "RTO-Delivered",
		Cancelled:       "Cancelled",
		OnHold:          "On-Hold",
	}
}

// getValidTransitions returns the fixed transition table: each source status
// maps to its explicit set of permitted destinations. Statuses absent from a
// source's set are unreachable from it in a single step; Delivered and
// Cancelled have no outgoing edges.
func getValidTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:         {MTPApplied, QAPassed, CarrierAssigned, Cancelled, OnHold},
		MTPApplied:      {QAPassed, CarrierAssigned, Cancelled, OnHold},
		QAPassed:        {CarrierAssigned, Cancelled},
		CarrierAssigned: {LabelGenerated, Pending, Cancelled},
		LabelGenerated:  {PickedUp, CarrierAssigned, Cancelled},
		PickedUp:        {InTransit, RTOInitiated},
		InTransit:       {OutForDelivery, RTOInitiated},
		OutForDelivery:  {Delivered, RTOInitiated},
		Delivered:       {},
		RTOInitiated:    {RTOInTransit},
		RTOInTransit:    {RTODelivered},
		RTODelivered:    {Pending},
		Cancelled:       {},
		OnHold:          {Pending, Cancelled},
	}
}

// AllStatuses returns every valid status in workflow order.
func AllStatuses() []Status {
	return []Status{
		Pending, MTPApplied, QAPassed, CarrierAssigned, LabelGenerated,
		PickedUp, InTransit, OutForDelivery, Delivered,
		RTOInitiated, RTOInTransit, RTODelivered, Cancelled, OnHold,
	}
}

// StatusFromString parses a status label ("Pending", "RTO-In-Transit", ...)
// into a Status. Used by the HTTP adapter and persistence mapping.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Returns:
//   - nil if the status is one of the fourteen workflow statuses
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s),
		)
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable status label, or "Unknown" for invalid
// values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
// Delivered and Cancelled are the only terminal statuses.
func (s Status) IsTerminal() bool {
	return len(getValidTransitions()[s]) == 0 && s.Validate() == nil
}

// IsRTO reports whether the status belongs to the return-to-origin path.
// RTO statuses are the only ones onto which an RTO reason is copied.
func (s Status) IsRTO() bool {
	return strings.HasPrefix(s.String(), "RTO")
}

// IsValidTransition reports whether target is in the permitted-destination
// set for s. Unknown or invalid statuses permit nothing.
func (s Status) IsValidTransition(target Status) bool {
	for _, next := range getValidTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// ValidNextStatuses returns the permitted-destination set for s. The result
// drives UI choice lists and populates failure diagnostics; it is empty for
// terminal, Unknown, and invalid statuses. The returned slice is a copy and
// safe to mutate.
func (s Status) ValidNextStatuses() []Status {
	next := getValidTransitions()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}
