package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRecordCarrierPerformanceCommandIsNotConstructed = errors.New(
	"RecordCarrierPerformanceCommand must be created via NewRecordCarrierPerformanceCommand constructor",
)

// RecordCarrierPerformanceCommand represents one observed shipment outcome
// reported against a carrier in a zone. Outcomes accumulate into the
// per-zone performance history that feeds reliability scoring.
type RecordCarrierPerformanceCommand struct { //nolint:recvcheck //using for validation
	carrierID string
	zone      kernel.Zone
	outcome   carrier.Outcome

	guard guard.ConstructorGuard
}

// NewRecordCarrierPerformanceCommand creates a command to record a shipment
// outcome. Validates that the carrier ID is present, the zone is valid, and
// the observed delivery days and cost are not negative.
func NewRecordCarrierPerformanceCommand(
	carrierID string,
	zone kernel.Zone,
	outcome carrier.Outcome,
) (RecordCarrierPerformanceCommand, error) {
	performanceCommand := RecordCarrierPerformanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		performanceCommand.setCarrierID(carrierID),
		performanceCommand.setZone(zone),
		performanceCommand.setOutcome(outcome),
	); err != nil {
		return RecordCarrierPerformanceCommand{}, err
	}

	return performanceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordCarrierPerformanceCommandIsNotConstructed if validation fails.
func (c RecordCarrierPerformanceCommand) Validate() error {
	return c.guard.Validate(ErrRecordCarrierPerformanceCommandIsNotConstructed)
}

// CarrierID returns the carrier the outcome is reported against.
func (c RecordCarrierPerformanceCommand) CarrierID() string {
	return c.carrierID
}

// Zone returns the destination zone of the shipment.
func (c RecordCarrierPerformanceCommand) Zone() kernel.Zone {
	return c.zone
}

// Outcome returns the observed shipment result.
func (c RecordCarrierPerformanceCommand) Outcome() carrier.Outcome {
	return c.outcome
}

func (c *RecordCarrierPerformanceCommand) setCarrierID(carrierID string) error {
	if carrierID == "" {
		return errs.NewValueIsRequiredError("carrier id")
	}

	c.carrierID = carrierID
	return nil
}

func (c *RecordCarrierPerformanceCommand) setZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}

	c.zone = zone
	return nil
}

func (c *RecordCarrierPerformanceCommand) setOutcome(outcome carrier.Outcome) error {
	if outcome.DeliveryDays < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery days is invalid", fmt.Errorf("%v is negative", outcome.DeliveryDays),
		)
	}
	if outcome.Cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cost is invalid", fmt.Errorf("%v is negative", outcome.Cost),
		)
	}

	c.outcome = outcome
	return nil
}
