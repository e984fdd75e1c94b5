// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the fulfillment system. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - CarrierRouter: scores and selects the optimal shipping carrier for a
//     shipment from cost, SLA, and observed reliability
//   - BulkTransitioner: applies one status change across a batch of orders
//     with per-order outcome accounting
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
