// Package order implements the order lifecycle domain model.
//
// The package centers on the Order aggregate and its Status state machine:
// a fixed directed graph of fourteen workflow statuses in which every change
// is validated against the transition table and recorded in an append-only
// audit history. Delivered and Cancelled are terminal; the RTO branch models
// return-to-origin logistics, with RTO-Delivered permitting a single re-ship
// edge back to Pending.
//
// Transitions carry optional metadata; fields like the assigned carrier or
// the AWB tracking reference are copied onto the order only by transitions
// into the statuses they belong to, so stale values from earlier requests
// never leak onto unrelated changes.
//
// Lifecycle metrics (processing, transit, and total durations) are derived
// on demand from the history; milestones that never happened leave their
// metrics absent rather than zero.
package order
