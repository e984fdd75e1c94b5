// Package kernel provides shared value objects used across the fulfillment
// domain model. These are the building blocks other domain packages compose:
//
//   - UUID: validated unique identifier for aggregates
//   - Zone: geographic tier used for carrier rates, SLAs, and statistics
//
// Value objects in this package are immutable, validate themselves through
// their constructors, and are safe to copy and compare by value.
package kernel
