// Package ports defines the contracts between the application core and
// infrastructure adapters. These interfaces establish dependency inversion
// boundaries, enabling testability and adapter substitution.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// together with their full status history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order including its status history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMany retrieves the orders that exist among the given identifiers,
	// preserving the input sequence. Unknown identifiers are skipped; callers
	// that must account for them compare the result against the input.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	// Used by reporting and batch workflows.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
