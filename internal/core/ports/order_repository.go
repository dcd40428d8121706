package ports

import (
	"context"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. A duplicate order code surfaces as a
	// ConflictError, including when a concurrent insert wins the race and
	// the store-level unique constraint fires.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns an ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order by its human-readable code.
	// Returns an ObjectNotFoundError when no order carries the code.
	GetByCode(ctx context.Context, code string) (*order.Order, error)
}
