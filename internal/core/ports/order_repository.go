package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateIfStatus persists the mutable state of the order only if its stored
	// status still equals expected. When another writer moved the order first,
	// *errs.ConcurrentUpdateError is returned and nothing is written.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// UpdatePayment persists the payment status only.
	UpdatePayment(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	// Returns *errs.ObjectNotFoundError when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus returns up to limit orders in the given status, oldest first.
	GetAllInStatus(ctx context.Context, status order.Status, limit int) ([]*order.Order, error)

	// GetAllActive returns every order that is neither delivered nor cancelled.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllActiveByCourier returns the non-terminal orders assigned to courierID.
	GetAllActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)

	// CountActiveByCourier returns the workload of each given courier. Couriers
	// without active orders are present with 0.
	CountActiveByCourier(ctx context.Context, courierIDs []kernel.UUID) (map[kernel.UUID]int, error)
}
