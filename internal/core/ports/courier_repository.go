// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work, the geocoder and the notification sinks.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by its identifier.
	// Returns *errs.ObjectNotFoundError when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetForUpdate is Get with the courier row locked until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllEligibleForUpdate returns every active and available courier ordered by
	// id, with their rows locked until the transaction ends. Two concurrent
	// assignments therefore serialize on the same couriers and each one observes
	// the workload written by the other.
	GetAllEligibleForUpdate(ctx context.Context) ([]*courier.Courier, error)
}
