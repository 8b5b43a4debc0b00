package ports

import (
	"context"

	"fooddelivery/internal/core/domain/services"
)

// PricingProvider returns the current tariff configuration. Implementations must
// not cache it across calls.
type PricingProvider interface {
	Current(ctx context.Context) (services.TariffConfig, error)
}
