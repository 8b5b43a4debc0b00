package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"
)

// PromotionRepository defines the persistence contract for promotions.
type PromotionRepository interface {
	// Add persists a new promotion.
	Add(ctx context.Context, promotion *promotion.Promotion) error

	// GetByCode looks a promotion up by its normalized code.
	// Returns *errs.ObjectNotFoundError when it does not exist.
	GetByCode(ctx context.Context, code string) (*promotion.Promotion, error)

	// IncrementUsage records that orderID redeemed the promotion and increments the
	// usage counter atomically in storage. Calling it again for the same order is
	// a no-op. Returns *promotion.RejectionError with ReasonUsageLimitReached when
	// the counter already sits at the usage limit.
	IncrementUsage(ctx context.Context, promotionID, orderID kernel.UUID) error
}
