package queries

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ValidatePromotionQueryHandler evaluates promo codes through the repository so
// the rules stay in the promotion aggregate.
type ValidatePromotionQueryHandler struct {
	promotions ports.PromotionRepository
	now        func() time.Time
}

// NewValidatePromotionQueryHandler creates the handler; now defaults to time.Now.
func NewValidatePromotionQueryHandler(promotions ports.PromotionRepository, now func() time.Time) ValidatePromotionQueryHandler {
	if now == nil {
		now = time.Now
	}
	return ValidatePromotionQueryHandler{promotions: promotions, now: now}
}

// Handle never fails for a rejected code; the rejection is the Reason.
func (h ValidatePromotionQueryHandler) Handle(ctx context.Context, query ValidatePromotionQuery) (ValidatePromotionResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidatePromotionResponse{}, err
	}

	promo, err := h.promotions.GetByCode(ctx, query.code)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return rejected(promotion.ReasonNotFound), nil
	}
	if err != nil {
		return ValidatePromotionResponse{}, err
	}

	discount, err := promo.Evaluate(query.amount, h.now())
	var rejection *promotion.RejectionError
	if errors.As(err, &rejection) {
		return rejected(rejection.Reason), nil
	}
	if err != nil {
		return ValidatePromotionResponse{}, err
	}

	return ValidatePromotionResponse{Valid: true, Discount: discount}, nil
}

func rejected(reason promotion.Reason) ValidatePromotionResponse {
	return ValidatePromotionResponse{Valid: false, Discount: decimal.Zero, Reason: reason}
}
