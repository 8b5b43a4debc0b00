package promotion_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func params() promotion.Params {
	return promotion.Params{
		ID:             kernel.NewUUID(),
		Code:           " verano10 ",
		DiscountType:   promotion.Percentage,
		Value:          decimal.NewFromInt(10),
		StartsAt:       ptr(now.Add(-24 * time.Hour)),
		EndsAt:         ptr(now.Add(24 * time.Hour)),
		UsageLimit:     ptr(5),
		MinOrderAmount: decimal.NewFromInt(20),
		Active:         true,
	}
}

func restore(t *testing.T, mutate func(*promotion.Params)) *promotion.Promotion {
	t.Helper()
	p := params()
	if mutate != nil {
		mutate(&p)
	}
	promo, err := promotion.RestorePromotion(p)
	require.NoError(t, err)
	return promo
}

func TestNewPromotion(t *testing.T) {
	t.Run("should normalize code and reset usage", func(t *testing.T) {
		p := params()
		p.UsageCount = 3

		promo, err := promotion.NewPromotion(p)

		require.NoError(t, err)
		require.NoError(t, promo.Validate())
		assert.Equal(t, "VERANO10", promo.Code())
		assert.Zero(t, promo.UsageCount())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		_, err := promotion.NewPromotion(promotion.Params{
			Code:           " ",
			DiscountType:   "bogo",
			MinOrderAmount: decimal.NewFromInt(-1),
			StartsAt:       ptr(now),
			EndsAt:         ptr(now.Add(-time.Hour)),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "code")
		assert.Contains(t, err.Error(), "discount type")
		assert.Contains(t, err.Error(), "validity window")
		assert.Contains(t, err.Error(), "minimum order amount")
	})

	t.Run("percentage above 100 is out of range", func(t *testing.T) {
		p := params()
		p.Value = decimal.NewFromInt(150)

		_, err := promotion.NewPromotion(p)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestPromotion_Evaluate(t *testing.T) {
	t.Run("percentage discount", func(t *testing.T) {
		promo := restore(t, nil)

		discount, err := promo.Evaluate(decimal.RequireFromString("64.95"), now)

		require.NoError(t, err)
		assert.Equal(t, "6.5", discount.String())
	})

	t.Run("fixed discount capped at amount", func(t *testing.T) {
		promo := restore(t, func(p *promotion.Params) {
			p.DiscountType = promotion.Fixed
			p.Value = decimal.NewFromInt(50)
			p.MinOrderAmount = decimal.Zero
		})

		discount, err := promo.Evaluate(decimal.RequireFromString("30.00"), now)

		require.NoError(t, err)
		assert.Equal(t, "30", discount.String())
	})

	t.Run("unbounded window and usage", func(t *testing.T) {
		promo := restore(t, func(p *promotion.Params) {
			p.StartsAt, p.EndsAt, p.UsageLimit = nil, nil, nil
			p.UsageCount = 1000
		})

		_, err := promo.Evaluate(decimal.NewFromInt(100), now)

		require.NoError(t, err)
	})

	tests := []struct {
		name   string
		mutate func(*promotion.Params)
		amount decimal.Decimal
		reason promotion.Reason
	}{
		{"inactive", func(p *promotion.Params) { p.Active = false }, decimal.NewFromInt(100), promotion.ReasonInactive},
		{"not started", func(p *promotion.Params) { p.StartsAt = ptr(now.Add(time.Minute)) }, decimal.NewFromInt(100), promotion.ReasonNotStarted},
		{"expired", func(p *promotion.Params) { p.EndsAt = ptr(now.Add(-time.Minute)) }, decimal.NewFromInt(100), promotion.ReasonExpired},
		{"usage limit reached", func(p *promotion.Params) { p.UsageCount = 5 }, decimal.NewFromInt(100), promotion.ReasonUsageLimitReached},
		{"below minimum", nil, decimal.NewFromInt(19), promotion.ReasonBelowMinimum},
		{
			"inactive wins over every later rule",
			func(p *promotion.Params) {
				p.Active = false
				p.EndsAt = ptr(now.Add(-time.Minute))
				p.UsageCount = 9
			},
			decimal.NewFromInt(1),
			promotion.ReasonInactive,
		},
		{
			"expired wins over usage and minimum",
			func(p *promotion.Params) {
				p.EndsAt = ptr(now.Add(-time.Minute))
				p.UsageCount = 9
			},
			decimal.NewFromInt(1),
			promotion.ReasonExpired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo := restore(t, tt.mutate)

			discount, err := promo.Evaluate(tt.amount, now)

			var rejection *promotion.RejectionError
			require.ErrorAs(t, err, &rejection)
			require.ErrorIs(t, err, promotion.ErrPromotionRejected)
			assert.Equal(t, tt.reason, rejection.Reason)
			assert.Equal(t, "VERANO10", rejection.Code)
			assert.True(t, discount.IsZero())
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "PROMO", promotion.NormalizeCode("  promo\t"))
}
