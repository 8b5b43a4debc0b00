package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPromotionRepository struct{ mock.Mock }

func (m *MockPromotionRepository) Add(ctx context.Context, p *promotion.Promotion) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPromotionRepository) GetByCode(ctx context.Context, code string) (*promotion.Promotion, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promotion.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) IncrementUsage(ctx context.Context, promotionID, orderID kernel.UUID) error {
	return m.Called(ctx, promotionID, orderID).Error(0)
}

func TestValidatePromotionQueryHandler_Handle(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	amount := decimal.RequireFromString("80.00")

	newPromo := func(t *testing.T, p promotion.Params) *promotion.Promotion {
		t.Helper()
		p.ID = kernel.NewUUID()
		p.Code = "PROMO"
		promo, err := promotion.RestorePromotion(p)
		require.NoError(t, err)
		return promo
	}

	t.Run("percentage discount", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockPromotionRepository)
		repo.On("GetByCode", ctx, "PROMO").Return(newPromo(t, promotion.Params{
			DiscountType: promotion.Percentage,
			Value:        decimal.NewFromInt(25),
			Active:       true,
		}), nil).Once()
		query, err := queries.NewValidatePromotionQuery(" promo", amount)
		require.NoError(t, err)

		result, err := queries.NewValidatePromotionQueryHandler(repo, clock).Handle(ctx, query)

		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, "20", result.Discount.String())
		assert.Empty(t, result.Reason)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "IncrementUsage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fixed discount capped at amount", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockPromotionRepository)
		repo.On("GetByCode", ctx, "PROMO").Return(newPromo(t, promotion.Params{
			DiscountType: promotion.Fixed,
			Value:        decimal.NewFromInt(100),
			Active:       true,
		}), nil).Once()
		query, _ := queries.NewValidatePromotionQuery("PROMO", amount)

		result, err := queries.NewValidatePromotionQueryHandler(repo, clock).Handle(ctx, query)

		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.True(t, amount.Equal(result.Discount))
	})

	t.Run("unknown code is a reason, not an error", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockPromotionRepository)
		repo.On("GetByCode", ctx, "PROMO").Return(nil, errs.NewObjectNotFoundError("promotion", "PROMO")).Once()
		query, _ := queries.NewValidatePromotionQuery("promo", amount)

		result, err := queries.NewValidatePromotionQueryHandler(repo, clock).Handle(ctx, query)

		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, promotion.ReasonNotFound, result.Reason)
		assert.True(t, result.Discount.IsZero())
	})

	rejections := []struct {
		name   string
		params promotion.Params
		reason promotion.Reason
	}{
		{
			name:   "inactive",
			params: promotion.Params{DiscountType: promotion.Fixed, Value: decimal.NewFromInt(5)},
			reason: promotion.ReasonInactive,
		},
		{
			name: "not started",
			params: promotion.Params{
				DiscountType: promotion.Fixed, Value: decimal.NewFromInt(5), Active: true,
				StartsAt: ptr(now.Add(time.Hour)),
			},
			reason: promotion.ReasonNotStarted,
		},
		{
			name: "expired",
			params: promotion.Params{
				DiscountType: promotion.Fixed, Value: decimal.NewFromInt(5), Active: true,
				EndsAt: ptr(now.Add(-time.Minute)),
			},
			reason: promotion.ReasonExpired,
		},
		{
			name: "usage limit reached",
			params: promotion.Params{
				DiscountType: promotion.Fixed, Value: decimal.NewFromInt(5), Active: true,
				UsageLimit: ptr(3), UsageCount: 3,
			},
			reason: promotion.ReasonUsageLimitReached,
		},
		{
			name: "below minimum",
			params: promotion.Params{
				DiscountType: promotion.Fixed, Value: decimal.NewFromInt(5), Active: true,
				MinOrderAmount: decimal.NewFromInt(100),
			},
			reason: promotion.ReasonBelowMinimum,
		},
	}
	for _, tc := range rejections {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			repo := new(MockPromotionRepository)
			repo.On("GetByCode", ctx, "PROMO").Return(newPromo(t, tc.params), nil).Once()
			query, _ := queries.NewValidatePromotionQuery("PROMO", amount)

			result, err := queries.NewValidatePromotionQueryHandler(repo, clock).Handle(ctx, query)

			require.NoError(t, err)
			assert.False(t, result.Valid)
			assert.Equal(t, tc.reason, result.Reason)
		})
	}

	t.Run("storage failure is returned", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockPromotionRepository)
		repo.On("GetByCode", ctx, "PROMO").Return(nil, errors.New("connection refused")).Once()
		query, _ := queries.NewValidatePromotionQuery("PROMO", amount)

		_, err := queries.NewValidatePromotionQueryHandler(repo, clock).Handle(ctx, query)

		require.Error(t, err)
	})
}

func TestNewValidatePromotionQuery(t *testing.T) {
	_, err := queries.NewValidatePromotionQuery("  ", decimal.NewFromInt(10))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewValidatePromotionQuery("PROMO", decimal.NewFromInt(-1))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func ptr[T any](v T) *T {
	return &v
}
