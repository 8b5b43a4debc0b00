package promotionrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgresadapter "fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/adapters/out/postgres/promotionrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PromotionRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *promotionrepo.GormPromotionRepository
}

func (suite *PromotionRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgresadapter.AutoMigrate(database.DB))
	suite.repository = promotionrepo.NewGormPromotionRepository(database.DB)
}

func (suite *PromotionRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(postgresadapter.TruncateAll(suite.database.DB))
}

func (suite *PromotionRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *PromotionRepositoryIntegrationTestSuite) TestGetByCode_NormalizesInput() {
	ctx := suite.T().Context()
	promo := suite.createPromotion("VERANO")
	suite.Require().NoError(suite.repository.Add(ctx, promo))

	stored, err := suite.repository.GetByCode(ctx, " verano ")

	suite.Require().NoError(err)
	suite.Equal(promo.ID(), stored.ID())
	suite.Equal(promotion.Percentage, stored.DiscountType())
	suite.True(decimal.NewFromInt(15).Equal(stored.Value()))
	suite.Require().NotNil(stored.UsageLimit())
	suite.Equal(2, *stored.UsageLimit())
	suite.Require().NotNil(stored.EndsAt())
}

func (suite *PromotionRepositoryIntegrationTestSuite) TestGetByCode_Missing_ReturnsNotFound() {
	_, err := suite.repository.GetByCode(suite.T().Context(), "NOPE")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PromotionRepositoryIntegrationTestSuite) TestAdd_DuplicateCode_Fails() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createPromotion("DUP")))

	suite.Require().Error(suite.repository.Add(ctx, suite.createPromotion("DUP")))
}

func (suite *PromotionRepositoryIntegrationTestSuite) TestIncrementUsage_IsIdempotentPerOrder() {
	ctx := suite.T().Context()
	promo := suite.createPromotion("ONCE")
	suite.Require().NoError(suite.repository.Add(ctx, promo))
	orderID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.IncrementUsage(ctx, promo.ID(), orderID))
	suite.Require().NoError(suite.repository.IncrementUsage(ctx, promo.ID(), orderID))
	suite.Require().NoError(suite.repository.IncrementUsage(ctx, promo.ID(), kernel.NewUUID()))

	stored, err := suite.repository.GetByCode(ctx, "ONCE")
	suite.Require().NoError(err)
	suite.Equal(2, stored.UsageCount())

	_, err = stored.Evaluate(decimal.NewFromInt(100), time.Now())
	suite.Require().ErrorIs(err, promotion.ErrPromotionRejected)
}

func (suite *PromotionRepositoryIntegrationTestSuite) TestIncrementUsage_StopsAtLimit() {
	ctx := suite.T().Context()
	promo := suite.createPromotion("CAP")
	suite.Require().NoError(suite.repository.Add(ctx, promo))

	suite.Require().NoError(suite.repository.IncrementUsage(ctx, promo.ID(), kernel.NewUUID()))
	suite.Require().NoError(suite.repository.IncrementUsage(ctx, promo.ID(), kernel.NewUUID()))

	late := kernel.NewUUID()
	err := suite.repository.IncrementUsage(ctx, promo.ID(), late)

	var rejection *promotion.RejectionError
	suite.Require().ErrorAs(err, &rejection)
	suite.Equal("CAP", rejection.Code)
	suite.Equal(promotion.ReasonUsageLimitReached, rejection.Reason)

	stored, err := suite.repository.GetByCode(ctx, "CAP")
	suite.Require().NoError(err)
	suite.Equal(2, stored.UsageCount())

	var redemptions int64
	suite.Require().NoError(suite.database.DB.Model(&promotionrepo.RedemptionDTO{}).
		Where("order_id = ?", late.Bytes()).Count(&redemptions).Error)
	suite.Zero(redemptions)
}

func (suite *PromotionRepositoryIntegrationTestSuite) TestIncrementUsage_ConcurrentCheckoutsRespectLimit() {
	ctx := suite.T().Context()
	promo := suite.createPromotion("RUSH")
	suite.Require().NoError(suite.repository.Add(ctx, promo))

	const attempts = 6
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- suite.repository.IncrementUsage(ctx, promo.ID(), kernel.NewUUID())
		}()
	}
	wg.Wait()
	close(results)

	succeeded, rejected := 0, 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.Require().ErrorIs(err, promotion.ErrPromotionRejected)
		rejected++
	}
	suite.Equal(2, succeeded)
	suite.Equal(attempts-2, rejected)

	stored, err := suite.repository.GetByCode(ctx, "RUSH")
	suite.Require().NoError(err)
	suite.Equal(2, stored.UsageCount())
}

func (suite *PromotionRepositoryIntegrationTestSuite) createPromotion(code string) *promotion.Promotion {
	ends := time.Now().Add(24 * time.Hour).UTC()
	limit := 2
	promo, err := promotion.NewPromotion(promotion.Params{
		ID:           kernel.NewUUID(),
		Code:         code,
		DiscountType: promotion.Percentage,
		Value:        decimal.NewFromInt(15),
		EndsAt:       &ends,
		UsageLimit:   &limit,
		Active:       true,
	})
	suite.Require().NoError(err)
	return promo
}

func TestPromotionRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PromotionRepositoryIntegrationTestSuite))
}
