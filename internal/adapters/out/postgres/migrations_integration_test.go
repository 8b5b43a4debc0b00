package postgres_test

import (
	"context"
	"testing"

	"fooddelivery/internal/adapters/out/postgres/courierrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/adapters/out/postgres/pricingrepo"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// MigrationsIntegrationTestSuite checks that the SQL migrations produce a
// schema the repositories can use.
type MigrationsIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
}

func (suite *MigrationsIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(database.MigrateUp())
}

func (suite *MigrationsIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *MigrationsIntegrationTestSuite) TestRepositoriesRunOnMigratedSchema() {
	ctx := suite.T().Context()
	db := suite.database.DB

	c, err := courier.NewCourier(kernel.NewUUID(), "Rosa")
	suite.Require().NoError(err)
	suite.Require().NoError(courierrepo.NewGormCourierRepository(db).Add(ctx, c))

	item, err := order.NewItem(kernel.NewUUID(), "Lomo saltado", 2, decimal.RequireFromString("18.50"))
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, []order.Item{item}, "Jr. Cusco 120", nil, order.PaymentYape)
	suite.Require().NoError(err)

	orders := orderrepo.NewGormOrderRepository(db)
	suite.Require().NoError(orders.Add(ctx, o))

	stored, err := orders.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.Subtotal().StringFixed(2), stored.Subtotal().StringFixed(2))
	suite.Len(stored.Items(), 1)

	pricing := pricingrepo.NewGormPricingProvider(db, services.TariffConfig{})
	suite.Require().NoError(pricing.Save(ctx, services.TariffConfig{
		BaseFee:   decimal.RequireFromString("4.00"),
		PerKmRate: decimal.RequireFromString("1.20"),
		RadiusKm:  3,
	}))
	cfg, err := pricing.Current(ctx)
	suite.Require().NoError(err)
	suite.Equal("4.00", cfg.BaseFee.StringFixed(2))
}

func (suite *MigrationsIntegrationTestSuite) TestDownDropsSchema() {
	m, err := suite.database.Migrations()
	suite.Require().NoError(err)
	defer func() { _, _ = m.Close() }()

	suite.Require().NoError(m.Down())
	suite.False(suite.database.DB.Migrator().HasTable("orders"))

	suite.Require().NoError(m.Up())
	suite.True(suite.database.DB.Migrator().HasTable("orders"))
}

func TestMigrationsIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MigrationsIntegrationTestSuite))
}
