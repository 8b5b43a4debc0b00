package orderrepo_test

import (
	"context"
	"testing"

	postgresadapter "fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgresadapter.AutoMigrate(database.DB))
	suite.repository = orderrepo.NewGormOrderRepository(database.DB)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(postgresadapter.TruncateAll(suite.database.DB))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RestoresItemsAndAmounts() {
	ctx := suite.T().Context()
	o := suite.createOrder()
	suite.Require().NoError(o.ApplyShippingFee(decimal.RequireFromString("7.50")))

	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Registered, stored.Status())
	suite.Equal(order.PaymentPending, stored.PaymentStatus())
	suite.Require().Len(stored.Items(), 2)
	suite.Equal("Lomo saltado", stored.Items()[0].Name())
	suite.Equal("Chicha morada", stored.Items()[1].Name())
	suite.True(o.Subtotal().Equal(stored.Subtotal()))
	suite.True(decimal.RequireFromString("7.50").Equal(stored.ShippingFee()))
	suite.True(o.Total().Equal(stored.Total()))
	suite.Require().NotNil(stored.Destination())
	suite.InDelta(-12.1, stored.Destination().Latitude(), 1e-9)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(suite.T().Context(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIfStatus_MatchingStatus_Writes() {
	ctx := suite.T().Context()
	o := suite.createOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))
	courierID := kernel.NewUUID()
	suite.Require().NoError(o.Assign(courierID))

	suite.Require().NoError(suite.repository.UpdateIfStatus(ctx, o, order.Registered))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, stored.Status())
	suite.Require().NotNil(stored.Courier())
	suite.Equal(courierID, *stored.Courier())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIfStatus_StaleStatus_ReturnsConcurrentUpdate() {
	ctx := suite.T().Context()
	o := suite.createOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Assign(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.UpdateIfStatus(ctx, first, order.Registered))

	suite.Require().NoError(second.Cancel())
	err = suite.repository.UpdateIfStatus(ctx, second, order.Registered)

	suite.Require().ErrorIs(err, errs.ErrConcurrentUpdate)
	stored, _ := suite.repository.Get(ctx, o.ID())
	suite.Equal(order.Assigned, stored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIfStatus_Missing_ReturnsNotFound() {
	o := suite.createOrder()
	suite.Require().NoError(o.Cancel())

	err := suite.repository.UpdateIfStatus(suite.T().Context(), o, order.Registered)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestConfirmedDelivery_ClearsCode() {
	ctx := suite.T().Context()
	o := suite.createOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.Require().NoError(o.Assign(kernel.NewUUID()))
	_, err := o.Advance(order.EnRouteToMerchant)
	suite.Require().NoError(err)
	code, err := o.Advance(order.EnRouteToCustomer)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.UpdateIfStatus(ctx, o, order.Registered))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(code, stored.DeliveryCode())

	suite.Require().NoError(stored.ConfirmDelivery(code.String(), stored.UpdatedAt()))
	suite.Require().NoError(suite.repository.UpdateIfStatus(ctx, stored, order.EnRouteToCustomer))

	delivered, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, delivered.Status())
	suite.True(delivered.DeliveryCode().IsZero())
	suite.NotNil(delivered.DeliveredAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdatePayment() {
	ctx := suite.T().Context()
	o := suite.createOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.Require().NoError(o.MarkPaid())

	suite.Require().NoError(suite.repository.UpdatePayment(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PaymentPaid, stored.PaymentStatus())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestActiveQueries_AndWorkload() {
	ctx := suite.T().Context()
	busy, idle, other := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	pending := suite.createOrder()
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	for range 2 {
		o := suite.createOrder()
		suite.Require().NoError(o.Assign(busy))
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	cancelled := suite.createOrder()
	suite.Require().NoError(cancelled.Assign(other))
	suite.Require().NoError(cancelled.Cancel())
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	active, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Len(active, 3)

	mine, err := suite.repository.GetAllActiveByCourier(ctx, busy)
	suite.Require().NoError(err)
	suite.Len(mine, 2)

	registered, err := suite.repository.GetAllInStatus(ctx, order.Registered, 10)
	suite.Require().NoError(err)
	suite.Require().Len(registered, 1)
	suite.Equal(pending.ID(), registered[0].ID())

	counts, err := suite.repository.CountActiveByCourier(ctx, []kernel.UUID{busy, idle, other})
	suite.Require().NoError(err)
	suite.Equal(map[kernel.UUID]int{busy: 2, idle: 0, other: 0}, counts)
}

func (suite *OrderRepositoryIntegrationTestSuite) createOrder() *order.Order {
	first, err := order.NewItem(kernel.NewUUID(), "Lomo saltado", 1, decimal.RequireFromString("32.90"))
	suite.Require().NoError(err)
	second, err := order.NewItem(kernel.NewUUID(), "Chicha morada", 2, decimal.RequireFromString("6.50"))
	suite.Require().NoError(err)
	dest, err := kernel.NewLocation(-12.1, -77.03)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), nil,
		[]order.Item{first, second}, "Calle Berlin 120, Miraflores", &dest, order.PaymentCard,
	)
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
