package courierrepo_test

import (
	"context"
	"testing"

	postgresadapter "fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/courierrepo"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *courierrepo.GormCourierRepository
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgresadapter.AutoMigrate(database.DB))
	suite.repository = courierrepo.NewGormCourierRepository(database.DB)
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(postgresadapter.TruncateAll(suite.database.DB))
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrip() {
	ctx := suite.T().Context()
	c := suite.createCourier("Rosa", true)
	loc, _ := kernel.NewLocation(-12.05, -77.04)
	suite.Require().NoError(c.ReportLocation(loc))

	suite.Require().NoError(suite.repository.Add(ctx, c))

	stored, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("Rosa", stored.Name())
	suite.Equal(courier.AccountActive, stored.AccountStatus())
	suite.True(stored.IsAvailable())
	suite.Require().NotNil(stored.Location())
	suite.InDelta(-12.05, stored.Location().Latitude(), 1e-9)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(suite.T().Context(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndAvailability() {
	ctx := suite.T().Context()
	c := suite.createCourier("Luis", true)
	suite.Require().NoError(suite.repository.Add(ctx, c))

	suite.Require().NoError(c.SetAccountStatus(courier.AccountInactive))
	suite.Require().NoError(suite.repository.Update(ctx, c))

	stored, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.AccountInactive, stored.AccountStatus())
	suite.False(stored.IsAvailable())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	c := suite.createCourier("Ghost", false)

	err := suite.repository.Update(suite.T().Context(), c)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAllEligibleForUpdate_FiltersAndOrdersByID() {
	ctx := suite.T().Context()
	eligible := []*courier.Courier{suite.createCourier("A", true), suite.createCourier("B", true)}
	offline := suite.createCourier("C", false)
	inactive := suite.createCourier("D", true)
	suite.Require().NoError(inactive.SetAccountStatus(courier.AccountInactive))

	for _, c := range append(eligible, offline, inactive) {
		suite.Require().NoError(suite.repository.Add(ctx, c))
	}

	tx := suite.database.DB.Begin()
	defer tx.Rollback()

	couriers, err := courierrepo.NewGormCourierRepository(tx).GetAllEligibleForUpdate(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(couriers, 2)
	suite.Less(couriers[0].ID().String(), couriers[1].ID().String())
	for _, c := range couriers {
		suite.True(c.IsEligibleForAssignment())
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) createCourier(name string, available bool) *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), name)
	suite.Require().NoError(err)
	if available {
		suite.Require().NoError(c.SetAvailability(true))
	}
	return c
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
