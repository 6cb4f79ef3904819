package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "travelorder/internal/adapters/out/postgres"
	"travelorder/internal/adapters/out/postgres/travelorderrepo"
	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/core/domain/model/order"
	"travelorder/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection and
// runs migrations to prepare the schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&travelorderrepo.TravelOrderDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE travel_orders").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newTravelOrder() *order.TravelOrder {
	start := time.Now().AddDate(0, 2, 0)
	period, err := kernel.NewPeriod(start, start.AddDate(0, 0, 4))
	suite.Require().NoError(err)

	travelOrder, err := order.NewTravelOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"Grace Hopper", "", "Berlin", period, time.Now())
	suite.Require().NoError(err)

	return travelOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) orderCount() int64 {
	var count int64
	err := suite.db.Model(&travelorderrepo.TravelOrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	travelOrder := suite.newTravelOrder()
	suite.Require().NoError(uow.TravelOrderRepository().Add(ctx, travelOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	travelOrder := suite.newTravelOrder()
	suite.Require().NoError(uow.TravelOrderRepository().Add(ctx, travelOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))

	travelOrder := suite.newTravelOrder()
	suite.Require().NoError(uow.TravelOrderRepository().Add(ctx, travelOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_Fails() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Rollback(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentUnitsOfWork_AreIsolated() {
	ctx := context.Background()
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(second.Begin(ctx))

	suite.Require().NoError(first.TravelOrderRepository().Add(ctx, suite.newTravelOrder()))
	suite.Require().NoError(second.TravelOrderRepository().Add(ctx, suite.newTravelOrder()))

	suite.Require().NoError(first.Commit(ctx))
	suite.Require().NoError(second.Rollback(ctx))

	suite.Equal(int64(1), suite.orderCount())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
