package queries_test

import (
	"context"
	"testing"
	"time"

	"travelorder/internal/adapters/out/postgres/travelorderrepo"
	"travelorder/internal/core/application/usecases/queries"
	"travelorder/internal/core/domain/model/auth"
	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/core/domain/model/order"
	"travelorder/internal/core/domain/services"
	"travelorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopAggregateTracker satisfies the repository's tracker dependency in tests
// that only seed data.
type noopAggregateTracker struct{}

func (noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetTravelOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetTravelOrderQueryHandler
	repo      *travelorderrepo.GormTravelOrderRepository
}

func (suite *GetTravelOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
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

	suite.handler = queries.NewGetTravelOrderQueryHandler(db, services.NewAccessPolicy())
	suite.repo = travelorderrepo.NewGormTravelOrderRepository(db, noopAggregateTracker{})
}

func (suite *GetTravelOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetTravelOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE travel_orders").Error
	suite.Require().NoError(err)
}

func (suite *GetTravelOrderQueryHandlerTestSuite) principal(isAdmin bool) auth.Principal {
	principal, err := auth.NewPrincipal(kernel.NewUUID(), "Ada Lovelace", isAdmin)
	suite.Require().NoError(err)
	return principal
}

func (suite *GetTravelOrderQueryHandlerTestSuite) seedOrder(ownerID kernel.UUID) *order.TravelOrder {
	start := time.Now().AddDate(0, 1, 0)
	period, err := kernel.NewPeriod(start, start.AddDate(0, 0, 5))
	suite.Require().NoError(err)

	travelOrder, err := order.NewTravelOrder(
		kernel.NewUUID(), ownerID, "Ada Lovelace", "London", "Paris", period, time.Now())
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), travelOrder)
	suite.Require().NoError(err)
	return travelOrder
}

func (suite *GetTravelOrderQueryHandlerTestSuite) TestHandle_MissingOrder_ReturnsNotFound() {
	query, err := queries.NewGetTravelOrderQuery(suite.principal(false), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetTravelOrderQueryHandlerTestSuite) TestHandle_Owner_SeesOwnOrder() {
	owner := suite.principal(false)
	travelOrder := suite.seedOrder(owner.ID())

	query, err := queries.NewGetTravelOrderQuery(owner, travelOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(travelOrder.ID()))
	suite.True(result.OwnerID.IsEqual(owner.ID()))
	suite.Equal("Paris", result.Destination)
	suite.Equal(order.Requested, result.Status)
}

func (suite *GetTravelOrderQueryHandlerTestSuite) TestHandle_Admin_SeesAnyOrder() {
	travelOrder := suite.seedOrder(kernel.NewUUID())

	query, err := queries.NewGetTravelOrderQuery(suite.principal(true), travelOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(travelOrder.ID()))
}

func (suite *GetTravelOrderQueryHandlerTestSuite) TestHandle_Stranger_GetsAccessDenied() {
	travelOrder := suite.seedOrder(kernel.NewUUID())

	query, err := queries.NewGetTravelOrderQuery(suite.principal(false), travelOrder.ID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrAccessDenied)
	suite.NotErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetTravelOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetTravelOrderQueryHandlerTestSuite))
}
