package queries_test

import (
	"context"
	"testing"
	"time"

	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding test data through the
// repositories outside any unit of work.
type mockAggregateTracker struct{}

func (t *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetActiveOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetActiveOrdersQuery("user-1", false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ExcludesHiddenAndDone() {
	ctx := context.Background()

	active := suite.createOrder("Active", nil)
	suite.Require().NoError(suite.orderRepo.Add(ctx, active))

	done := suite.createOrder("Finished", nil)
	done.MarkDone()
	suite.Require().NoError(suite.orderRepo.Add(ctx, done))

	hidden := suite.createOrder("Deleted", nil)
	hidden.Hide()
	suite.Require().NoError(suite.orderRepo.Add(ctx, hidden))

	query, err := queries.NewGetActiveOrdersQuery("user-1", false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Active", result[0].Title)
	suite.True(result[0].ID.IsEqual(active.ID()))
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_IncludeDone_ListsFinishedOrders() {
	ctx := context.Background()

	active := suite.createOrder("Active", nil)
	suite.Require().NoError(suite.orderRepo.Add(ctx, active))

	done := suite.createOrder("Finished", nil)
	done.MarkDone()
	suite.Require().NoError(suite.orderRepo.Add(ctx, done))

	hidden := suite.createOrder("Deleted", nil)
	hidden.Hide()
	suite.Require().NoError(suite.orderRepo.Add(ctx, hidden))

	query, err := queries.NewGetActiveOrdersQuery("user-1", true)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	statuses := map[string]order.Status{}
	for _, r := range result {
		statuses[r.Title] = r.Status
	}
	suite.Equal(order.NotStarted, statuses["Active"])
	suite.Equal(order.Done, statuses["Finished"])
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_SortsByDueDate() {
	ctx := context.Background()

	later := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	sooner := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	suite.Require().NoError(suite.orderRepo.Add(ctx, suite.createOrder("Due later", &later)))
	suite.Require().NoError(suite.orderRepo.Add(ctx, suite.createOrder("No due date", nil)))
	suite.Require().NoError(suite.orderRepo.Add(ctx, suite.createOrder("Due sooner", &sooner)))

	query, err := queries.NewGetActiveOrdersQuery("user-1", false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Due sooner", result[0].Title)
	suite.Equal("Due later", result[1].Title)
	suite.Equal("No due date", result[2].Title)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_MapsTotalsSnapshot() {
	ctx := context.Background()

	materialID := kernel.NewUUID()
	lookup := func(id kernel.UUID) (float64, bool) {
		if id.IsEqual(materialID) {
			return 20, true
		}
		return 0, false
	}

	o := suite.createOrder("Priced", nil)
	suite.Require().NoError(o.SetPartMaterial(0, 0, &materialID, lookup))
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	query, err := queries.NewGetActiveOrdersQuery("user-1", false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.InDelta(25.0, result[0].Revenue, 1e-9)
	suite.Require().NotNil(result[0].Expenses)
	suite.InDelta(0.52, *result[0].Expenses, 1e-9)
	suite.InDelta(24.48, result[0].Profit, 1e-9)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_UnpricedOrder_HasNilExpenses() {
	ctx := context.Background()

	suite.Require().NoError(suite.orderRepo.Add(ctx, suite.createOrder("Unpriced", nil)))

	query, err := queries.NewGetActiveOrdersQuery("user-1", false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Nil(result[0].Expenses)
	suite.InDelta(25.0, result[0].Profit, 1e-9)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveOrdersQuery constructor")
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) createOrder(title string, dueDate *time.Time) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), "user-1", title, dueDate)
	suite.Require().NoError(err)

	requirement, err := product.NewPartRequirement("hull", 13)
	suite.Require().NoError(err)
	price := 12.5
	template, err := product.NewProduct(
		kernel.NewUUID(), "user-1", "Benchy", 2.5,
		[]product.PartRequirement{requirement}, &price, nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddPiece(template, 2, nil))

	return o
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
