package productrepo_test

import (
	"context"
	"testing"
	"time"

	"printshop/internal/adapters/out/postgres/productrepo"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/product"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ProductRepositoryIntegrationTestSuite provides integration tests for ProductRepository
// using PostgreSQL containers to verify database persistence behavior.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_RoundTripsSinglePricedProduct() {
	ctx := context.Background()

	p := suite.createPricedProduct("Benchy", 12.5)
	suite.tracker.On("TrackAggregate", p.ID(), p).Once()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	restored, err := suite.repository.Get(ctx, p.ID())

	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(p.ID()))
	suite.Equal("user-1", restored.OwnerID())
	suite.Equal("Benchy", restored.Title())
	suite.InDelta(2.5, restored.PrintTimeHours(), 1e-9)

	suite.Require().Len(restored.Requirements(), 2)
	suite.Equal("hull", restored.Requirements()[0].Label())
	suite.InDelta(13, restored.Requirements()[0].Grams(), 1e-9)
	suite.Equal("deck", restored.Requirements()[1].Label())
	suite.InDelta(5, restored.Requirements()[1].Grams(), 1e-9)

	price, ok := restored.UnitPrice()
	suite.Require().True(ok)
	suite.InDelta(12.5, price, 1e-9)
	suite.Empty(restored.PriceVariants())
	suite.False(restored.Hidden())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_RoundTripsVariantPricedProduct() {
	ctx := context.Background()

	variants := map[string]float64{"small": 8, "large": 15}
	p, err := product.NewProduct(
		kernel.NewUUID(), "user-1", "Vase", 4,
		nil, nil, variants,
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", p.ID(), p).Once()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	restored, err := suite.repository.Get(ctx, p.ID())

	suite.Require().NoError(err)
	_, ok := restored.UnitPrice()
	suite.False(ok)
	suite.Equal(variants, restored.PriceVariants())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsHiddenFlag() {
	ctx := context.Background()

	p := suite.createPricedProduct("Benchy", 12.5)
	suite.tracker.On("TrackAggregate", p.ID(), p).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	p.Hide()
	suite.Require().NoError(suite.repository.Update(ctx, p))

	restored, err := suite.repository.Get(ctx, p.ID())

	suite.Require().NoError(err)
	suite.True(restored.Hidden())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_MissingProduct_ReturnsError() {
	p := suite.createPricedProduct("Benchy", 12.5)

	err := suite.repository.Update(context.Background(), p)

	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_MissingProduct_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetAllVisible_FiltersAndSortsByTitle() {
	ctx := context.Background()

	hidden := suite.createPricedProduct("Hidden dragon", 9)
	hidden.Hide()
	other, err := product.NewProduct(
		kernel.NewUUID(), "user-2", "Alien planter", 3,
		nil, nil, map[string]float64{"one": 5},
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, suite.createPricedProduct("Zebra clip", 1)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createPricedProduct("Benchy", 2.5)))
	suite.Require().NoError(suite.repository.Add(ctx, hidden))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	visible, err := suite.repository.GetAllVisible(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(visible, 2)
	suite.Equal("Benchy", visible[0].Title())
	suite.Equal("Zebra clip", visible[1].Title())
}

func (suite *ProductRepositoryIntegrationTestSuite) createPricedProduct(title string, price float64) *product.Product {
	hull, err := product.NewPartRequirement("hull", 13)
	suite.Require().NoError(err)
	deck, err := product.NewPartRequirement("deck", 5)
	suite.Require().NoError(err)

	p, err := product.NewProduct(
		kernel.NewUUID(), "user-1", title, 2.5,
		[]product.PartRequirement{hull, deck}, &price, nil,
	)
	suite.Require().NoError(err)
	return p
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
