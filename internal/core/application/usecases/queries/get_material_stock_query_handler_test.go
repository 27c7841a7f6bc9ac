package queries_test

import (
	"context"
	"testing"
	"time"

	"printshop/internal/adapters/out/postgres/materialrepo"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/material"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetMaterialStockQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetMaterialStockQueryHandler
	materialRepo *materialrepo.GormMaterialRepository
}

func (suite *GetMaterialStockQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&materialrepo.MaterialDTO{}))

	suite.handler = queries.NewGetMaterialStockQueryHandler(db)
	suite.materialRepo = materialrepo.NewGormMaterialRepository(db, &mockAggregateTracker{})
}

func (suite *GetMaterialStockQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetMaterialStockQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE materials").Error)
}

func (suite *GetMaterialStockQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetMaterialStockQuery("user-1")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetMaterialStockQueryHandlerTestSuite) TestHandle_ExcludesHiddenAndOtherOwners() {
	ctx := context.Background()

	visible := suite.createMaterial("user-1", "Red PLA")
	suite.Require().NoError(visible.RecordUsage(0.3))
	suite.Require().NoError(suite.materialRepo.Add(ctx, visible))

	hidden := suite.createMaterial("user-1", "Blue PETG")
	hidden.Hide()
	suite.Require().NoError(suite.materialRepo.Add(ctx, hidden))

	other := suite.createMaterial("user-2", "Green ASA")
	suite.Require().NoError(suite.materialRepo.Add(ctx, other))

	query, err := queries.NewGetMaterialStockQuery("user-1")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(visible.ID()))
	suite.Equal("Red PLA", result[0].Title)
	suite.Equal("Prusament", result[0].Brand)
	suite.InDelta(24.99, result[0].PricePerKilo, 1e-9)
	suite.Equal(3, result[0].SpoolsOwned)
	suite.InDelta(0.3, result[0].TotalUsedKilos, 1e-9)
}

func (suite *GetMaterialStockQueryHandlerTestSuite) TestHandle_SortsByTitle() {
	ctx := context.Background()

	suite.Require().NoError(suite.materialRepo.Add(ctx, suite.createMaterial("user-1", "Zephyr Grey")))
	suite.Require().NoError(suite.materialRepo.Add(ctx, suite.createMaterial("user-1", "Amber Orange")))
	suite.Require().NoError(suite.materialRepo.Add(ctx, suite.createMaterial("user-1", "Mint Green")))

	query, err := queries.NewGetMaterialStockQuery("user-1")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Amber Orange", result[0].Title)
	suite.Equal("Mint Green", result[1].Title)
	suite.Equal("Zephyr Grey", result[2].Title)
}

func (suite *GetMaterialStockQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetMaterialStockQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetMaterialStockQuery constructor")
}

func (suite *GetMaterialStockQueryHandlerTestSuite) createMaterial(ownerID, title string) *material.Material {
	m, err := material.NewMaterial(
		kernel.NewUUID(), ownerID, title, "Prusament",
		[]string{"red"}, []string{"PLA"}, "", 24.99, 3,
	)
	suite.Require().NoError(err)
	return m
}

func TestGetMaterialStockQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetMaterialStockQueryHandlerTestSuite))
}
