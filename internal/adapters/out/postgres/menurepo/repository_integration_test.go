package menurepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"catering/internal/adapters/out/postgres/menurepo"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"
	"catering/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MenuItemRepositoryIntegrationTestSuite provides integration tests for
// GormMenuItemRepository using PostgreSQL containers.
type MenuItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *menurepo.GormMenuItemRepository
}

func (suite *MenuItemRepositoryIntegrationTestSuite) SetupSuite() {
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

	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&menurepo.MenuItemDTO{}))
}

func (suite *MenuItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE menu_items").Error)
	suite.repository = menurepo.NewGormMenuItemRepository(suite.db)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	item := suite.createMenuItem("Paneer Tikka", menu.Vegetarian, menu.Starter, true)

	err := suite.repository.Add(ctx, item)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)

	suite.Equal(item.ID(), retrieved.ID())
	suite.Equal("Paneer Tikka", retrieved.Name())
	suite.Equal(menu.Vegetarian, retrieved.DietaryClass())
	suite.Equal(menu.Starter, retrieved.CourseClass())
	suite.True(retrieved.IsAvailable())
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestGet_NonExistentItem_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestGetAllAvailable_FiltersUnavailableItems() {
	ctx := context.Background()

	available1 := suite.createMenuItem("Butter Chicken", menu.NonVegetarian, menu.Mains, true)
	available2 := suite.createMenuItem("Gulab Jamun", menu.Vegetarian, menu.Desserts, true)
	unavailable := suite.createMenuItem("Seasonal Fish Curry", menu.NonVegetarian, menu.Mains, false)

	suite.Require().NoError(suite.repository.Add(ctx, available1))
	suite.Require().NoError(suite.repository.Add(ctx, available2))
	suite.Require().NoError(suite.repository.Add(ctx, unavailable))

	items, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)

	suite.Len(items, 2)
	for _, item := range items {
		suite.True(item.IsAvailable())
		suite.NotEqual(unavailable.ID(), item.ID())
	}
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestGetAllAvailable_EmptyCatalog_ReturnsEmptySlice() {
	ctx := context.Background()

	items, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Empty(items)
}

// createMenuItem creates a test menu item with the given attributes.
func (suite *MenuItemRepositoryIntegrationTestSuite) createMenuItem(
	name string, dietary menu.DietaryClass, course menu.CourseClass, isAvailable bool,
) *menu.MenuItem {
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, dietary, course, isAvailable)
	suite.Require().NoError(err)
	return item
}

func TestMenuItemRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MenuItemRepositoryIntegrationTestSuite))
}
