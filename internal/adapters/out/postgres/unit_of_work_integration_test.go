package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "supportbot/internal/adapters/out/postgres"
	"supportbot/internal/adapters/out/postgres/orderrepo"
	"supportbot/internal/core/domain/model/kernel"
	"supportbot/internal/core/domain/model/order"
	"supportbot/internal/core/ports"
	"supportbot/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM Unit of Work and the
// database probe against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder(42)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	found, err := uow.OrderRepository().FindByOrderNumber(ctx, testOrder.Number())
	suite.Require().NoError(err)
	suite.True(found.IsEqual(testOrder))

	suite.Require().NoError(uow.Commit(ctx))

	found, err = suite.factory.Create().OrderRepository().FindByOrderNumber(ctx, testOrder.Number())
	suite.Require().NoError(err)
	suite.True(found.IsEqual(testOrder))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder(42)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().FindByOrderNumber(ctx, testOrder.Number())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Order should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AggregateTracking() {
	ctx := context.Background()
	uow := suite.factory.Create()
	first := suite.createTestOrder(1)
	second := suite.createTestOrder(2)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, first))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, second))
	suite.Require().NoError(uow.Commit(ctx))

	gormUow, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Equal([]kernel.OrderNumber{first.Number(), second.Number()}, gormUow.TrackedOrderNumbers())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	order1 := suite.createTestOrder(1)
	order2 := suite.createTestOrder(2)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().FindByOrderNumber(ctx, order1.Number())
	suite.Require().NoError(err, "UOW1 should see order1")
	_, err = uow1.OrderRepository().FindByOrderNumber(ctx, order2.Number())
	suite.Require().Error(err, "UOW1 should not see order2")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	repo := suite.factory.Create().OrderRepository()
	_, err = repo.FindByOrderNumber(ctx, order1.Number())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = repo.FindByOrderNumber(ctx, order2.Number())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder(42)

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	found, err := suite.factory.Create().OrderRepository().FindByOrderNumber(ctx, testOrder.Number())
	suite.Require().NoError(err)
	suite.True(found.IsEqual(testOrder))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDatabaseProbe_Ping() {
	probe := postgres_adapter.NewDatabaseProbe(suite.db)

	suite.Require().NoError(probe.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	suite.Require().Error(probe.Ping(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(n int64) *order.Order {
	number, err := kernel.NewOrderNumber(n)
	suite.Require().NoError(err)
	total, err := kernel.NewMoneyFromString("10.50")
	suite.Require().NoError(err)

	o, err := order.NewOrder(number, total, order.Details{
		Status:       "Processing",
		Items:        []string{"Widget"},
		CustomerName: "Ann",
		Address:      "1 Main St",
		OrderDate:    "2024-01-01",
	})
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
