package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"deliverysys/internal/adapters/out/postgres"
	"deliverysys/internal/adapters/out/postgres/attendancerepo"
	"deliverysys/internal/adapters/out/postgres/orderrepo"
	"deliverysys/internal/core/domain/model/attendance"
	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/core/domain/model/order"
	"deliverysys/internal/pkg/errs"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// order and attendance repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &attendancerepo.ShiftDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, attendances").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(code string) *order.Order {
	creator, err := kernel.NewUserRef(kernel.NewUUID(), "dispatch.admin")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), code, order.Details{
		CustomerName: "Ayesha Rahman",
		Address:      "12 Lake View Rd",
		COD:          25000,
	}, creator, nil)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_MakesChangesVisible() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder("ORD-4001")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	outside := orderrepo.NewGormOrderRepository(suite.db)
	loaded, err := outside.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("ORD-4001", loaded.Code())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder("ORD-4002")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	outside := orderrepo.NewGormOrderRepository(suite.db)
	_, err := outside.Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedChangesInvisibleOutside() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder("ORD-4003")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	outside := orderrepo.NewGormOrderRepository(suite.db)
	_, err := outside.Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBeginFails() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBothRepositoriesShareTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder("ORD-4004")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	shift, err := attendance.NewShift(kernel.NewUUID(), kernel.NewUUID(), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.AttendanceRepository().Add(ctx, shift))

	suite.Require().NoError(uow.Rollback(ctx))

	var orderCount, shiftCount int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Table("attendances").Count(&shiftCount).Error)
	suite.Zero(orderCount)
	suite.Zero(shiftCount)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
