package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tailoring/internal/adapters/out/postgres/orderrepo"
	"tailoring/internal/adapters/out/postgres/paymentrepo"
	"tailoring/internal/core/application/usecases/queries"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/domain/model/payment"
	"tailoring/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GenerateBillQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GenerateBillQueryHandler
	orderRepo   *orderrepo.GormOrderRepository
	paymentRepo *paymentrepo.GormPaymentRepository
}

func (suite *GenerateBillQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &paymentrepo.PaymentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGenerateBillQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.paymentRepo = paymentrepo.NewGormPaymentRepository(db, &mockAggregateTracker{})
}

func (suite *GenerateBillQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GenerateBillQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, payments").Error
	suite.Require().NoError(err)
}

func (suite *GenerateBillQueryHandlerTestSuite) TestHandle_IncludesPaymentHistory() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(500)

	advanceDate := time.Now().AddDate(0, 0, -5)
	advance, err := payment.NewPayment(
		kernel.NewUUID(), testOrder.ID(), suite.money(300),
		payment.MethodCash, advanceDate, "Advance payment", kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.paymentRepo.Add(ctx, advance))

	installment, err := payment.NewPayment(
		kernel.NewUUID(), testOrder.ID(), suite.money(200),
		payment.MethodUPI, time.Now(), "installment", kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.paymentRepo.Add(ctx, installment))

	query, err := queries.NewGenerateBillQuery(testOrder.ID())
	suite.Require().NoError(err)

	bill, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(bill.Payments, 2)
	suite.Equal("installment", bill.Payments[0].Note, "most recent payment comes first")
	suite.Equal("Advance payment", bill.Payments[1].Note)
	suite.Equal(payment.MethodUPI.String(), bill.Payments[0].Method)
	suite.InDelta(200, bill.Payments[0].Amount, 0.001)
	suite.InDelta(300, bill.Payments[1].Amount, 0.001)

	suite.InDelta(500, bill.PaidAmount, 0.001)
	suite.InDelta(500, bill.Balance, 0.001)
	suite.Equal(order.PaymentPartial.String(), bill.PaymentStatus)
}

func (suite *GenerateBillQueryHandlerTestSuite) TestHandle_BillNumberAndTotals() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(0)

	query, err := queries.NewGenerateBillQuery(testOrder.ID())
	suite.Require().NoError(err)

	bill, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Positive(bill.OrderNumber)
	suite.Equal(
		fmt.Sprintf("BILL-%d-%05d", bill.OrderDate.Year(), bill.OrderNumber),
		bill.BillNumber)

	suite.Require().Len(bill.Items, 2)
	suite.InDelta(600, bill.Items[0].LineTotal, 0.001)
	suite.InDelta(400, bill.Items[1].LineTotal, 0.001)
	suite.InDelta(1000, bill.Subtotal, 0.001)
	suite.InDelta(0, bill.Discount, 0.001)
	suite.InDelta(0, bill.Tax, 0.001)
	suite.InDelta(1000, bill.Total, 0.001)
	suite.Empty(bill.Payments)
}

func (suite *GenerateBillQueryHandlerTestSuite) TestHandle_RepeatedGenerationIsStable() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(300)

	query, err := queries.NewGenerateBillQuery(testOrder.ID())
	suite.Require().NoError(err)

	first, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	second, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(first.BillNumber, second.BillNumber)
	suite.Equal(first.OrderNumber, second.OrderNumber)
	suite.InDelta(first.Subtotal, second.Subtotal, 0.001)
	suite.InDelta(first.Balance, second.Balance, 0.001)
}

func (suite *GenerateBillQueryHandlerTestSuite) TestHandle_OrderNotFound() {
	query, err := queries.NewGenerateBillQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GenerateBillQueryHandlerTestSuite) money(amount float64) kernel.Money {
	m, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)
	return m
}

// createTestOrder persists an order with two items totalling 1000 and the
// given amount already paid.
func (suite *GenerateBillQueryHandlerTestSuite) createTestOrder(paid float64) *order.Order {
	shirt, err := order.NewItem("Shirt", 2, suite.money(300), "Cotton")
	suite.Require().NoError(err)
	trousers, err := order.NewItem("Trousers", 1, suite.money(400), "Linen")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Now().AddDate(0, 0, 7).UTC(),
		suite.money(1000),
		"",
		[]order.Item{shirt, trousers},
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	if paid > 0 {
		suite.Require().NoError(testOrder.ApplyPayment(suite.money(paid)))
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), testOrder))
	return testOrder
}

func TestGenerateBillQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GenerateBillQueryHandlerTestSuite))
}
