// Package http exposes the fulfillment engine over a JSON API built on echo.
// Handlers translate between wire contracts and application commands/queries;
// domain errors map onto HTTP statuses through their sentinel wrappers.
package http

import (
	"errors"
	"net/http"

	"tailoring/internal/core/application/usecases/commands"
	"tailoring/internal/core/application/usecases/queries"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/domain/model/payment"
	"tailoring/internal/core/domain/model/task"
	"tailoring/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	startTaskHandler    commands.StartTaskCommandHandler
	completeTaskHandler commands.CompleteTaskCommandHandler
	applyPaymentHandler commands.ApplyPaymentCommandHandler
	deliverOrderHandler commands.DeliverOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	getPaymentInfoHandler queries.GetPaymentInfoQueryHandler
	generateBillHandler   queries.GenerateBillQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	startTaskHandler commands.StartTaskCommandHandler,
	completeTaskHandler commands.CompleteTaskCommandHandler,
	applyPaymentHandler commands.ApplyPaymentCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getPaymentInfoHandler queries.GetPaymentInfoQueryHandler,
	generateBillHandler queries.GenerateBillQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		startTaskHandler:      startTaskHandler,
		completeTaskHandler:   completeTaskHandler,
		applyPaymentHandler:   applyPaymentHandler,
		deliverOrderHandler:   deliverOrderHandler,
		cancelOrderHandler:    cancelOrderHandler,
		getOrderHandler:       getOrderHandler,
		getPaymentInfoHandler: getPaymentInfoHandler,
		generateBillHandler:   generateBillHandler,
	}
}

// RegisterRoutes wires the API endpoints onto the echo instance.
// All routes require an authenticated user.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/payments", s.ApplyPayment)
	api.GET("/orders/:orderId/payments", s.GetPaymentInfo)
	api.GET("/orders/:orderId/bill", s.GenerateBill)
	api.POST("/orders/:orderId/deliver", s.DeliverOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/tasks/:taskId/start", s.StartTask)
	api.POST("/tasks/:taskId/complete", s.CompleteTask)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	shopID, err := kernel.UUIDFromString(req.ShopID)
	if err != nil {
		return badRequest(ctx, "Invalid shop ID")
	}

	actorID, err := kernel.UUIDFromString(authenticatedUserID(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	totalPrice, err := kernel.NewMoney(req.TotalPrice)
	if err != nil {
		return badRequest(ctx, "Invalid total price")
	}

	advancePayment, err := kernel.NewMoney(req.AdvancePayment)
	if err != nil {
		return badRequest(ctx, "Invalid advance payment")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		unitPrice, priceErr := kernel.NewMoney(itemReq.UnitPrice)
		if priceErr != nil {
			return badRequest(ctx, "Invalid item price")
		}

		item, itemErr := order.NewItem(itemReq.Name, itemReq.Quantity, unitPrice, itemReq.FabricType)
		if itemErr != nil {
			return badRequest(ctx, "Invalid item data: "+itemErr.Error())
		}

		items = append(items, item)
	}

	tasks := make([]commands.TaskAssignment, 0, len(req.Tasks))
	for _, taskReq := range req.Tasks {
		workerID, workerErr := kernel.UUIDFromString(taskReq.WorkerID)
		if workerErr != nil {
			return badRequest(ctx, "Invalid worker ID")
		}

		taskType, typeErr := task.TypeFromString(taskReq.TaskType)
		if typeErr != nil {
			return badRequest(ctx, "Invalid task type: "+taskReq.TaskType)
		}

		assignment, taskErr := commands.NewTaskAssignment(workerID, taskType)
		if taskErr != nil {
			return badRequest(ctx, "Invalid task data: "+taskErr.Error())
		}

		tasks = append(tasks, assignment)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		customerID,
		shopID,
		req.Deadline,
		totalPrice,
		advancePayment,
		req.Notes,
		items,
		tasks,
		actorID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderContract(resp))
}

// StartTask handles POST /api/v1/tasks/:taskId/start.
// The acting worker comes from the access token.
func (s *Server) StartTask(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("taskId"))
	if err != nil {
		return badRequest(ctx, "Invalid task ID")
	}

	workerID, err := kernel.UUIDFromString(authenticatedUserID(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	cmd, err := commands.NewStartTaskCommand(taskID, workerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.startTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteTask handles POST /api/v1/tasks/:taskId/complete.
// The acting worker comes from the access token.
func (s *Server) CompleteTask(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("taskId"))
	if err != nil {
		return badRequest(ctx, "Invalid task ID")
	}

	workerID, err := kernel.UUIDFromString(authenticatedUserID(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	cmd, err := commands.NewCompleteTaskCommand(taskID, workerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.completeTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyPayment handles POST /api/v1/orders/:orderId/payments.
// On success it responds with the order's updated payment summary.
func (s *Server) ApplyPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req NewPayment
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid payment amount")
	}

	method, err := payment.MethodFromString(req.Method)
	if err != nil {
		return badRequest(ctx, "Invalid payment method: "+req.Method)
	}

	actorID, err := kernel.UUIDFromString(authenticatedUserID(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	cmd, err := commands.NewApplyPaymentCommand(orderID, amount, method, req.Note, req.Date, actorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.applyPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPaymentInfoQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getPaymentInfoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPaymentInfoContract(resp))
}

// GetPaymentInfo handles GET /api/v1/orders/:orderId/payments.
func (s *Server) GetPaymentInfo(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetPaymentInfoQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getPaymentInfoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPaymentInfoContract(resp))
}

// GenerateBill handles GET /api/v1/orders/:orderId/bill.
func (s *Server) GenerateBill(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGenerateBillQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.generateBillHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBillContract(resp))
}

// DeliverOrder handles POST /api/v1/orders/:orderId/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req CancelOrder
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps domain error sentinels onto HTTP statuses.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrOverpayment):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

func toOrderContract(resp queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItem{
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			FabricType: item.FabricType,
		}
	}

	tasks := make([]OrderTask, len(resp.Tasks))
	for i, t := range resp.Tasks {
		tasks[i] = OrderTask{
			ID:          t.ID.String(),
			WorkerID:    t.WorkerID.String(),
			TaskType:    t.TaskType,
			Status:      t.Status,
			AssignedAt:  t.AssignedAt,
			StartedAt:   t.StartedAt,
			CompletedAt: t.CompletedAt,
		}
	}

	activities := make([]OrderActivity, len(resp.Activities))
	for i, a := range resp.Activities {
		activities[i] = OrderActivity{
			ID:          a.ID.String(),
			Type:        a.ActivityType,
			Description: a.Description,
			OldStatus:   a.OldStatus,
			NewStatus:   a.NewStatus,
			CreatedAt:   a.CreatedAt,
		}
	}

	return Order{
		ID:            resp.ID.String(),
		Number:        resp.Number,
		CustomerID:    resp.CustomerID.String(),
		ShopID:        resp.ShopID.String(),
		Deadline:      resp.Deadline,
		TotalPrice:    resp.TotalPrice,
		PaidAmount:    resp.PaidAmount,
		PaymentStatus: resp.PaymentStatus,
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt,
		Items:         items,
		Tasks:         tasks,
		Activities:    activities,
	}
}

func toPaymentInfoContract(resp queries.GetPaymentInfoQueryResponse) PaymentInfo {
	payments := make([]PaymentEntry, len(resp.Payments))
	for i, p := range resp.Payments {
		payments[i] = PaymentEntry{
			ID:         p.ID.String(),
			Amount:     p.Amount,
			Method:     p.Method,
			Date:       p.Date,
			Note:       p.Note,
			RecordedBy: p.RecordedBy.String(),
		}
	}

	return PaymentInfo{
		OrderID:       resp.OrderID.String(),
		TotalPrice:    resp.TotalPrice,
		PaidAmount:    resp.PaidAmount,
		Balance:       resp.Balance,
		PaymentStatus: resp.PaymentStatus,
		Payments:      payments,
	}
}

func toBillContract(resp queries.GenerateBillQueryResponse) Bill {
	items := make([]BillItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = BillItem{
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			LineTotal:  item.LineTotal,
			FabricType: item.FabricType,
		}
	}

	payments := make([]PaymentEntry, len(resp.Payments))
	for i, p := range resp.Payments {
		payments[i] = PaymentEntry{
			ID:         p.ID.String(),
			Amount:     p.Amount,
			Method:     p.Method,
			Date:       p.Date,
			Note:       p.Note,
			RecordedBy: p.RecordedBy.String(),
		}
	}

	return Bill{
		BillNumber:    resp.BillNumber,
		OrderID:       resp.OrderID.String(),
		OrderNumber:   resp.OrderNumber,
		CustomerID:    resp.CustomerID.String(),
		ShopID:        resp.ShopID.String(),
		OrderDate:     resp.OrderDate,
		Deadline:      resp.Deadline,
		Items:         items,
		Subtotal:      resp.Subtotal,
		Discount:      resp.Discount,
		Tax:           resp.Tax,
		Total:         resp.Total,
		PaidAmount:    resp.PaidAmount,
		Balance:       resp.Balance,
		PaymentStatus: resp.PaymentStatus,
		Payments:      payments,
		GeneratedAt:   resp.GeneratedAt,
	}
}
