package commands

import (
	"errors"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/domain/model/task"
	"tailoring/internal/pkg/errs"
	"tailoring/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTaskAssignmentIsNotConstructed = errors.New(
		"TaskAssignment must be created via NewTaskAssignment constructor",
	)
)

// TaskAssignment pairs a production stage with the worker it is assigned to
// at order creation time.
type TaskAssignment struct {
	workerID kernel.UUID
	taskType task.Type

	guard guard.ConstructorGuard
}

// NewTaskAssignment creates a validated stage/worker pair.
func NewTaskAssignment(workerID kernel.UUID, taskType task.Type) (TaskAssignment, error) {
	if err := workerID.Validate(); err != nil {
		return TaskAssignment{}, errs.NewValueIsRequiredErrorWithCause("workerId", err)
	}
	if err := taskType.Validate(); err != nil {
		return TaskAssignment{}, err
	}

	return TaskAssignment{
		workerID: workerID,
		taskType: taskType,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the assignment was created through the constructor.
func (a TaskAssignment) Validate() error {
	return a.guard.Validate(ErrTaskAssignmentIsNotConstructed)
}

// WorkerID returns the assigned worker's identifier.
func (a TaskAssignment) WorkerID() kernel.UUID {
	return a.workerID
}

// TaskType returns the production stage of the assignment.
func (a TaskAssignment) TaskType() task.Type {
	return a.taskType
}

// CreateOrderCommand represents a request to register a new tailoring order
// together with its line items, its initial batch of production tasks and an
// optional advance payment.
//
// Example:
//
//	items := []order.Item{shirt, trousers}
//	tasks := []commands.TaskAssignment{cutting, stitching}
//	cmd, err := commands.NewCreateOrderCommand(
//	    orderID, customerID, shopID, deadline, totalPrice, advance, notes, items, tasks, actorID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := commands.NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerID     kernel.UUID
	shopID         kernel.UUID
	deadline       time.Time
	totalPrice     kernel.Money
	advancePayment kernel.Money
	notes          string
	items          []order.Item
	tasks          []TaskAssignment
	recordedBy     kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new tailoring order.
// Requires at least one item and one task assignment; the advance payment may
// be zero but must not exceed the total price beyond tolerance.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	shopID kernel.UUID,
	deadline time.Time,
	totalPrice kernel.Money,
	advancePayment kernel.Money,
	notes string,
	items []order.Item,
	tasks []TaskAssignment,
	recordedBy kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deadline:       deadline,
		totalPrice:     totalPrice,
		advancePayment: advancePayment,
		notes:          notes,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setShopID(shopID),
		cmd.setRecordedBy(recordedBy),
		cmd.setItems(items),
		cmd.setTasks(tasks),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if advancePayment.Exceeds(totalPrice) {
		return CreateOrderCommand{}, errs.NewOverpaymentError(
			advancePayment.Amount(), totalPrice.Amount())
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the order to be created.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ShopID returns the identifier of the shop taking the order.
func (c CreateOrderCommand) ShopID() kernel.UUID {
	return c.shopID
}

// Deadline returns the promised completion date.
func (c CreateOrderCommand) Deadline() time.Time {
	return c.deadline
}

// TotalPrice returns the fixed total price of the order.
func (c CreateOrderCommand) TotalPrice() kernel.Money {
	return c.totalPrice
}

// AdvancePayment returns the amount paid up front, possibly zero.
func (c CreateOrderCommand) AdvancePayment() kernel.Money {
	return c.advancePayment
}

// Notes returns the free-form notes for the order.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Items returns the order's line items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Tasks returns the initial production task assignments.
func (c CreateOrderCommand) Tasks() []TaskAssignment {
	return c.tasks
}

// RecordedBy returns the acting user, recorded on the advance ledger entry.
func (c CreateOrderCommand) RecordedBy() kernel.UUID {
	return c.recordedBy
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}
	c.shopID = id
	return nil
}

func (c *CreateOrderCommand) setRecordedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recordedBy", err)
	}
	c.recordedBy = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = append([]order.Item(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setTasks(tasks []TaskAssignment) error {
	if len(tasks) == 0 {
		return errs.NewValueIsRequiredError("tasks")
	}
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	c.tasks = append([]TaskAssignment(nil), tasks...)
	return nil
}
