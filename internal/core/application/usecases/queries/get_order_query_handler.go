package queries

import (
	"context"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a complete order view from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order detail query.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.Items, err = h.fetchItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Tasks, err = h.fetchTasks(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Activities, err = h.fetchActivities(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) fetchOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			shop_id,
			deadline,
			total_price,
			paid_amount,
			payment_status,
			status,
			notes,
			created_at
		FROM orders
		WHERE id = ?
	`, orderID.String()).Row()

	var id, customerID, shopID uuid.UUID
	err := row.Scan(
		&id,
		&resp.Number,
		&customerID,
		&shopID,
		&resp.Deadline,
		&resp.TotalPrice,
		&resp.PaidAmount,
		&resp.PaymentStatus,
		&resp.Status,
		&resp.Notes,
		&resp.CreatedAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("orderId", orderID, err)
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.ShopID, err = kernel.UUIDFromBytes(shopID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) fetchItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			quantity,
			unit_price,
			fabric_type
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		if err = rows.Scan(&item.Name, &item.Quantity, &item.UnitPrice, &item.FabricType); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) fetchTasks(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderTaskResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			worker_id,
			task_type,
			status,
			assigned_at,
			started_at,
			completed_at
		FROM tasks
		WHERE order_id = ?
		ORDER BY assigned_at, id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]OrderTaskResponse, 0)
	for rows.Next() {
		var t OrderTaskResponse
		var id, workerID uuid.UUID

		err = rows.Scan(
			&id,
			&workerID,
			&t.TaskType,
			&t.Status,
			&t.AssignedAt,
			&t.StartedAt,
			&t.CompletedAt,
		)
		if err != nil {
			return nil, err
		}

		if t.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if t.WorkerID, err = kernel.UUIDFromBytes(workerID[:]); err != nil {
			return nil, err
		}

		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (h GetOrderQueryHandler) fetchActivities(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderActivityResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			activity_type,
			description,
			old_status,
			new_status,
			created_at
		FROM activities
		WHERE order_id = ?
		ORDER BY created_at DESC, id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]OrderActivityResponse, 0)
	for rows.Next() {
		var a OrderActivityResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&a.ActivityType,
			&a.Description,
			&a.OldStatus,
			&a.NewStatus,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if a.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		activities = append(activities, a)
	}

	return activities, rows.Err()
}
