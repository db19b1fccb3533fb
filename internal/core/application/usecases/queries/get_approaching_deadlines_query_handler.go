package queries

import (
	"context"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetApproachingDeadlinesQueryHandler retrieves open orders with deadlines
// inside the lookahead window. Delivered and cancelled orders are excluded;
// orders already Completed still appear since they await pickup.
type GetApproachingDeadlinesQueryHandler struct {
	db *gorm.DB
}

// NewGetApproachingDeadlinesQueryHandler creates a handler for deadline queries.
// Requires a GORM database connection for query execution.
func NewGetApproachingDeadlinesQueryHandler(db *gorm.DB) GetApproachingDeadlinesQueryHandler {
	return GetApproachingDeadlinesQueryHandler{db: db}
}

// Handle executes the query. Results are ordered by deadline, soonest first.
func (h GetApproachingDeadlinesQueryHandler) Handle(
	ctx context.Context,
	query GetApproachingDeadlinesQuery,
) ([]GetApproachingDeadlinesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	until := now.AddDate(0, 0, query.WithinDays())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			deadline
		FROM orders
		WHERE status NOT IN (?, ?)
		  AND deadline BETWEEN ? AND ?
		ORDER BY deadline, id
	`, order.StatusDelivered.String(), order.StatusCancelled.String(), now, until).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetApproachingDeadlinesQueryResponse, 0)
	for rows.Next() {
		var resp GetApproachingDeadlinesQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Number, &resp.Status, &resp.Deadline); err != nil {
			return nil, err
		}

		if resp.OrderID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
