package queries

import (
	"context"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentInfoQueryHandler retrieves an order's payment summary from the
// database, combining the order's running totals with its payment ledger.
type GetPaymentInfoQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentInfoQueryHandler creates a handler for payment summary queries.
// Requires a GORM database connection for query execution.
func NewGetPaymentInfoQueryHandler(db *gorm.DB) GetPaymentInfoQueryHandler {
	return GetPaymentInfoQueryHandler{db: db}
}

// Handle executes the payment summary query.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetPaymentInfoQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentInfoQuery,
) (GetPaymentInfoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentInfoQueryResponse{}, err
	}

	var resp GetPaymentInfoQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			total_price,
			paid_amount,
			payment_status
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var id uuid.UUID
	if err := row.Scan(&id, &resp.TotalPrice, &resp.PaidAmount, &resp.PaymentStatus); err != nil {
		return GetPaymentInfoQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"orderId", query.OrderID(), err)
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetPaymentInfoQueryResponse{}, err
	}
	resp.OrderID = orderID
	resp.Balance = resp.TotalPrice - resp.PaidAmount
	if resp.Balance < 0 {
		resp.Balance = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			amount,
			method,
			date,
			note,
			recorded_by
		FROM payments
		WHERE order_id = ?
		ORDER BY date DESC, id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return GetPaymentInfoQueryResponse{}, err
	}
	defer rows.Close()

	resp.Payments = make([]PaymentEntryResponse, 0)
	for rows.Next() {
		var entry PaymentEntryResponse
		var entryID, recordedBy uuid.UUID

		err = rows.Scan(
			&entryID,
			&entry.Amount,
			&entry.Method,
			&entry.Date,
			&entry.Note,
			&recordedBy,
		)
		if err != nil {
			return GetPaymentInfoQueryResponse{}, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(entryID[:]); err != nil {
			return GetPaymentInfoQueryResponse{}, err
		}
		if entry.RecordedBy, err = kernel.UUIDFromBytes(recordedBy[:]); err != nil {
			return GetPaymentInfoQueryResponse{}, err
		}

		resp.Payments = append(resp.Payments, entry)
	}

	if err = rows.Err(); err != nil {
		return GetPaymentInfoQueryResponse{}, err
	}

	return resp, nil
}
