package queries

import (
	"context"
	"fmt"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateBillQueryHandler builds a bill from an order's stored data.
// The bill is a pure projection: nothing is written, and repeated generation
// for the same order returns the same bill number and amounts.
type GenerateBillQueryHandler struct {
	db *gorm.DB
}

// NewGenerateBillQueryHandler creates a handler for bill generation.
// Requires a GORM database connection for query execution.
func NewGenerateBillQueryHandler(db *gorm.DB) GenerateBillQueryHandler {
	return GenerateBillQueryHandler{db: db}
}

// Handle executes the bill generation query.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GenerateBillQueryHandler) Handle(
	ctx context.Context,
	query GenerateBillQuery,
) (GenerateBillQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GenerateBillQueryResponse{}, err
	}

	var resp GenerateBillQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			shop_id,
			created_at,
			deadline,
			total_price,
			paid_amount,
			payment_status
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var id, customerID, shopID uuid.UUID
	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&customerID,
		&shopID,
		&resp.OrderDate,
		&resp.Deadline,
		&resp.Total,
		&resp.PaidAmount,
		&resp.PaymentStatus,
	)
	if err != nil {
		return GenerateBillQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"orderId", query.OrderID(), err)
	}

	if resp.OrderID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GenerateBillQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GenerateBillQueryResponse{}, err
	}
	if resp.ShopID, err = kernel.UUIDFromBytes(shopID[:]); err != nil {
		return GenerateBillQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			quantity,
			unit_price,
			fabric_type
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return GenerateBillQueryResponse{}, err
	}
	defer rows.Close()

	resp.Items = make([]BillItemResponse, 0)
	for rows.Next() {
		var item BillItemResponse
		if err = rows.Scan(&item.Name, &item.Quantity, &item.UnitPrice, &item.FabricType); err != nil {
			return GenerateBillQueryResponse{}, err
		}
		item.LineTotal = item.UnitPrice * float64(item.Quantity)
		resp.Subtotal += item.LineTotal
		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GenerateBillQueryResponse{}, err
	}

	paymentRows, err := h.db.WithContext(ctx).Raw(`
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
		return GenerateBillQueryResponse{}, err
	}
	defer paymentRows.Close()

	resp.Payments = make([]PaymentEntryResponse, 0)
	for paymentRows.Next() {
		var entry PaymentEntryResponse
		var entryID, recordedBy uuid.UUID

		err = paymentRows.Scan(
			&entryID,
			&entry.Amount,
			&entry.Method,
			&entry.Date,
			&entry.Note,
			&recordedBy,
		)
		if err != nil {
			return GenerateBillQueryResponse{}, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(entryID[:]); err != nil {
			return GenerateBillQueryResponse{}, err
		}
		if entry.RecordedBy, err = kernel.UUIDFromBytes(recordedBy[:]); err != nil {
			return GenerateBillQueryResponse{}, err
		}

		resp.Payments = append(resp.Payments, entry)
	}

	if err = paymentRows.Err(); err != nil {
		return GenerateBillQueryResponse{}, err
	}

	resp.BillNumber = fmt.Sprintf("BILL-%d-%05d", resp.OrderDate.Year(), resp.OrderNumber)
	resp.Balance = resp.Total - resp.PaidAmount
	if resp.Balance < 0 {
		resp.Balance = 0
	}
	resp.GeneratedAt = time.Now()

	return resp, nil
}
