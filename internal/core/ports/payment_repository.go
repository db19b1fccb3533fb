package ports

import (
	"context"

	"tailoring/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for the payment ledger.
// The ledger is append-only and is written through commands; history reads go
// through the query side.
type PaymentRepository interface {
	// Add appends a payment to the ledger.
	Add(ctx context.Context, p *payment.Payment) error
}
