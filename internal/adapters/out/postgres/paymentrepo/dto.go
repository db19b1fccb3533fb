// Package paymentrepo provides data transfer objects and mapping functions for
// the append-only payment ledger.
package paymentrepo

import (
	"time"

	"tailoring/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents one ledger row. Rows are inserted and read, never
// updated or deleted.
type PaymentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Amount     float64
	Method     string `gorm:"type:varchar(16)"`
	Date       time.Time
	Note       string
	RecordedBy uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:         p.ID().Bytes(),
		OrderID:    p.OrderID().Bytes(),
		Amount:     p.Amount().Amount(),
		Method:     p.PaymentMethod().String(),
		Date:       p.Date(),
		Note:       p.Note(),
		RecordedBy: p.RecordedBy().Bytes(),
	}
}
