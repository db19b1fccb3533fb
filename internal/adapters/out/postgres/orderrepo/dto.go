// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The Number column is a database-assigned sequence used for bill numbering;
// statuses are stored as their string names.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number        int64     `gorm:"autoIncrement;uniqueIndex"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	ShopID        uuid.UUID `gorm:"type:uuid;index"`
	Deadline      time.Time
	TotalPrice    float64
	PaidAmount    float64
	PaymentStatus string `gorm:"type:varchar(16)"`
	Status        string `gorm:"type:varchar(16);index"`
	Notes         string
	CreatedAt     time.Time
	Items         []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one line item row belonging to an order.
type ItemDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Name       string
	Quantity   int
	UnitPrice  float64
	FabricType string
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Amount(),
			FabricType: item.FabricType(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Number:        aggregate.Number(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		ShopID:        aggregate.ShopID().Bytes(),
		Deadline:      aggregate.Deadline(),
		TotalPrice:    aggregate.TotalPrice().Amount(),
		PaidAmount:    aggregate.PaidAmount().Amount(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		Status:        aggregate.Status().String(),
		Notes:         aggregate.Notes(),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	totalPrice, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	paidAmount, err := kernel.NewMoney(dto.PaidAmount)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Quantity, unitPrice, itemDTO.FabricType)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		customerID,
		shopID,
		dto.Deadline,
		totalPrice,
		paidAmount,
		paymentStatus,
		status,
		dto.Notes,
		items,
		dto.CreatedAt,
	)
}
