package order

import (
	"errors"
	"fmt"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/errs"
)

// Item is a single garment line on an order: what is to be made, how many,
// at what unit price and from which fabric. Items are immutable after order
// creation; there is no update path.
type Item struct {
	name       string
	quantity   int
	unitPrice  kernel.Money
	fabricType string
}

// NewItem creates an order line item.
// The name is required, quantity must be positive and the unit price non-negative.
func NewItem(name string, quantity int, unitPrice kernel.Money, fabricType string) (Item, error) {
	item := Item{}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.unitPrice = unitPrice
	item.fabricType = fabricType
	return item, nil
}

// Name returns the garment name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the number of pieces ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per piece.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// FabricType returns the fabric the item is made from.
func (i Item) FabricType() string {
	return i.fabricType
}

// LineTotal returns quantity times unit price.
func (i Item) LineTotal() kernel.Money {
	return i.unitPrice.Mul(i.quantity)
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
