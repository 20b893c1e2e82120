package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one order line. Name and price are snapshots of the product at
// placement time; subtotal is always price × quantity.
type Item struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	productID kernel.UUID
	name      string
	quantity  int
	price     kernel.Money
	subtotal  kernel.Money
	guard     guard.ConstructorGuard
}

func NewItem(id, productID kernel.UUID, name string, quantity int, price kernel.Money) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.id = id
	item.productID = productID
	item.price = price
	item.subtotal = price.Times(quantity)
	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ID() kernel.UUID {
	return i.id
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) Price() kernel.Money {
	return i.price
}

func (i Item) Subtotal() kernel.Money {
	return i.subtotal
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
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

// Subtotal sums the item subtotals.
func Subtotal(items []Item) kernel.Money {
	var total kernel.Money
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
