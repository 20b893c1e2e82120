package services

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"
)

// Line is one requested product and quantity.
type Line struct {
	ProductID kernel.UUID
	Quantity  int
}

// Placement is what a customer submits when ordering from a store.
type Placement struct {
	OrderID       kernel.UUID
	Customer      kernel.Actor
	Lines         []Line
	Fulfillment   order.Fulfillment
	PaymentMethod order.PaymentMethod
	Notes         string
}

// OrderPlacement turns a Placement into a pending Order and charges the store's quota.
//
// Business rules:
//   - only customers place orders
//   - every line references an available product of the store
//   - a pickup order names an existing, active pickup point
//   - a pack whose validity has elapsed is dropped before the order is priced
//   - one delivery is consumed from the store's pack when packs are required or the
//     store has one installed; an empty quota fails with ErrQuotaExhausted
type OrderPlacement struct {
	accountant   PackAccountant
	packRequired bool
}

func NewOrderPlacement(accountant PackAccountant, packRequired bool) OrderPlacement {
	return OrderPlacement{accountant: accountant, packRequired: packRequired}
}

// Place builds the order and consumes the store's quota.
//
// Parameters:
//   - p: the submitted placement
//   - s: the store, loaded for update
//   - products: the catalog products referenced by p.Lines
//   - pickupPoint: the pickup point when p.Fulfillment is a pickup, otherwise nil
//   - now: placement time
//
// Returns:
//   - *order.Order: the new order, status pending, with its placement event recorded
//   - error: ErrForbidden, ErrObjectNotFound, value errors or ErrQuotaExhausted
func (op OrderPlacement) Place(
	p Placement,
	s *store.Store,
	products []catalog.Product,
	pickupPoint *catalog.PickupPoint,
	now time.Time,
) (*order.Order, error) {
	if err := errors.Join(p.Customer.Validate(), s.Validate()); err != nil {
		return nil, err
	}
	if !p.Customer.Is(kernel.RoleCustomer) {
		return nil, errs.NewForbiddenError("only customers place orders")
	}
	if err := op.checkPickupPoint(p.Fulfillment, pickupPoint); err != nil {
		return nil, err
	}

	items, err := op.buildItems(p.Lines, s.ID(), products)
	if err != nil {
		return nil, err
	}

	// An elapsed pack is dropped before pricing so the commission and the quota
	// check see the same store, whether or not the expiry job has run yet.
	s.ExpirePack(now)

	o, err := order.NewOrder(p.OrderID, order.Draft{
		CustomerID:    p.Customer.ID(),
		StoreID:       s.ID(),
		Items:         items,
		Fulfillment:   p.Fulfillment,
		PaymentMethod: p.PaymentMethod,
		Charges:       op.accountant.Quote(order.Subtotal(items), s, p.Fulfillment),
		Notes:         p.Notes,
	}, now)
	if err != nil {
		return nil, err
	}

	if op.packRequired || s.UsesPacks() {
		if err = s.ConsumeDelivery(now); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (op OrderPlacement) buildItems(lines []Line, storeID kernel.UUID, products []catalog.Product) ([]order.Item, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	byID := make(map[kernel.UUID]catalog.Product, len(products))
	for _, product := range products {
		byID[product.ID()] = product
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok || !product.StoreID().IsEqual(storeID) {
			return nil, errs.NewObjectNotFoundError("product", line.ProductID)
		}
		if !product.Available() {
			return nil, errs.NewValueIsInvalidErrorWithCause("product",
				fmt.Errorf("%s is not available", product.Name()))
		}

		item, err := order.NewItem(kernel.NewUUID(), product.ID(), product.Name(), line.Quantity, product.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (op OrderPlacement) checkPickupPoint(f order.Fulfillment, pickupPoint *catalog.PickupPoint) error {
	if !f.IsPickup() {
		return nil
	}
	if pickupPoint == nil || !pickupPoint.ID().IsEqual(*f.PickupPointID()) {
		return errs.NewObjectNotFoundError("pickup point", f.PickupPointID())
	}
	if !pickupPoint.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause("pickup point",
			fmt.Errorf("%s is not active", pickupPoint.Name()))
	}
	return nil
}
