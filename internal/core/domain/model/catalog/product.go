package catalog

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

type Product struct { //nolint:recvcheck //using for validation
	id          kernel.UUID
	storeID     kernel.UUID
	name        string
	description string
	price       kernel.Money
	image       string
	available   bool
	guard       guard.ConstructorGuard
}

func NewProduct(
	id, storeID kernel.UUID,
	name, description string,
	price kernel.Money,
	image string,
	available bool,
) (Product, error) {
	p := Product{
		description: description,
		price:       price,
		image:       image,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(id.Validate(), storeID.Validate(), p.setName(name)); err != nil {
		return Product{}, err
	}

	p.id = id
	p.storeID = storeID
	return p, nil
}

func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p Product) ID() kernel.UUID {
	return p.id
}

func (p Product) StoreID() kernel.UUID {
	return p.storeID
}

func (p Product) Name() string {
	return p.name
}

func (p Product) Description() string {
	return p.description
}

func (p Product) Price() kernel.Money {
	return p.price
}

func (p Product) Image() string {
	return p.image
}

func (p Product) Available() bool {
	return p.available
}

// IsOrderableAt reports whether the product can be ordered from the given store.
func (p Product) IsOrderableAt(storeID kernel.UUID) bool {
	return p.available && p.storeID.IsEqual(storeID)
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}
