// Package menu models the read-only catalog the cart is built from.
package menu

import (
	"errors"
	"strings"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/pkg/errs"
	"tableorders/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a menu item. It is immutable reference data owned by the menu source.
type Product struct { //nolint:recvcheck //using for validation
	id       string
	name     string
	price    kernel.Money
	category string

	guard guard.ConstructorGuard
}

// NewProduct validates that id and name are non-blank. Category is optional and only
// groups products for display.
func NewProduct(id, name string, price kernel.Money, category string) (Product, error) {
	p := Product{
		price:    price,
		category: strings.TrimSpace(category),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setID(id), p.setName(name)); err != nil {
		return Product{}, err
	}

	return p, nil
}

func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p Product) ID() string {
	return p.id
}

func (p Product) Name() string {
	return p.name
}

func (p Product) Price() kernel.Money {
	return p.price
}

func (p Product) Category() string {
	return p.category
}

func (p *Product) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
