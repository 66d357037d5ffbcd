// Package menufile serves the menu from a YAML catalog loaded once at startup.
//
// The catalog format is:
//
//	products:
//	  - id: burger
//	    name: Classic Burger
//	    price: "10.00"
//	    category: mains
package menufile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/menu"
	"tableorders/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

var ErrCatalogIsEmpty = errors.New("menu catalog has no products")

type catalogDocument struct {
	Products []productDocument `yaml:"products"`
}

type productDocument struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Category string `yaml:"category"`
}

// Catalog implements ports.MenuRepository over an immutable product list.
type Catalog struct {
	products []menu.Product
	byID     map[string]int
}

// NewCatalog builds a catalog from already constructed products.
// Product identifiers must be unique.
func NewCatalog(products []menu.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrCatalogIsEmpty
	}

	c := &Catalog{
		products: make([]menu.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID()]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("productId", fmt.Errorf("duplicate id %q", p.ID()))
		}
		c.byID[p.ID()] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Parse decodes a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrCatalogIsEmpty
	}

	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("menu: decode catalog: %w", err)
	}

	products := make([]menu.Product, 0, len(doc.Products))
	for i, pd := range doc.Products {
		price, err := kernel.MoneyFromString(pd.Price)
		if err != nil {
			return nil, fmt.Errorf("menu: product #%d (%s): %w", i+1, pd.ID, err)
		}
		p, err := menu.NewProduct(pd.ID, pd.Name, price, pd.Category)
		if err != nil {
			return nil, fmt.Errorf("menu: product #%d (%s): %w", i+1, pd.ID, err)
		}
		products = append(products, p)
	}

	return NewCatalog(products)
}

func LoadReader(r io.Reader) (*Catalog, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("menu: read catalog: %w", err)
	}
	return Parse(content)
}

// LoadFile reads and parses the catalog at path.
func LoadFile(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("menu: read %s: %w", path, err)
	}
	c, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("menu: %s: %w", path, err)
	}
	return c, nil
}

func (c *Catalog) Get(_ context.Context, productID string) (menu.Product, error) {
	i, ok := c.byID[productID]
	if !ok {
		return menu.Product{}, errs.NewObjectNotFoundError("product", productID)
	}
	return c.products[i], nil
}

func (c *Catalog) List(_ context.Context) ([]menu.Product, error) {
	out := make([]menu.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}
