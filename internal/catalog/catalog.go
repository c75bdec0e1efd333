// Package catalog holds the read-only product table of the store and the
// category filter rules used to browse it.
package catalog

import (
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/fashion-store/internal/models"
)

// NoCategory is the empty selection: no filter applied
const NoCategory = ""

var (
	ErrInvalidProduct   = errors.New("invalid product")
	ErrDuplicateProduct = errors.New("duplicate product id")
)

// Catalog is an immutable, ordered collection of products.
// It is safe for concurrent use because nothing mutates it after New returns.
type Catalog struct {
	products   []models.Product
	categories []models.Category
	index      map[int64]int
}

// New builds a catalog from the given products and category descriptors.
// Product order is preserved for every listing.
func New(products []models.Product, categories []models.Category) (*Catalog, error) {
	c := &Catalog{
		products:   make([]models.Product, len(products)),
		categories: make([]models.Category, len(categories)),
		index:      make(map[int64]int, len(products)),
	}
	copy(c.products, products)
	copy(c.categories, categories)

	for i, p := range c.products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("%w: id %d must be positive", ErrInvalidProduct, p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("%w: product %d has negative price", ErrInvalidProduct, p.ID)
		}
		if _, exists := c.index[p.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateProduct, p.ID)
		}
		c.index[p.ID] = i
	}

	return c, nil
}

// MustNew is like New but panics on invalid input.
// Intended for static tables compiled into the binary.
func MustNew(products []models.Product, categories []models.Category) *Catalog {
	c, err := New(products, categories)
	if err != nil {
		panic(err)
	}
	return c
}

// List returns the products in the given category, in catalog order.
// NoCategory returns the full catalog; an unknown category returns an empty slice.
func (c *Catalog) List(category string) []models.Product {
	if category == NoCategory {
		out := make([]models.Product, len(c.products))
		copy(out, c.products)
		return out
	}

	out := make([]models.Product, 0)
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Lookup returns the product with the given id
func (c *Catalog) Lookup(id int64) (models.Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// Categories returns the category descriptors in display order
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// HasCategory reports whether name is one of the catalog's categories
func (c *Catalog) HasCategory(name string) bool {
	for _, cat := range c.categories {
		if cat.Name == name {
			return true
		}
	}
	return false
}

// Len returns the number of products in the catalog
func (c *Catalog) Len() int {
	return len(c.products)
}
