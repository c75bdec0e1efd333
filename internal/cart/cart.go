// Package cart implements the shopping cart as a deterministic reducer:
// every change is an Action applied to the previous Cart value.
package cart

import (
	"fmt"
	"math"

	"github.com/Lixing-Zhang/fashion-store/internal/models"
)

// Cart is an ordered list of lines, at most one per product id.
// Lines keep the position of their first insertion.
type Cart []models.CartItem

// Action is a cart state transition
type Action interface {
	apply(c Cart) (Cart, bool)
}

// Add puts one unit of Product into the cart
type Add struct {
	Product models.Product
}

// Remove deletes the whole line for ProductID, whatever its quantity
type Remove struct {
	ProductID int64
}

// Reduce returns the cart that results from applying a to c.
// c is never modified.
func Reduce(c Cart, a Action) Cart {
	next, _ := a.apply(c)
	return next
}

func (a Add) apply(c Cart) (Cart, bool) {
	if i := c.indexOf(a.Product.ID); i >= 0 {
		next := c.clone()
		next[i].Quantity++
		return next, true
	}

	next := make(Cart, len(c), len(c)+1)
	copy(next, c)
	return append(next, models.CartItem{Product: a.Product, Quantity: 1}), true
}

func (a Remove) apply(c Cart) (Cart, bool) {
	i := c.indexOf(a.ProductID)
	if i < 0 {
		return c, false
	}

	next := make(Cart, 0, len(c)-1)
	next = append(next, c[:i]...)
	return append(next, c[i+1:]...), true
}

// Quantity returns the quantity of productID in the cart, 0 if absent
func (c Cart) Quantity(productID int64) int {
	if i := c.indexOf(productID); i >= 0 {
		return c[i].Quantity
	}
	return 0
}

func (c Cart) indexOf(productID int64) int {
	for i, item := range c {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (c Cart) clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// TotalItems returns the number of units across all lines
func TotalItems(c Cart) int {
	total := 0
	for _, item := range c {
		total += item.Quantity
	}
	return total
}

// TotalCents returns the cart value in cents.
// Each price is rounded to the cent before it is multiplied.
func TotalCents(c Cart) int64 {
	var total int64
	for _, item := range c {
		total += toCents(item.Product.Price) * int64(item.Quantity)
	}
	return total
}

// TotalPrice returns the cart value formatted with two decimals, e.g. "259.97"
func TotalPrice(c Cart) string {
	return FormatCents(TotalCents(c))
}

// FormatCents renders an amount in cents as a decimal string
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
