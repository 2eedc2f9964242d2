// Package cart implements the storefront shopping cart: an ordered list of
// product lines plus an optional applied discount, with derived totals and a
// best-effort persistent mirror.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/koraytemur/hirdavat/internal/domain"
)

// vatRate is the fixed 21% VAT applied to the discounted subtotal.
var vatRate = decimal.New(21, -2)

var hundred = decimal.New(100, 0)

// Line is one (product, quantity) pair in the cart. Quantity is always >= 1;
// a line that would drop to zero is removed instead.
type Line struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Totals holds the derived monetary amounts for a cart, each rounded to two
// decimal places (round half away from zero).
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Cart is the in-memory cart state: insertion-ordered lines and at most one
// applied discount. The zero value is an empty cart ready for use.
//
// Cart itself performs no I/O and is not safe for concurrent use; Engine
// wraps it with locking and persistence.
type Cart struct {
	lines    []Line
	discount *domain.Discount
}

// Add merges quantity into an existing line for the same product ID, or
// appends a new line. Relative order of existing lines is preserved.
// Quantities below one are treated as one.
func (c *Cart) Add(product domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}

	c.lines = append(c.lines, Line{Product: product, Quantity: quantity})
}

// Remove drops the line matching productID. No-op if absent.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces the quantity of the line matching productID,
// preserving its position. A quantity of zero or less removes the line.
// No-op if the product is not in the cart.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart and drops the applied discount in one transition.
// A discount never survives a cart clear.
func (c *Cart) Clear() {
	c.lines = nil
	c.discount = nil
}

// SetDiscount replaces the applied discount. Passing nil removes it. No
// validation happens here; the backend vets discount codes before they reach
// the cart.
func (c *Cart) SetDiscount(d *domain.Discount) {
	c.discount = d
}

// Discount returns the currently applied discount, or nil.
func (c *Cart) Discount() *domain.Discount {
	return c.discount
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// replaceLines swaps in a restored line list, e.g. from a persisted snapshot.
func (c *Cart) replaceLines(lines []Line) {
	c.lines = lines
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount returns the total quantity across all lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Totals computes subtotal, tax, and total for the current cart state.
//
//  1. Sum price x quantity over all lines.
//  2. Apply the discount: percentage scales by (1 - value/100), fixed
//     subtracts the value with the result clamped at zero. Percentage values
//     are not clamped to [0,100]; the backend validates them upstream.
//  3. Tax is 21% of the discounted subtotal; total is subtotal plus tax.
//  4. Each output is independently rounded to the cent, half away from zero.
//
// An empty cart yields all-zero totals.
func (c *Cart) Totals() Totals {
	subtotal := decimal.Zero
	for _, l := range c.lines {
		subtotal = subtotal.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	if c.discount != nil {
		switch c.discount.DiscountType {
		case domain.DiscountTypePercentage:
			subtotal = subtotal.Mul(decimal.NewFromInt(1).Sub(c.discount.DiscountValue.Div(hundred)))
		case domain.DiscountTypeFixed:
			subtotal = subtotal.Sub(c.discount.DiscountValue)
			if subtotal.IsNegative() {
				subtotal = decimal.Zero
			}
		}
	}

	tax := subtotal.Mul(vatRate)
	total := subtotal.Add(tax)

	return Totals{
		Subtotal: subtotal.Round(2),
		Tax:      tax.Round(2),
		Total:    total.Round(2),
	}
}
