// Package pos implements the point-of-sale checkout core: cart, payment
// methods, order snapshots, order history, and the checkout pipeline.
package pos

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/pos-checkout-service/internal/model"
)

// DefaultCartCapacity bounds the number of distinct products per cart
// when no explicit capacity is configured.
const DefaultCartCapacity = 10

// Cart accumulates line items for a single session. It holds at most one
// item per product id; adding an id that is already present merges the
// quantities instead of appending a second entry. The cart is safe for
// concurrent use: HTTP handlers mutate it from request goroutines.
type Cart struct {
	mu       sync.RWMutex
	items    []model.CartItem
	capacity int
}

// NewCart returns an empty cart bounded to capacity distinct products.
func NewCart(capacity int) *Cart {
	if capacity <= 0 {
		capacity = DefaultCartCapacity
	}
	return &Cart{capacity: capacity}
}

// AddItem adds qty units of p to the cart.
//
// It fails with ErrInvalidQuantity when qty is not positive and with
// ErrCartFull when the cart is at capacity and p is not already present.
// The cart is left unchanged on either failure.
func (c *Cart) AddItem(p model.Product, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			// Merge is by id only: the stored product is not refreshed,
			// so the name and price recorded on first add win over a
			// differing p.
			c.items[i].Quantity += qty
			return nil
		}
	}
	if len(c.items) >= c.capacity {
		return ErrCartFull
	}
	c.items = append(c.items, model.CartItem{Product: p, Quantity: qty})
	return nil
}

// Total returns the exact sum of all line subtotals, zero for an empty cart.
func (c *Cart) Total() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []model.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items) == 0
}

// Clear drops all items. The capacity is unchanged; the cart is reset,
// never deleted.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
