// Package model defines domain types used by the service.
package model

import "github.com/shopspring/decimal"

// Product is a catalog entry. Products are immutable after construction
// and are identified by ID; name and price are descriptive only.
type Product struct {
	ID    uint64          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CartItem pairs a product with a purchase quantity. A quantity of zero
// never occurs in a live cart; such an item is removed, not kept.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns the product price multiplied by the quantity.
func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// Order is an immutable point-in-time snapshot of a checked-out cart.
// Later cart mutation never affects an order that was already returned.
type Order struct {
	ID            uint64          `json:"id"`
	LineItems     []CartItem      `json:"line_items"`
	PaymentMethod string          `json:"payment_method"`
	Total         decimal.Decimal `json:"total"`
}
