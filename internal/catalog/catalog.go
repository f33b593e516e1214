// Package catalog holds the fixed set of purchasable products for a session.
package catalog

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/pos-checkout-service/internal/model"
)

// Catalog is an id-keyed product lookup that also preserves the order
// products were registered in, for menu-style listing.
type Catalog struct {
	mu  sync.RWMutex
	m   map[uint64]model.Product
	ids []uint64
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{m: make(map[uint64]model.Product)}
}

// Put registers a product. Re-registering an id overwrites the entry but
// keeps its original listing position.
func (c *Catalog) Put(p model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.m[p.ID]; !ok {
		c.ids = append(c.ids, p.ID)
	}
	c.m[p.ID] = p
}

// Get returns the product for id, reporting whether it exists.
func (c *Catalog) Get(id uint64) (model.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.m[id]
	return p, ok
}

// List returns all products in registration order.
func (c *Catalog) List() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Product, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.m[id])
	}
	return out
}

// Len returns the number of registered products.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ids)
}

// Seed builds the default session catalog.
func Seed() *Catalog {
	c := New()
	c.Put(model.Product{ID: 1, Name: "Laptop", Price: decimal.NewFromFloat(899.99)})
	c.Put(model.Product{ID: 2, Name: "Smartphone", Price: decimal.NewFromFloat(499.50)})
	c.Put(model.Product{ID: 3, Name: "Headphones", Price: decimal.NewFromFloat(59.95)})
	c.Put(model.Product{ID: 4, Name: "Keyboard", Price: decimal.NewFromFloat(24.00)})
	c.Put(model.Product{ID: 5, Name: "USB-C Cable", Price: decimal.NewFromFloat(7.25)})
	return c
}
