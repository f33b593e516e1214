package pos

import (
	"sync"

	"github.com/fairyhunter13/pos-checkout-service/internal/model"
)

// DefaultOrderCapacity bounds the order history when no explicit
// capacity is configured.
const DefaultOrderCapacity = 10

// History stores completed orders up to a fixed capacity. It is
// append-only within a session: orders are never evicted or rewritten.
// Safe for concurrent use, like the cart.
type History struct {
	mu       sync.RWMutex
	orders   []model.Order
	capacity int
}

// NewHistory returns an empty history bounded to capacity orders.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultOrderCapacity
	}
	return &History{capacity: capacity}
}

// Append records o. It fails with ErrOrderHistoryFull at the capacity
// ceiling; the history is unchanged in that case.
func (h *History) Append(o model.Order) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.orders) >= h.capacity {
		return ErrOrderHistoryFull
	}
	h.orders = append(h.orders, o)
	return nil
}

// List returns a copy of the recorded orders, oldest first.
func (h *History) List() []model.Order {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]model.Order, len(h.orders))
	copy(out, h.orders)
	return out
}

// Len returns the number of recorded orders.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.orders)
}
