package pos

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/pos-checkout-service/internal/catalog"
	"github.com/fairyhunter13/pos-checkout-service/internal/model"
	"github.com/fairyhunter13/pos-checkout-service/internal/obs"
)

// AuditSink receives one record per completed checkout. audit.Log is the
// production implementation; tests substitute a fake.
type AuditSink interface {
	Log(orderID uint64, paymentLabel string)
}

// Service wires the catalog, cart, order history, and audit sink into
// the checkout pipeline. All dependencies are injected at construction;
// nothing is looked up from package globals.
type Service struct {
	catalog  *catalog.Catalog
	cart     *Cart
	history  *History
	audit    AuditSink
	receipts io.Writer
	seq      Sequencer
}

// NewService constructs a Service. receipts receives payment
// confirmations; a nil receipts writer discards them.
func NewService(cat *catalog.Catalog, cart *Cart, history *History, sink AuditSink, receipts io.Writer) *Service {
	if receipts == nil {
		receipts = io.Discard
	}
	return &Service{catalog: cat, cart: cart, history: history, audit: sink, receipts: receipts}
}

// ListProducts returns the catalog in listing order.
func (s *Service) ListProducts() []model.Product {
	return s.catalog.List()
}

// AddToCart resolves productID against the catalog and adds qty units of
// it to the cart. It fails with ErrUnknownProduct on a lookup miss and
// propagates the cart's ErrInvalidQuantity and ErrCartFull; the cart is
// left unchanged on every failure.
func (s *Service) AddToCart(productID uint64, qty int) error {
	p, ok := s.catalog.Get(productID)
	if !ok {
		return fmt.Errorf("product %d: %w", productID, ErrUnknownProduct)
	}
	return s.cart.AddItem(p, qty)
}

// ViewCart returns a display snapshot of the cart's line items.
func (s *Service) ViewCart() []model.CartItem {
	return s.cart.Items()
}

// CartTotal returns the current cart total.
func (s *Service) CartTotal() decimal.Decimal {
	return s.cart.Total()
}

// CartEmpty reports whether the cart has no items.
func (s *Service) CartEmpty() bool {
	return s.cart.IsEmpty()
}

// Checkout pays the cart total via method, snapshots the cart into a new
// order, records it, writes the audit line, and clears the cart.
//
// Checking out an empty cart is degenerate but well-defined: it yields
// an order with a zero total and no line items.
//
// When the order history is full the constructed order is still returned
// together with ErrOrderHistoryFull: the receipt was already issued, but
// the order is absent from history, no audit line is written, and the
// cart keeps its contents.
func (s *Service) Checkout(method Method) (model.Order, error) {
	total := s.cart.Total()
	method.Pay(s.receipts, total)

	order := model.Order{
		ID:            s.seq.Next(),
		LineItems:     s.cart.Items(),
		PaymentMethod: method.Label(),
		Total:         total,
	}
	if err := s.history.Append(order); err != nil {
		obs.Logger.Warn("order_not_recorded", "order_id", order.ID, "error", err)
		return order, err
	}
	if s.audit != nil {
		s.audit.Log(order.ID, order.PaymentMethod)
	}
	s.cart.Clear()
	obs.Logger.Info("checkout_complete",
		"order_id", order.ID,
		"payment_method", order.PaymentMethod,
		"total", order.Total.StringFixed(2),
		"line_items", len(order.LineItems),
	)
	return order, nil
}

// ListOrders returns the recorded orders, oldest first.
func (s *Service) ListOrders() []model.Order {
	return s.history.List()
}

// OrdersRecorded returns how many orders the history currently holds.
func (s *Service) OrdersRecorded() int {
	return s.history.Len()
}
