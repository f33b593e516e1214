package pos

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/pos-checkout-service/internal/catalog"
	"github.com/fairyhunter13/pos-checkout-service/internal/obs"
)

func TestMain(m *testing.M) {
	obs.InitDiscardLogger()
	os.Exit(m.Run())
}

type auditEntry struct {
	OrderID uint64
	Label   string
}

type fakeSink struct {
	entries []auditEntry
}

func (f *fakeSink) Log(orderID uint64, paymentLabel string) {
	f.entries = append(f.entries, auditEntry{OrderID: orderID, Label: paymentLabel})
}

func newTestService(cartCap, orderCap int) (*Service, *bytes.Buffer, *fakeSink) {
	cat := catalog.New()
	cat.Put(product(1, "A", 10.00))
	cat.Put(product(2, "B", 5.50))
	cat.Put(product(3, "C", 1.25))

	receipts := &bytes.Buffer{}
	sink := &fakeSink{}
	svc := NewService(cat, NewCart(cartCap), NewHistory(orderCap), sink, receipts)
	return svc, receipts, sink
}

func TestCheckoutRoundTrip(t *testing.T) {
	svc, receipts, sink := newTestService(10, 10)
	require.NoError(t, svc.AddToCart(1, 2))
	require.NoError(t, svc.AddToCart(2, 1))

	order, err := svc.Checkout(MethodCash)
	require.NoError(t, err)

	require.Equal(t, uint64(1), order.ID)
	require.Equal(t, "25.50", order.Total.StringFixed(2))
	require.Len(t, order.LineItems, 2)
	require.Equal(t, "Cash", order.PaymentMethod)

	require.True(t, svc.CartEmpty())
	require.Equal(t, "Paid $25.50 using Cash.\n", receipts.String())
	require.Equal(t, []auditEntry{{OrderID: 1, Label: "Cash"}}, sink.entries)

	orders := svc.ListOrders()
	require.Len(t, orders, 1)
	require.Equal(t, order.ID, orders[0].ID)
}

func TestOrderIDsStrictlyIncrease(t *testing.T) {
	svc, _, _ := newTestService(10, 10)
	methods := []Method{MethodCash, MethodCard, MethodGCash}
	for i, m := range methods {
		require.NoError(t, svc.AddToCart(3, 1))
		order, err := svc.Checkout(m)
		require.NoError(t, err)
		require.Equal(t, uint64(i+1), order.ID)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, receipts, _ := newTestService(10, 10)

	order, err := svc.Checkout(MethodCard)
	require.NoError(t, err)
	require.True(t, order.Total.IsZero())
	require.Empty(t, order.LineItems)
	require.Equal(t, "Credit / Debit Card", order.PaymentMethod)
	require.Equal(t, "Paid $0.00 using Credit / Debit Card.\n", receipts.String())
}

func TestOrderSnapshotIsolation(t *testing.T) {
	svc, _, _ := newTestService(10, 10)
	require.NoError(t, svc.AddToCart(1, 2))

	order, err := svc.Checkout(MethodGCash)
	require.NoError(t, err)

	// Mutate the cart after checkout; the returned order and the
	// recorded one must not move.
	require.NoError(t, svc.AddToCart(2, 7))
	require.NoError(t, svc.AddToCart(1, 1))

	require.Len(t, order.LineItems, 1)
	require.Equal(t, 2, order.LineItems[0].Quantity)
	require.Equal(t, "20.00", order.Total.StringFixed(2))

	recorded := svc.ListOrders()[0]
	require.Len(t, recorded.LineItems, 1)
	require.Equal(t, 2, recorded.LineItems[0].Quantity)
}

func TestCheckoutOrderHistoryFull(t *testing.T) {
	svc, receipts, sink := newTestService(10, 1)
	require.NoError(t, svc.AddToCart(1, 1))
	_, err := svc.Checkout(MethodCash)
	require.NoError(t, err)

	require.NoError(t, svc.AddToCart(2, 3))
	receipts.Reset()

	order, err := svc.Checkout(MethodGCash)
	require.ErrorIs(t, err, ErrOrderHistoryFull)

	// The order was still constructed and paid for.
	require.Equal(t, uint64(2), order.ID)
	require.Equal(t, "16.50", order.Total.StringFixed(2))
	require.Equal(t, "Paid $16.50 using GCash.\n", receipts.String())

	// But it is not recorded, no audit line was written, and the cart
	// keeps its contents.
	require.Len(t, svc.ListOrders(), 1)
	require.Len(t, sink.entries, 1)
	require.False(t, svc.CartEmpty())

	// The consumed id is never reused.
	order3, err := svc.Checkout(MethodCash)
	require.ErrorIs(t, err, ErrOrderHistoryFull)
	require.Equal(t, uint64(3), order3.ID)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc, _, _ := newTestService(10, 10)
	err := svc.AddToCart(999, 1)
	require.ErrorIs(t, err, ErrUnknownProduct)
	require.True(t, svc.CartEmpty())
}

func TestAddToCartPropagatesCartErrors(t *testing.T) {
	svc, _, _ := newTestService(2, 10)
	require.ErrorIs(t, svc.AddToCart(1, 0), ErrInvalidQuantity)
	require.NoError(t, svc.AddToCart(1, 1))
	require.NoError(t, svc.AddToCart(2, 1))
	require.ErrorIs(t, svc.AddToCart(3, 1), ErrCartFull)
	require.Len(t, svc.ViewCart(), 2)
}

func TestCheckoutNilAuditSink(t *testing.T) {
	cat := catalog.New()
	cat.Put(product(1, "A", 2.00))
	svc := NewService(cat, NewCart(10), NewHistory(10), nil, nil)

	require.NoError(t, svc.AddToCart(1, 1))
	order, err := svc.Checkout(MethodCash)
	require.NoError(t, err)
	require.Equal(t, "2.00", order.Total.StringFixed(2))
}
