package pos

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Method identifies one of the supported payment methods. The set is
// closed: there are exactly three variants and ParseMethod rejects
// anything else.
type Method int

const (
	MethodCash Method = iota + 1
	MethodCard
	MethodGCash
)

// Methods lists the supported payment methods in menu order.
func Methods() []Method {
	return []Method{MethodCash, MethodCard, MethodGCash}
}

// Label returns the human-readable name recorded on orders, receipts,
// and audit lines.
func (m Method) Label() string {
	switch m {
	case MethodCash:
		return "Cash"
	case MethodCard:
		return "Credit / Debit Card"
	case MethodGCash:
		return "GCash"
	}
	return "Unknown"
}

// Pay writes the payment confirmation for amount to w, with the amount
// fixed to two decimal places.
//
// Amounts are always cart totals and therefore non-negative; there is no
// decline or retry path for any variant.
func (m Method) Pay(w io.Writer, amount decimal.Decimal) {
	fmt.Fprintf(w, "Paid $%s using %s.\n", amount.StringFixed(2), m.Label())
}

// ParseMethod maps a wire or menu name to a Method. Matching is
// case-insensitive and accepts a few common spellings per variant.
func ParseMethod(name string) (Method, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cash":
		return MethodCash, true
	case "card", "credit / debit card", "credit/debit card":
		return MethodCard, true
	case "gcash", "wallet", "digital_wallet":
		return MethodGCash, true
	}
	return 0, false
}
