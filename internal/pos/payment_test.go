package pos

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodLabels(t *testing.T) {
	assert.Equal(t, "Cash", MethodCash.Label())
	assert.Equal(t, "Credit / Debit Card", MethodCard.Label())
	assert.Equal(t, "GCash", MethodGCash.Label())
	assert.Equal(t, "Unknown", Method(0).Label())
}

func TestPayWritesReceipt(t *testing.T) {
	var buf bytes.Buffer
	MethodCash.Pay(&buf, decimal.NewFromFloat(25.5))
	require.Equal(t, "Paid $25.50 using Cash.\n", buf.String())

	buf.Reset()
	MethodGCash.Pay(&buf, decimal.Zero)
	require.Equal(t, "Paid $0.00 using GCash.\n", buf.String())
}

func TestParseMethod(t *testing.T) {
	cases := []struct {
		in   string
		want Method
	}{
		{"cash", MethodCash},
		{"Cash", MethodCash},
		{"  CARD ", MethodCard},
		{"credit / debit card", MethodCard},
		{"gcash", MethodGCash},
		{"wallet", MethodGCash},
		{"digital_wallet", MethodGCash},
	}
	for _, tc := range cases {
		got, ok := ParseMethod(tc.in)
		require.True(t, ok, "parse %q", tc.in)
		assert.Equal(t, tc.want, got, "parse %q", tc.in)
	}

	for _, in := range []string{"", "check", "bitcoin"} {
		_, ok := ParseMethod(in)
		assert.False(t, ok, "parse %q", in)
	}
}

func TestMethodsIsClosedSet(t *testing.T) {
	require.Equal(t, []Method{MethodCash, MethodCard, MethodGCash}, Methods())
}
