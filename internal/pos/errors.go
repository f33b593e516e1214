package pos

import "errors"

// Business conditions reported by the checkout core. All of them are
// recoverable: the session continues and the caller decides how to
// present the failure. Callers match with errors.Is.
var (
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrCartFull         = errors.New("cart is full")
	ErrOrderHistoryFull = errors.New("order history is full")
	ErrUnknownProduct   = errors.New("unknown product id")
)
