// Package httpapi serves the POS workflow over HTTP: catalog browsing,
// cart building, checkout, and order listing for the active session.
package httpapi

import (
	"encoding/json"
	"net/http"
)

// errorBody is the JSON shape shared by all non-2xx responses. Error is
// a stable machine-readable code (e.g. "cart_full"); Details is
// free-form context for humans.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError writes an errorBody with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, code, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: code, Details: details})
}
