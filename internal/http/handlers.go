package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fairyhunter13/pos-checkout-service/internal/config"
	httpopenapi "github.com/fairyhunter13/pos-checkout-service/internal/http/openapi"
	"github.com/fairyhunter13/pos-checkout-service/internal/model"
	"github.com/fairyhunter13/pos-checkout-service/internal/obs"
	"github.com/fairyhunter13/pos-checkout-service/internal/pos"
)

// App carries the handler dependencies for the POS API.
type App struct {
	Cfg     config.Config
	Service *pos.Service
	started time.Time
}

type addItemRequest struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type checkoutRequest struct {
	PaymentMethod string `json:"payment_method"`
}

type cartView struct {
	Items []model.CartItem `json:"items"`
	Total string           `json:"total"`
	Count int              `json:"count"`
}

// NewApp constructs the App with the given config and checkout service.
func NewApp(cfg config.Config, svc *pos.Service) *App {
	return &App{Cfg: cfg, Service: svc, started: time.Now()}
}

func (a *App) cartSnapshot() cartView {
	items := a.Service.ViewCart()
	return cartView{
		Items: items,
		Total: a.Service.CartTotal().StringFixed(2),
		Count: len(items),
	}
}

func requireJSON(w http.ResponseWriter, r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return false
	}
	return true
}

func (a *App) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a.Service.ListProducts())
}

func (a *App) postCartItemHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	if !requireJSON(w, r) {
		return
	}
	var req addItemRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.ProductID == 0 {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "product_id is required")
		return
	}
	if err := a.Service.AddToCart(req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, pos.ErrUnknownProduct):
			WriteJSONError(w, http.StatusNotFound, "unknown_product", err.Error())
		case errors.Is(err, pos.ErrInvalidQuantity):
			WriteJSONError(w, http.StatusUnprocessableEntity, "invalid_quantity", err.Error())
		case errors.Is(err, pos.ErrCartFull):
			WriteJSONError(w, http.StatusConflict, "cart_full", err.Error())
		default:
			WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a.cartSnapshot())
	obs.Logger.Info("cart_item_added",
		"request_id", RequestIDFromContext(r.Context()),
		"product_id", req.ProductID,
		"quantity", req.Quantity,
	)
}

func (a *App) getCartHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a.cartSnapshot())
}

func (a *App) postCheckoutHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	if !requireJSON(w, r) {
		return
	}
	var req checkoutRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	method, ok := pos.ParseMethod(req.PaymentMethod)
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "payment_method must be one of cash, card, gcash")
		return
	}
	// Driver-layer guard: the core would happily produce a zero-total
	// order, but the API refuses an empty cart up front.
	if a.Service.CartEmpty() {
		WriteJSONError(w, http.StatusConflict, "empty_cart", "cart has no items")
		return
	}
	order, err := a.Service.Checkout(method)
	if err != nil {
		if errors.Is(err, pos.ErrOrderHistoryFull) {
			// The order was still constructed and paid for; surface it
			// alongside the condition so the receipt is not lost.
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(struct {
				Error string      `json:"error"`
				Order model.Order `json:"order"`
			}{Error: "order_history_full", Order: order})
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(order)
}

func (a *App) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a.Service.ListOrders())
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	m := map[string]any{
		"orders_recorded": a.Service.OrdersRecorded(),
		"cart_items":      len(a.Service.ViewCart()),
		"cart_total":      a.Service.CartTotal().StringFixed(2),
		"uptime_sec":      time.Since(a.started).Seconds(),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(m)
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
