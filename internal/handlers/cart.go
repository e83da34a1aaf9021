package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/sorvetes-mauriti/api/internal/cart"
	"github.com/sorvetes-mauriti/api/internal/domain"
	"github.com/sorvetes-mauriti/api/internal/platform/httpx"
)

// SessionHeader carries the browsing-session id; the server issues one when
// the client does not present it.
const SessionHeader = "X-Cart-Session"

const maxCartBodySize = 4 * 1024

// CartHandlers exposes the per-session cart ledger.
type CartHandlers struct {
	sessions *cart.Sessions
}

// NewCartHandlers constructs handlers over the shared session registry.
func NewCartHandlers(sessions *cart.Sessions) *CartHandlers {
	return &CartHandlers{sessions: sessions}
}

// Routes wires the /cart endpoints onto the provided router.
func (h *CartHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.getCart)
	r.Put("/items/{productID}", h.setQuantity)
	r.Delete("/", h.clearCart)
}

type cartItemPayload struct {
	ProductID domain.ProductID `json:"productId"`
	Quantity  int              `json:"quantity"`
}

type cartResponse struct {
	Items []cartItemPayload `json:"items"`
	Total int               `json:"total"`
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

func (h *CartHandlers) getCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.sessions == nil {
		httpx.WriteError(ctx, w, httpx.NewError("cart_unavailable", "cart sessions are unavailable", http.StatusServiceUnavailable))
		return
	}

	sessionID, ledger := h.sessions.Ledger(r.Header.Get(SessionHeader))
	w.Header().Set(SessionHeader, sessionID)
	writeJSONResponse(w, http.StatusOK, buildCartResponse(ledger))
}

func (h *CartHandlers) setQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.sessions == nil {
		httpx.WriteError(ctx, w, httpx.NewError("cart_unavailable", "cart sessions are unavailable", http.StatusServiceUnavailable))
		return
	}

	productID := domain.ProductID(chi.URLParam(r, "productID"))
	if productID == "" {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "product id is required", http.StatusBadRequest))
		return
	}

	body, err := readLimitedBody(r, maxCartBodySize)
	if err != nil {
		if errors.Is(err, errBodyTooLarge) {
			httpx.WriteError(ctx, w, httpx.NewError("payload_too_large", "request body exceeds allowed size", http.StatusRequestEntityTooLarge))
			return
		}
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
		return
	}

	var req setQuantityRequest
	if err := json.Unmarshal(body, &req); err != nil || req.Quantity == nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "body must be an object with a numeric quantity", http.StatusBadRequest))
		return
	}

	sessionID, ledger := h.sessions.Ledger(r.Header.Get(SessionHeader))
	ledger.SetQuantity(productID, *req.Quantity)

	w.Header().Set(SessionHeader, sessionID)
	writeJSONResponse(w, http.StatusOK, buildCartResponse(ledger))
}

func (h *CartHandlers) clearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.sessions == nil {
		httpx.WriteError(ctx, w, httpx.NewError("cart_unavailable", "cart sessions are unavailable", http.StatusServiceUnavailable))
		return
	}

	sessionID, ledger := h.sessions.Ledger(r.Header.Get(SessionHeader))
	ledger.Clear()

	w.Header().Set(SessionHeader, sessionID)
	writeJSONResponse(w, http.StatusOK, buildCartResponse(ledger))
}

func buildCartResponse(ledger *cart.Ledger) cartResponse {
	snapshot := ledger.Snapshot()
	items := make([]cartItemPayload, 0, len(snapshot))
	for id, quantity := range snapshot {
		if quantity <= 0 {
			continue
		}
		items = append(items, cartItemPayload{ProductID: id, Quantity: quantity})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	return cartResponse{Items: items, Total: ledger.Total()}
}
