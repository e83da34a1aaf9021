package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sorvetes-mauriti/api/internal/cart"
	"github.com/sorvetes-mauriti/api/internal/catalog"
	"github.com/sorvetes-mauriti/api/internal/domain"
	"github.com/sorvetes-mauriti/api/internal/platform/httpx"
	"github.com/sorvetes-mauriti/api/internal/services"
)

const maxQuoteBodySize = 16 * 1024

// QuoteHandlers drives the lead-form submission step of the storefront flow.
type QuoteHandlers struct {
	quotes   services.QuoteService
	store    *catalog.Store
	sessions *cart.Sessions
}

// NewQuoteHandlers constructs handlers joining the quote service with the
// catalog store and session carts.
func NewQuoteHandlers(quotes services.QuoteService, store *catalog.Store, sessions *cart.Sessions) *QuoteHandlers {
	return &QuoteHandlers{quotes: quotes, store: store, sessions: sessions}
}

// Routes wires the /quotes endpoints onto the provided router.
func (h *QuoteHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.submitQuote)
}

type submitQuoteRequest struct {
	Lead domain.Lead `json:"lead"`
}

type quoteResponse struct {
	ID             string             `json:"id"`
	Lead           domain.Lead        `json:"lead"`
	Items          []domain.OrderItem `json:"items"`
	WhatsAppURL    string             `json:"whatsappUrl"`
	SubmittedAt    string             `json:"submittedAt"`
	HandoffDelayMS int64              `json:"handoffDelayMs"`
}

func (h *QuoteHandlers) submitQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.quotes == nil || h.store == nil || h.sessions == nil {
		httpx.WriteError(ctx, w, httpx.NewError("quote_service_unavailable", "quote service is unavailable", http.StatusServiceUnavailable))
		return
	}

	body, err := readLimitedBody(r, maxQuoteBodySize)
	if err != nil {
		if errors.Is(err, errBodyTooLarge) {
			httpx.WriteError(ctx, w, httpx.NewError("payload_too_large", "request body exceeds allowed size", http.StatusRequestEntityTooLarge))
			return
		}
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
		return
	}

	var req submitQuoteRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "body must be an object with a lead", http.StatusBadRequest))
		return
	}

	sessionID, ledger := h.sessions.Ledger(r.Header.Get(SessionHeader))
	w.Header().Set(SessionHeader, sessionID)

	// Gate before any I/O: the flow only reaches submission with items
	// selected.
	if ledger.Total() == 0 {
		httpx.WriteError(ctx, w, httpx.NewError("cart_empty", "select at least one item before requesting a quote", http.StatusUnprocessableEntity))
		return
	}

	quote, err := h.quotes.Submit(ctx, services.SubmitQuoteCommand{
		SessionID:  sessionID,
		Lead:       req.Lead,
		Products:   h.store.Products(),
		Quantities: ledger.Snapshot(),
	})
	if err != nil {
		h.writeQuoteError(ctx, w, err)
		return
	}

	// Cart state survives failures above; it is cleared only once the sink
	// accepted the quote.
	ledger.Clear()

	writeJSONResponse(w, http.StatusCreated, quoteResponse{
		ID:             quote.ID,
		Lead:           quote.Lead,
		Items:          quote.Items,
		WhatsAppURL:    quote.WhatsAppURL,
		SubmittedAt:    quote.SubmittedAt.Format(time.RFC3339),
		HandoffDelayMS: quote.HandoffDelay.Milliseconds(),
	})
}

func (h *QuoteHandlers) writeQuoteError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrQuoteInvalidInput):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrQuoteEmptyCart):
		httpx.WriteError(ctx, w, httpx.NewError("cart_empty", "select at least one item before requesting a quote", http.StatusUnprocessableEntity))
	case errors.Is(err, services.ErrQuoteInFlight):
		httpx.WriteError(ctx, w, httpx.NewError("quote_in_flight", "a quote submission is already in progress", http.StatusConflict))
	case errors.Is(err, services.ErrQuoteTransport):
		httpx.WriteError(ctx, w, httpx.NewError("lead_sink_unreachable", "could not reach the lead endpoint; please retry", http.StatusBadGateway))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("quote_error", "failed to submit quote", http.StatusInternalServerError))
	}
}
