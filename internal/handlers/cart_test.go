package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sorvetes-mauriti/api/internal/cart"
	"github.com/sorvetes-mauriti/api/internal/domain"
)

func decodeErrorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode error envelope: %v\n%s", err, body)
	}
	return resp.Error
}

func decodeCart(t *testing.T, body []byte) cartResponse {
	t.Helper()
	var resp cartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode cart response: %v\n%s", err, body)
	}
	return resp
}

func newCartRouter(sessions *cart.Sessions) http.Handler {
	return NewRouter(WithCartRoutes(NewCartHandlers(sessions).Routes))
}

func TestGetCartIssuesSession(t *testing.T) {
	router := newCartRouter(cart.NewSessions())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get(SessionHeader) == "" {
		t.Fatalf("expected a session id to be issued")
	}
	resp := decodeCart(t, rec.Body.Bytes())
	if len(resp.Items) != 0 || resp.Total != 0 {
		t.Fatalf("expected empty cart, got %+v", resp)
	}
}

func TestSetQuantityRoundTrip(t *testing.T) {
	router := newCartRouter(cart.NewSessions())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/7", strings.NewReader(`{"quantity": 3}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	session := rec.Header().Get(SessionHeader)
	if session == "" {
		t.Fatalf("expected session header")
	}
	resp := decodeCart(t, rec.Body.Bytes())
	if resp.Total != 3 || len(resp.Items) != 1 || resp.Items[0].ProductID != "7" {
		t.Fatalf("unexpected cart: %+v", resp)
	}

	// Same session sees the state; adjusting down to zero removes the line.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/7", strings.NewReader(`{"quantity": 0}`))
	req.Header.Set(SessionHeader, session)
	router.ServeHTTP(rec, req)

	resp = decodeCart(t, rec.Body.Bytes())
	if resp.Total != 0 || len(resp.Items) != 0 {
		t.Fatalf("expected cleared line, got %+v", resp)
	}
}

func TestSetQuantityClampsNegative(t *testing.T) {
	router := newCartRouter(cart.NewSessions())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/7", strings.NewReader(`{"quantity": -4}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeCart(t, rec.Body.Bytes())
	if resp.Total != 0 || len(resp.Items) != 0 {
		t.Fatalf("expected clamp to zero, got %+v", resp)
	}
}

func TestSetQuantityRejectsMissingField(t *testing.T) {
	router := newCartRouter(cart.NewSessions())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/7", strings.NewReader(`{}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodeErrorCode(t, rec.Body.Bytes()); got != "invalid_request" {
		t.Fatalf("unexpected error code %q", got)
	}
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	router := newCartRouter(cart.NewSessions())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/1", strings.NewReader(`{"quantity": 5}`)))
	sessionA := rec.Header().Get(SessionHeader)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	sessionB := rec.Header().Get(SessionHeader)

	if sessionA == sessionB {
		t.Fatalf("expected distinct sessions")
	}
	resp := decodeCart(t, rec.Body.Bytes())
	if resp.Total != 0 {
		t.Fatalf("session B saw session A's cart: %+v", resp)
	}
}

func TestClearCart(t *testing.T) {
	router := newCartRouter(cart.NewSessions())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/1", strings.NewReader(`{"quantity": 5}`)))
	session := rec.Header().Get(SessionHeader)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil)
	req.Header.Set(SessionHeader, session)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeCart(t, rec.Body.Bytes())
	if resp.Total != 0 || len(resp.Items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", resp)
	}
}

func TestCartItemsSortedByProductID(t *testing.T) {
	sessions := cart.NewSessions()
	router := newCartRouter(sessions)

	id, ledger := sessions.Ledger("")
	ledger.SetQuantity(domain.ProductID("b"), 1)
	ledger.SetQuantity(domain.ProductID("a"), 2)
	ledger.SetQuantity(domain.ProductID("c"), 3)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set(SessionHeader, id)
	router.ServeHTTP(rec, req)

	resp := decodeCart(t, rec.Body.Bytes())
	if len(resp.Items) != 3 {
		t.Fatalf("expected 3 items, got %+v", resp.Items)
	}
	for i, want := range []domain.ProductID{"a", "b", "c"} {
		if resp.Items[i].ProductID != want {
			t.Fatalf("item %d = %q, want %q", i, resp.Items[i].ProductID, want)
		}
	}
}
