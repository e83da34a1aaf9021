package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/sorvetes-mauriti/api/internal/domain"
	"github.com/sorvetes-mauriti/api/internal/whatsapp"
)

var (
	errQuoteEndpointRequired = errors.New("quote service: endpoint url is required")
	errQuoteNumberRequired   = errors.New("quote service: whatsapp number is required")
)

// ErrQuoteInvalidInput indicates the caller supplied an incomplete lead form.
var ErrQuoteInvalidInput = errors.New("quote service: invalid input")

// ErrQuoteEmptyCart indicates submission was attempted with no selected items.
var ErrQuoteEmptyCart = errors.New("quote service: cart is empty")

// ErrQuoteInFlight indicates another submission is already running.
var ErrQuoteInFlight = errors.New("quote service: submission already in flight")

// ErrQuoteTransport indicates the POST to the lead sink failed at the
// transport level. The caller must preserve cart and form state for retry.
var ErrQuoteTransport = errors.New("quote service: transport failure")

// QuoteService records a B2B quote request with the spreadsheet sink and
// prepares the chat handoff.
type QuoteService interface {
	Submit(ctx context.Context, cmd SubmitQuoteCommand) (Quote, error)
}

// SubmitQuoteCommand carries the lead form plus the catalog/cart join inputs.
// SessionID scopes the single-flight guard; submissions from distinct sessions
// never block each other.
type SubmitQuoteCommand struct {
	SessionID  string
	Lead       domain.Lead
	Products   []domain.Product
	Quantities map[domain.ProductID]int
}

// Quote is the result of a successful submission.
type Quote struct {
	ID           string
	Lead         domain.Lead
	Items        []domain.OrderItem
	WhatsAppURL  string
	SubmittedAt  time.Time
	HandoffDelay time.Duration
}

// QuoteServiceDeps wires the sink endpoint and handoff settings.
type QuoteServiceDeps struct {
	EndpointURL     string
	HTTPClient      *http.Client
	WhatsAppBaseURL string
	WhatsAppNumber  string
	HandoffDelay    time.Duration
	Clock           func() time.Time
	Logger          *zap.Logger
	IDGenerator     func() string
}

type quoteService struct {
	endpoint     string
	client       *http.Client
	waBaseURL    string
	waNumber     string
	handoffDelay time.Duration
	now          func() time.Time
	logger       *zap.Logger
	newID        func() string
	sanitizer    *bluemonday.Policy

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewQuoteService constructs a QuoteService enforcing dependency validation.
func NewQuoteService(deps QuoteServiceDeps) (QuoteService, error) {
	endpoint := strings.TrimSpace(deps.EndpointURL)
	if endpoint == "" {
		return nil, errQuoteEndpointRequired
	}
	number := strings.TrimSpace(deps.WhatsAppNumber)
	if number == "" {
		return nil, errQuoteNumberRequired
	}

	client := deps.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	idGen := deps.IDGenerator
	if idGen == nil {
		idGen = func() string { return ulid.Make().String() }
	}
	delay := deps.HandoffDelay
	if delay <= 0 {
		delay = time.Second
	}

	return &quoteService{
		endpoint:     endpoint,
		client:       client,
		waBaseURL:    strings.TrimSpace(deps.WhatsAppBaseURL),
		waNumber:     number,
		handoffDelay: delay,
		now:          func() time.Time { return clock().UTC() },
		logger:       logger,
		newID:        idGen,
		sanitizer:    bluemonday.StrictPolicy(),
		inFlight:     make(map[string]struct{}),
	}, nil
}

// Submit derives the order items, records the quote with the sink, and builds
// the chat deep link. Single-flight per session: a second call for the same
// session while one is running is rejected with ErrQuoteInFlight.
func (s *quoteService) Submit(ctx context.Context, cmd SubmitQuoteCommand) (Quote, error) {
	lead := s.sanitizeLead(cmd.Lead)
	if lead.Name == "" || lead.WhatsApp == "" || lead.City == "" {
		return Quote{}, fmt.Errorf("%w: name, whatsapp, and city are required", ErrQuoteInvalidInput)
	}

	items := deriveOrderItems(cmd.Products, cmd.Quantities)
	if len(items) == 0 {
		return Quote{}, ErrQuoteEmptyCart
	}

	if !s.acquire(cmd.SessionID) {
		return Quote{}, ErrQuoteInFlight
	}
	defer s.release(cmd.SessionID)

	submittedAt := s.now()
	if err := s.post(ctx, lead, items, submittedAt); err != nil {
		return Quote{}, err
	}

	quote := Quote{
		ID:           s.newID(),
		Lead:         lead,
		Items:        items,
		WhatsAppURL:  whatsapp.BuildLink(s.waBaseURL, s.waNumber, lead, items),
		SubmittedAt:  submittedAt,
		HandoffDelay: s.handoffDelay,
	}

	s.logger.Info("quote submitted",
		zap.String("quote_id", quote.ID),
		zap.String("city", lead.City),
		zap.Int("items", len(items)),
	)
	return quote, nil
}

func (s *quoteService) acquire(session string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[session]; busy {
		return false
	}
	s.inFlight[session] = struct{}{}
	return true
}

func (s *quoteService) release(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, session)
}

// deriveOrderItems joins cart quantities against the loaded products,
// preserving catalog iteration order. Quantities for ids absent from the
// catalog are dropped.
func deriveOrderItems(products []domain.Product, quantities map[domain.ProductID]int) []domain.OrderItem {
	var items []domain.OrderItem
	for _, product := range products {
		quantity := quantities[product.ID]
		if quantity <= 0 {
			continue
		}
		items = append(items, domain.OrderItem{
			Name:     product.Name,
			Quantity: quantity,
			Category: product.Category,
		})
	}
	return items
}

type sinkPayload struct {
	Lead   domain.Lead        `json:"lead"`
	Pedido []domain.OrderItem `json:"pedido"`
	Data   string             `json:"data"`
}

func (s *quoteService) post(ctx context.Context, lead domain.Lead, items []domain.OrderItem, submittedAt time.Time) error {
	payload := sinkPayload{
		Lead:   lead,
		Pedido: items,
		Data:   submittedAt.Format(time.RFC3339),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("quote service: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("quote service: build request: %w", err)
	}
	// The Apps Script sink only accepts simple requests; the payload goes over
	// as serialized text, not application/json.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQuoteTransport, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	// The sink replies with a redirect on success and opaque statuses
	// otherwise; any response that arrived at all counts as delivered. This
	// leniency is load-bearing for compatibility with existing deployments.
	if resp.StatusCode >= http.StatusBadRequest {
		s.logger.Warn("lead sink returned non-success status; treating as delivered",
			zap.Int("status", resp.StatusCode),
		)
	}
	return nil
}

// sanitizeLead strips any markup from the user-supplied form fields before
// they reach the sheet and the outbound message.
func (s *quoteService) sanitizeLead(lead domain.Lead) domain.Lead {
	clean := func(v string) string {
		return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(v)))
	}
	return domain.Lead{
		Name:     clean(lead.Name),
		WhatsApp: clean(lead.WhatsApp),
		City:     clean(lead.City),
	}
}
