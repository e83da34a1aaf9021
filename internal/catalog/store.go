package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sorvetes-mauriti/api/internal/domain"
)

const maxCatalogBodySize = 4 << 20

var errStoreEndpointRequired = errors.New("catalog store: endpoint url is required")

// StoreDeps bundles constructor inputs for the catalog store.
type StoreDeps struct {
	EndpointURL string
	HTTPClient  *http.Client
	Timeout     time.Duration
	Fallback    []domain.Product
	Logger      *zap.Logger
}

// Store holds the loaded product set and serves read-only, section-filtered
// views. The set is replaced wholesale on each load; individual products are
// never mutated.
type Store struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
	fallback []domain.Product
	logger   *zap.Logger

	mu           sync.RWMutex
	products     []domain.Product
	loading      bool
	usedFallback bool
}

// LoadResult reports the outcome of one catalog load.
type LoadResult struct {
	Products     []domain.Product
	UsedFallback bool
}

// NewStore constructs a Store enforcing dependency validation.
func NewStore(deps StoreDeps) (*Store, error) {
	endpoint := strings.TrimSpace(deps.EndpointURL)
	if endpoint == "" {
		return nil, errStoreEndpointRequired
	}

	client := deps.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	timeout := deps.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	fallback := make([]domain.Product, len(deps.Fallback))
	copy(fallback, deps.Fallback)

	return &Store{
		endpoint: endpoint,
		client:   client,
		timeout:  timeout,
		fallback: fallback,
		logger:   logger,
	}, nil
}

// Load fetches the product set from the remote endpoint, racing the request
// against the configured timer. Whichever terminal outcome fires first wins
// and settles the store exactly once: a successful non-empty response is
// applied; an error, an empty list, or timer expiry substitutes the fallback
// set; a late result after the timer is dropped.
func (s *Store) Load(ctx context.Context) (LoadResult, error) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type fetchOutcome struct {
		products []domain.Product
		err      error
	}
	outcome := make(chan fetchOutcome, 1)
	go func() {
		products, err := s.fetch(reqCtx)
		outcome <- fetchOutcome{products: products, err: err}
	}()

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	var result LoadResult
	select {
	case o := <-outcome:
		switch {
		case o.err != nil:
			s.logger.Warn("catalog fetch failed, using fallback", zap.Error(o.err))
			result = LoadResult{Products: s.fallbackSet(), UsedFallback: true}
		case len(o.products) == 0:
			s.logger.Warn("catalog fetch returned no products, using fallback")
			result = LoadResult{Products: s.fallbackSet(), UsedFallback: true}
		default:
			result = LoadResult{Products: o.products}
		}
	case <-timer.C:
		// Abort the in-flight request; its late outcome lands in the buffered
		// channel and is never read.
		cancel()
		s.logger.Warn("catalog fetch timed out, using fallback", zap.Duration("timeout", s.timeout))
		result = LoadResult{Products: s.fallbackSet(), UsedFallback: true}
	case <-ctx.Done():
		cancel()
		result = LoadResult{Products: s.fallbackSet(), UsedFallback: true}
	}

	s.mu.Lock()
	s.products = result.Products
	s.usedFallback = result.UsedFallback
	s.loading = false
	s.mu.Unlock()

	s.logger.Info("catalog loaded",
		zap.Int("products", len(result.Products)),
		zap.Bool("used_fallback", result.UsedFallback),
	)
	return result, nil
}

func (s *Store) fetch(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog store: build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog store: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("catalog store: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBodySize))
	if err != nil {
		return nil, fmt.Errorf("catalog store: read body: %w", err)
	}

	return parseProducts(body)
}

// parseProducts accepts both response shapes served by the sheet deployment:
// a bare product array or an object with a "products" field.
func parseProducts(body []byte) ([]domain.Product, error) {
	var bare []domain.Product
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Products []domain.Product `json:"products"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("catalog store: malformed body: %w", err)
	}
	return wrapped.Products, nil
}

func (s *Store) fallbackSet() []domain.Product {
	out := make([]domain.Product, len(s.fallback))
	copy(out, s.fallback)
	return out
}

// Products returns a snapshot of the current product set.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Loading reports whether a load is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// UsedFallback reports whether the current set came from the embedded fallback.
func (s *Store) UsedFallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usedFallback
}

// FilterSection returns the products whose category classifies into the given
// section, preserving catalog order. Unknown section keys yield ok=false.
func (s *Store) FilterSection(key string) ([]domain.Product, bool) {
	section, ok := SectionByKey(key)
	if !ok {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Product
	for _, product := range s.products {
		if section.Matches(product.Category) {
			out = append(out, product)
		}
	}
	return out, true
}
