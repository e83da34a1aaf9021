package cart

import (
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
)

// Sessions keeps one ledger per browsing session. Sessions live only in
// memory; a restart drops them, matching the single-visit nature of the
// storefront flow.
type Sessions struct {
	mu      sync.Mutex
	ledgers map[string]*Ledger
	newID   func() string
}

// NewSessions constructs an empty session registry.
func NewSessions() *Sessions {
	return &Sessions{
		ledgers: make(map[string]*Ledger),
		newID:   func() string { return ulid.Make().String() },
	}
}

// Ledger returns the ledger for the given session id, creating a fresh
// session when the id is empty or unknown. The effective session id is
// returned so callers can echo it back to the client.
func (s *Sessions) Ledger(sessionID string) (string, *Ledger) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID != "" {
		if ledger, ok := s.ledgers[sessionID]; ok {
			return sessionID, ledger
		}
	}

	id := s.newID()
	ledger := NewLedger()
	s.ledgers[id] = ledger
	return id, ledger
}

// Drop removes a session and its ledger.
func (s *Sessions) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ledgers, sessionID)
}
