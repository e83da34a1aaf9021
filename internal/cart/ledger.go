package cart

import (
	"sync"

	"github.com/sorvetes-mauriti/api/internal/domain"
)

// Ledger tracks per-product requested quantities for one browsing session.
// Quantities never go below zero; an absent id reads as quantity 0. The
// ledger performs no validation against the catalog: a stale id is harmless
// and is simply excluded when order items are derived.
type Ledger struct {
	mu         sync.Mutex
	quantities map[domain.ProductID]int
}

// NewLedger constructs an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{quantities: make(map[domain.ProductID]int)}
}

// Quantity returns the requested quantity for the product, 0 when unknown.
func (l *Ledger) Quantity(id domain.ProductID) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.quantities[id]
}

// SetQuantity records the requested quantity, clamped at zero.
func (l *Ledger) SetQuantity(id domain.ProductID, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quantities[id] = quantity
}

// Increment raises the product's quantity by one.
func (l *Ledger) Increment(id domain.ProductID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quantities[id]++
}

// Decrement lowers the product's quantity by one, never below zero.
func (l *Ledger) Decrement(id domain.ProductID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.quantities[id] > 0 {
		l.quantities[id]--
	} else {
		l.quantities[id] = 0
	}
}

// Total returns the sum of all stored quantities.
func (l *Ledger) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	total := 0
	for _, quantity := range l.quantities {
		total += quantity
	}
	return total
}

// Clear resets the ledger to an empty mapping.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quantities = make(map[domain.ProductID]int)
}

// Snapshot returns a copy of the quantity mapping.
func (l *Ledger) Snapshot() map[domain.ProductID]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[domain.ProductID]int, len(l.quantities))
	for id, quantity := range l.quantities {
		out[id] = quantity
	}
	return out
}
