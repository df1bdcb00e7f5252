// Package market supplies current prices to the engine. The engine itself
// only depends on Source; where the numbers come from (a feed, a fixture, a
// random walk) is the caller's business.
package market

import "sync"

// Source is a synchronous price lookup. A false second return means no price
// is known for the symbol right now; the engine treats that as "skip this
// strategy for this tick", not as an error.
type Source interface {
	Lookup(symbol string) (float64, bool)
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func(symbol string) (float64, bool)

func (f SourceFunc) Lookup(symbol string) (float64, bool) { return f(symbol) }

// Store is an in-memory price table. Safe for concurrent use: a feed goroutine
// writes while the engine's tick reads.
type Store struct {
	mu     sync.RWMutex
	prices map[string]float64
}

func NewStore() *Store {
	return &Store{prices: make(map[string]float64)}
}

func (s *Store) Set(symbol string, price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[symbol] = price
}

func (s *Store) Lookup(symbol string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.prices[symbol]
	return p, ok
}
