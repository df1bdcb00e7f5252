package market

import "math/rand"

// RandomWalk drives a Store with a multiplicative random walk. It stands in
// for a live feed when running the engine offline: each Step moves every
// symbol by up to ±maxStep of its current price.
type RandomWalk struct {
	store   *Store
	rng     *rand.Rand
	symbols []string
	maxStep float64
}

// NewRandomWalk seeds the store with the given starting prices.
func NewRandomWalk(store *Store, start map[string]float64, maxStep float64, seed int64) *RandomWalk {
	w := &RandomWalk{
		store:   store,
		rng:     rand.New(rand.NewSource(seed)),
		maxStep: maxStep,
	}
	for sym, p := range start {
		w.symbols = append(w.symbols, sym)
		store.Set(sym, p)
	}
	return w
}

// Step advances every symbol one tick.
func (w *RandomWalk) Step() {
	for _, sym := range w.symbols {
		p, ok := w.store.Lookup(sym)
		if !ok {
			continue
		}
		// Uniform in [-maxStep, +maxStep).
		drift := (w.rng.Float64()*2 - 1) * w.maxStep
		next := p * (1 + drift)
		if next <= 0 {
			next = p
		}
		w.store.Set(sym, next)
	}
}
