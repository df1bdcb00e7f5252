package strategy

// Registry holds the strategy catalog in insertion order. Strategies are
// never removed while the engine is alive; toggling off only disables
// evaluation.
//
// The registry is not safe for concurrent use on its own. It is owned by a
// single engine instance, which serializes all access under its own lock.
type Registry struct {
	order []string
	byID  map[string]*Strategy
}

// NewRegistry builds a registry from a catalog. Strategies keep the order
// they were given in; that order decides which strategies get priority for
// the day's remaining trade budget.
func NewRegistry(catalog []Strategy) *Registry {
	r := &Registry{byID: make(map[string]*Strategy, len(catalog))}
	for _, s := range catalog {
		if _, dup := r.byID[s.ID]; dup {
			continue
		}
		st := s.clone()
		r.order = append(r.order, st.ID)
		r.byID[st.ID] = &st
	}
	return r
}

// List returns all strategies in stable insertion order.
func (r *Registry) List() []Strategy {
	out := make([]Strategy, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].clone())
	}
	return out
}

// Enabled returns the enabled strategies in insertion order.
func (r *Registry) Enabled() []Strategy {
	var out []Strategy
	for _, id := range r.order {
		if s := r.byID[id]; s.Enabled {
			out = append(out, s.clone())
		}
	}
	return out
}

// Get returns the strategy with the given id.
func (r *Registry) Get(id string) (Strategy, bool) {
	s, ok := r.byID[id]
	if !ok {
		return Strategy{}, false
	}
	return s.clone(), true
}

// Toggle flips the enabled flag for id. Unknown ids are ignored: the registry
// is a small, UI-driven catalog and tolerates stale toggle requests.
func (r *Registry) Toggle(id string) {
	if s, ok := r.byID[id]; ok {
		s.Enabled = !s.Enabled
	}
}

// RecordResult attributes one synthesized trade to the named strategy:
// CumulativeTrades goes up by exactly 1 and CumulativePnL by exactly pnl.
// Unknown ids are ignored, matching Toggle.
func (r *Registry) RecordResult(id string, pnl float64) {
	if s, ok := r.byID[id]; ok {
		s.CumulativeTrades++
		s.CumulativePnL += pnl
	}
}

// ResetStats zeroes every strategy's cumulative counters. Called only on an
// explicit session reset.
func (r *Registry) ResetStats() {
	for _, s := range r.byID {
		s.CumulativeTrades = 0
		s.CumulativePnL = 0
	}
}

// Len reports the catalog size.
func (r *Registry) Len() int { return len(r.order) }
