// Package ledger keeps the session's trade window and daily aggregate.
package ledger

import "github.com/rustyeddy/stratbot/sim"

// DefaultWindow is how many recent trades are retained in memory. Older
// entries are discarded, not archived; durable history is the journal's job.
const DefaultWindow = 20

// Stats is the rolling daily aggregate. Invariant maintained by Record:
// WinsToday + LossesToday <= TradesToday.
type Stats struct {
	TradesToday int
	PnLToday    float64
	WinsToday   int
	LossesToday int
}

// Ledger is the append-only (bounded) record of executed trades plus the
// daily aggregate. Mutation and reads are serialized by the owning engine,
// so a consumer never sees a partially applied trade.
type Ledger struct {
	window int
	trades []sim.Trade
	stats  Stats
}

func New(window int) *Ledger {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Ledger{window: window}
}

// Record appends the trade, evicting beyond the retention window, and folds
// it into the aggregate. A pnl of exactly zero counts as neither win nor
// loss.
func (l *Ledger) Record(t sim.Trade) {
	l.trades = append(l.trades, t)
	if len(l.trades) > l.window {
		l.trades = l.trades[len(l.trades)-l.window:]
	}

	l.stats.TradesToday++
	l.stats.PnLToday += t.PnL
	switch {
	case t.PnL > 0:
		l.stats.WinsToday++
	case t.PnL < 0:
		l.stats.LossesToday++
	}
}

// Stats returns the current daily aggregate.
func (l *Ledger) Stats() Stats { return l.stats }

// Recent returns the retained trades, newest first.
func (l *Ledger) Recent() []sim.Trade {
	out := make([]sim.Trade, len(l.trades))
	for i, t := range l.trades {
		out[len(l.trades)-1-i] = t
	}
	return out
}

// Reset clears the aggregate and the trade window for a new session.
func (l *Ledger) Reset() {
	l.trades = nil
	l.stats = Stats{}
}
