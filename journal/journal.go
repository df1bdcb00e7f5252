// Package journal persists synthesized trades and session snapshots. The
// in-memory ledger only keeps a bounded window; anything that should survive
// the process goes through a Journal.
package journal

import "time"

// TradeRecord is the durable form of one synthesized trade.
type TradeRecord struct {
	TradeID      string
	StrategyID   string
	StrategyName string
	Symbol       string
	Side         string
	Quantity     float64
	Price        float64
	PnL          float64
	Time         time.Time
}

// SessionSnapshot captures the daily aggregate at a point in time.
type SessionSnapshot struct {
	Time        time.Time
	TradesToday int
	PnLToday    float64
	WinsToday   int
	LossesToday int
	Halted      bool
}

type Journal interface {
	RecordTrade(TradeRecord) error
	RecordSession(SessionSnapshot) error
	Close() error
}

// Discard drops everything. Used for dry runs and tests that don't care
// about persistence.
type Discard struct{}

func (Discard) RecordTrade(TradeRecord) error       { return nil }
func (Discard) RecordSession(SessionSnapshot) error { return nil }
func (Discard) Close() error                        { return nil }
