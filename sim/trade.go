package sim

import "time"

// Side of a synthesized order.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Sell {
		return "SELL"
	}
	return "BUY"
}

// Trade is one synthesized trade outcome. Immutable once created: the PnL is
// computed at creation time and never recomputed, and the record outlives any
// later mutation of the originating strategy.
type Trade struct {
	ID         string
	StrategyID string
	Symbol     string
	Side       Side
	Quantity   float64 // always > 0
	Price      float64 // fill price at synthesis time, >= 0
	PnL        float64 // realized, account currency, rounded to cents
	Time       time.Time
}
