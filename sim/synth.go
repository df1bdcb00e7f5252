// Package sim synthesizes trade outcomes for the auto-trading engine.
//
// The P&L here is a stochastic simulation standing in for a real
// fill/settlement process. It is non-predictive by construction and must not
// be read as execution logic: the draw is a uniform variate with a small
// configurable positive bias, scaled by notional and a volatility constant.
package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/rustyeddy/stratbot/market"
	"github.com/rustyeddy/stratbot/pkg/id"
	"github.com/rustyeddy/stratbot/strategy"
)

// Rand is the randomness the synthesizer consumes. Tests inject fixed
// sequences; production wraps math/rand.
type Rand interface {
	// Float64 returns a uniform variate in [0, 1).
	Float64() float64
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

// NewRand returns a math/rand backed Rand.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Model holds the simulation parameters for the P&L draw.
//
// The outcome variate is uniform over [Bias-0.5, Bias+0.5), so the default
// Bias of 0.1 reproduces the classic [-0.4, 0.6) slightly-positive draw. The
// bias is a placeholder constant, not a trading edge; it is configurable
// precisely so nobody hard-codes meaning into it.
type Model struct {
	Bias       float64
	Volatility float64
}

// DefaultModel matches the dashboard's original simulation constants.
func DefaultModel() Model {
	return Model{Bias: 0.1, Volatility: 0.02}
}

// Synthesizer produces candidate trades for strategies. It has no side
// effects beyond constructing the value; recording and attribution are the
// caller's job.
type Synthesizer struct {
	model Model
	rng   Rand
}

func NewSynthesizer(model Model, rng Rand) *Synthesizer {
	return &Synthesizer{model: model, rng: rng}
}

// Synthesize builds one trade for st at the current price. Returns false when
// no price is available for the chosen symbol; that is a designed skip for
// this tick, not an error.
func (s *Synthesizer) Synthesize(st strategy.Strategy, prices market.Source) (Trade, bool) {
	if len(st.Symbols) == 0 {
		return Trade{}, false
	}

	symbol := st.Symbols[s.rng.Intn(len(st.Symbols))]

	price, ok := prices.Lookup(symbol)
	if !ok {
		return Trade{}, false
	}

	side := Buy
	if s.rng.Intn(2) == 1 {
		side = Sell
	}

	qty := st.MaxPositionSize

	// Zero-centered draw shifted by the bias, scaled by notional.
	variate := s.rng.Float64() - 0.5 + s.model.Bias
	pnl := round2(price * qty * s.model.Volatility * variate)

	return Trade{
		ID:         id.New(),
		StrategyID: st.ID,
		Symbol:     symbol,
		Side:       side,
		Quantity:   qty,
		Price:      price,
		PnL:        pnl,
		Time:       time.Now().UTC(),
	}, true
}

// round2 rounds to currency precision (cents).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
