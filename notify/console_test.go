package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/rustyeddy/stratbot/engine"
	"github.com/rustyeddy/stratbot/ledger"
	"github.com/rustyeddy/stratbot/risk"
	"github.com/rustyeddy/stratbot/sim"
	"github.com/rustyeddy/stratbot/strategy"
	"github.com/stretchr/testify/assert"
)

func TestConsoleOnTrade(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	c := NewConsole(&sb)

	c.OnTrade(sim.Trade{
		ID:       "01J0TRADE",
		Symbol:   "BTC",
		Side:     sim.Buy,
		Quantity: 0.5,
		Price:    65000,
		PnL:      -12.5,
		Time:     time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC),
	}, "BTC Momentum")

	out := sb.String()
	assert.Contains(t, out, "BTC Momentum")
	assert.Contains(t, out, "BUY")
	assert.Contains(t, out, "BTC")
	assert.Contains(t, out, "-12.50")
	assert.Contains(t, out, "01J0TRADE")
}

func TestSummaryRendersStrategiesAndTrades(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	Summary(&sb, engine.Snapshot{
		Stats: ledger.Stats{TradesToday: 2, PnLToday: 5, WinsToday: 1, LossesToday: 1},
		RecentTrades: []sim.Trade{
			{ID: "b", Symbol: "ETH", Side: sim.Sell, Quantity: 2, Price: 3200, PnL: -5, Time: time.Now()},
			{ID: "a", Symbol: "BTC", Side: sim.Buy, Quantity: 1, Price: 65000, PnL: 10, Time: time.Now()},
		},
		Strategies: []strategy.Strategy{
			{ID: "s1", Name: "Alpha", RiskTier: strategy.TierLow, Enabled: true, CumulativeTrades: 2, CumulativePnL: 5},
		},
		State: risk.Active,
		Armed: false,
	})

	out := sb.String()
	assert.Contains(t, out, "ACTIVE")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "low")
	assert.Contains(t, out, "ETH")
	assert.Contains(t, out, "Trades today: 2")
}

func TestSummaryNoTrades(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	Summary(&sb, engine.Snapshot{State: risk.Halted})

	out := sb.String()
	assert.Contains(t, out, "HALTED")
	assert.NotContains(t, out, "Symbol")
}
