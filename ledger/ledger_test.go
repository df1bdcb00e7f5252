package ledger

import (
	"fmt"
	"testing"

	"github.com/rustyeddy/stratbot/sim"
	"github.com/stretchr/testify/assert"
)

func trade(id string, pnl float64) sim.Trade {
	return sim.Trade{ID: id, StrategyID: "s", Symbol: "BTC", Quantity: 1, Price: 100, PnL: pnl}
}

func TestLedgerAggregates(t *testing.T) {
	t.Parallel()

	l := New(20)
	l.Record(trade("t1", 10))
	l.Record(trade("t2", -5))

	s := l.Stats()
	assert.Equal(t, 2, s.TradesToday)
	assert.InDelta(t, 5, s.PnLToday, 1e-9)
	assert.Equal(t, 1, s.WinsToday)
	assert.Equal(t, 1, s.LossesToday)
}

func TestLedgerZeroPnLIsNeitherWinNorLoss(t *testing.T) {
	t.Parallel()

	l := New(20)
	l.Record(trade("t1", 0))

	s := l.Stats()
	assert.Equal(t, 1, s.TradesToday)
	assert.Zero(t, s.WinsToday)
	assert.Zero(t, s.LossesToday)
}

func TestLedgerWinLossInvariant(t *testing.T) {
	t.Parallel()

	l := New(20)
	pnls := []float64{3, -2, 0, 7, -1, 0, 0, 5}
	for i, p := range pnls {
		l.Record(trade(fmt.Sprintf("t%d", i), p))
		s := l.Stats()
		assert.LessOrEqual(t, s.WinsToday+s.LossesToday, s.TradesToday)
	}

	s := l.Stats()
	assert.Equal(t, 8, s.TradesToday)
	assert.Equal(t, 3, s.WinsToday)
	assert.Equal(t, 2, s.LossesToday)
}

func TestLedgerWindowEviction(t *testing.T) {
	t.Parallel()

	l := New(3)
	for i := 0; i < 5; i++ {
		l.Record(trade(fmt.Sprintf("t%d", i), 1))
	}

	recent := l.Recent()
	assert.Len(t, recent, 3)
	// Newest first; oldest two evicted.
	assert.Equal(t, "t4", recent[0].ID)
	assert.Equal(t, "t3", recent[1].ID)
	assert.Equal(t, "t2", recent[2].ID)

	// Eviction does not touch the aggregate.
	assert.Equal(t, 5, l.Stats().TradesToday)
}

func TestLedgerDefaultWindow(t *testing.T) {
	t.Parallel()

	l := New(0)
	for i := 0; i < DefaultWindow+5; i++ {
		l.Record(trade(fmt.Sprintf("t%d", i), 1))
	}
	assert.Len(t, l.Recent(), DefaultWindow)
}

func TestLedgerReset(t *testing.T) {
	t.Parallel()

	l := New(20)
	l.Record(trade("t1", 10))
	l.Reset()

	assert.Equal(t, Stats{}, l.Stats())
	assert.Empty(t, l.Recent())
}
