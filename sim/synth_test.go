package sim

import (
	"math"
	"testing"

	"github.com/rustyeddy/stratbot/market"
	"github.com/rustyeddy/stratbot/strategy"
	"github.com/stretchr/testify/assert"
)

// fakeRand replays fixed sequences so outcomes are deterministic.
type fakeRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *fakeRand) Float64() float64 {
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *fakeRand) Intn(n int) int {
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

func testStrategy() strategy.Strategy {
	return strategy.Strategy{
		ID:              "s1",
		Name:            "Test",
		Symbols:         []string{"BTC", "ETH"},
		MaxPositionSize: 2,
		Enabled:         true,
	}
}

func prices(m map[string]float64) market.Source {
	return market.SourceFunc(func(sym string) (float64, bool) {
		p, ok := m[sym]
		return p, ok
	})
}

func TestSynthesizeDeterministicOutcome(t *testing.T) {
	t.Parallel()

	// Symbol index 1 -> ETH, side draw 1 -> SELL, variate 0.5-0.5+0.1 = 0.1.
	rng := &fakeRand{floats: []float64{0.5}, ints: []int{1, 1}}
	s := NewSynthesizer(Model{Bias: 0.1, Volatility: 0.02}, rng)

	tr, ok := s.Synthesize(testStrategy(), prices(map[string]float64{"BTC": 100, "ETH": 3000}))
	assert.True(t, ok)

	assert.Equal(t, "s1", tr.StrategyID)
	assert.Equal(t, "ETH", tr.Symbol)
	assert.Equal(t, Sell, tr.Side)
	assert.InDelta(t, 2, tr.Quantity, 1e-9)
	assert.InDelta(t, 3000, tr.Price, 1e-9)
	// 3000 * 2 * 0.02 * 0.1 = 12.00
	assert.InDelta(t, 12.00, tr.PnL, 1e-9)
	assert.NotEmpty(t, tr.ID)
	assert.False(t, tr.Time.IsZero())
}

func TestSynthesizeNegativeDraw(t *testing.T) {
	t.Parallel()

	// Variate 0.0-0.5+0.1 = -0.4, the worst case of the default model.
	rng := &fakeRand{floats: []float64{0.0}, ints: []int{0, 0}}
	s := NewSynthesizer(DefaultModel(), rng)

	tr, ok := s.Synthesize(testStrategy(), prices(map[string]float64{"BTC": 100}))
	assert.True(t, ok)
	assert.Equal(t, "BTC", tr.Symbol)
	assert.Equal(t, Buy, tr.Side)
	// 100 * 2 * 0.02 * -0.4 = -1.60
	assert.InDelta(t, -1.60, tr.PnL, 1e-9)
}

func TestSynthesizeRoundsToCents(t *testing.T) {
	t.Parallel()

	rng := &fakeRand{floats: []float64{0.123456}, ints: []int{0, 0}}
	s := NewSynthesizer(Model{Bias: 0.1, Volatility: 0.02}, rng)

	tr, ok := s.Synthesize(testStrategy(), prices(map[string]float64{"BTC": 12345.6789}))
	assert.True(t, ok)
	assert.InDelta(t, math.Round(tr.PnL*100), tr.PnL*100, 1e-9)
}

func TestSynthesizeNoPriceSkips(t *testing.T) {
	t.Parallel()

	rng := &fakeRand{floats: []float64{0.5}, ints: []int{0, 0}}
	s := NewSynthesizer(DefaultModel(), rng)

	st := testStrategy()
	st.Symbols = []string{"BTC"}

	_, ok := s.Synthesize(st, prices(map[string]float64{}))
	assert.False(t, ok)
}

func TestSynthesizeUniqueOrderedIDs(t *testing.T) {
	t.Parallel()

	rng := &fakeRand{floats: []float64{0.5}, ints: []int{0, 0}}
	s := NewSynthesizer(DefaultModel(), rng)
	src := prices(map[string]float64{"BTC": 100, "ETH": 3000})

	a, ok := s.Synthesize(testStrategy(), src)
	assert.True(t, ok)
	b, ok := s.Synthesize(testStrategy(), src)
	assert.True(t, ok)

	assert.NotEqual(t, a.ID, b.ID)
	// ULIDs sort by creation order.
	assert.Less(t, a.ID, b.ID)
}

func TestSideString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BUY", Buy.String())
	assert.Equal(t, "SELL", Sell.String())
}
