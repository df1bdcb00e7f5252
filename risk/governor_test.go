package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGovernorAllowsWithinLimits(t *testing.T) {
	t.Parallel()

	g := NewGovernor(Limits{MaxDailyTrades: 5, MaxDailyLoss: 100})

	d := g.Check(0, 0)
	assert.True(t, d.Allowed)
	assert.Empty(t, d.Violations)
	assert.True(t, g.MayTrade(4, -99))
}

func TestGovernorTradeCeiling(t *testing.T) {
	t.Parallel()

	g := NewGovernor(Limits{MaxDailyTrades: 5, MaxDailyLoss: 100})

	d := g.Check(5, 0)
	assert.False(t, d.Allowed)
	assert.Equal(t, "MAX_DAILY_TRADES", d.Violations[0].Code)

	// Over the ceiling stays denied too.
	assert.False(t, g.MayTrade(6, 0))
}

func TestGovernorHaltOnDailyLoss(t *testing.T) {
	t.Parallel()

	g := NewGovernor(Limits{MaxDailyTrades: 100, MaxDailyLoss: 100})

	assert.Equal(t, Active, g.State())
	assert.False(t, g.NoteRecorded(-99.99))
	assert.Equal(t, Active, g.State())

	assert.True(t, g.NoteRecorded(-100))
	assert.Equal(t, Halted, g.State())
	assert.True(t, g.HaltedNow())

	d := g.Check(0, -100)
	assert.False(t, d.Allowed)
	assert.Equal(t, "HALTED", d.Violations[0].Code)
}

func TestGovernorHaltIsTerminal(t *testing.T) {
	t.Parallel()

	g := NewGovernor(Limits{MaxDailyTrades: 100, MaxDailyLoss: 50})
	assert.True(t, g.NoteRecorded(-150))

	// P&L recovering does not un-halt; NoteRecorded reports no new
	// transition.
	assert.False(t, g.NoteRecorded(200))
	assert.Equal(t, Halted, g.State())
	assert.False(t, g.MayTrade(0, 200))
}

func TestGovernorReset(t *testing.T) {
	t.Parallel()

	g := NewGovernor(Limits{MaxDailyTrades: 10, MaxDailyLoss: 50})
	g.NoteRecorded(-60)
	assert.True(t, g.HaltedNow())

	g.Reset()
	assert.Equal(t, Active, g.State())
	assert.True(t, g.MayTrade(0, 0))
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ACTIVE", Active.String())
	assert.Equal(t, "HALTED", Halted.String())
}
