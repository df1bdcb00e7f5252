// Package risk gates trade synthesis against the session's daily limits.
package risk

import "fmt"

// State of the governor's session state machine.
type State int

const (
	Active State = iota
	Halted
)

func (s State) String() string {
	if s == Halted {
		return "HALTED"
	}
	return "ACTIVE"
}

// Limits are the hard per-session ceilings.
type Limits struct {
	// MaxDailyTrades caps tradesToday. Must be > 0.
	MaxDailyTrades int
	// MaxDailyLoss halts the session when pnlToday <= -MaxDailyLoss.
	// Expressed as a positive number. Must be > 0.
	MaxDailyLoss float64
}

type Violation struct {
	Code string
	Msg  string
}

// Decision is the result of a pre-trade gate check.
type Decision struct {
	Allowed    bool
	Violations []Violation
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Governor tracks the session risk state. ACTIVE -> HALTED fires the instant
// the daily loss limit is breached and is terminal for the session: P&L
// recovering later cannot un-halt it, only an explicit Reset can.
//
// Not safe for concurrent use on its own; the owning engine serializes all
// calls under its lock.
type Governor struct {
	limits Limits
	state  State
}

func NewGovernor(limits Limits) *Governor {
	return &Governor{limits: limits, state: Active}
}

func (g *Governor) State() State    { return g.state }
func (g *Governor) HaltedNow() bool { return g.state == Halted }

// Check is the pre-trade gate. It must run once per strategy per tick,
// immediately before synthesis, so that a tick that exhausts the trade budget
// mid-iteration stops synthesizing further trades within that same tick.
func (g *Governor) Check(tradesToday int, pnlToday float64) Decision {
	d := Decision{Allowed: true}

	if g.state == Halted {
		d.add("HALTED", "session halted until reset")
		return d
	}
	if tradesToday >= g.limits.MaxDailyTrades {
		d.add("MAX_DAILY_TRADES",
			fmt.Sprintf("trades today %d >= max %d", tradesToday, g.limits.MaxDailyTrades))
	}
	return d
}

// MayTrade is Check reduced to its verdict.
func (g *Governor) MayTrade(tradesToday int, pnlToday float64) bool {
	return g.Check(tradesToday, pnlToday).Allowed
}

// NoteRecorded re-evaluates the halt condition after a trade has been
// recorded. Returns true if this call transitioned the session to HALTED.
func (g *Governor) NoteRecorded(pnlToday float64) bool {
	if g.state == Halted {
		return false
	}
	if pnlToday <= -g.limits.MaxDailyLoss {
		g.state = Halted
		return true
	}
	return false
}

// Reset returns the governor to ACTIVE. Explicit caller action only (a new
// trading day); never triggered mid-session by the engine itself.
func (g *Governor) Reset() {
	g.state = Active
}
