// Package engine runs the automated strategy execution loop and enforces the
// session risk limits. One Engine is one session: it owns its registry,
// ledger and governor outright, and external callers interact only through
// the defined entry points (Toggle, Arm, Disarm, Reset, Snapshot).
package engine

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rustyeddy/stratbot/journal"
	"github.com/rustyeddy/stratbot/ledger"
	"github.com/rustyeddy/stratbot/market"
	"github.com/rustyeddy/stratbot/risk"
	"github.com/rustyeddy/stratbot/sim"
	"github.com/rustyeddy/stratbot/strategy"
)

// TradeListener is notified of every synthesized trade, after engine state
// has been updated and the engine lock released. UI trade lists and
// notification hooks subscribe here.
type TradeListener interface {
	OnTrade(t sim.Trade, strategyName string)
}

// ListenerFunc adapts a function to a TradeListener.
type ListenerFunc func(t sim.Trade, strategyName string)

func (f ListenerFunc) OnTrade(t sim.Trade, strategyName string) { f(t, strategyName) }

// Config are the session-wide engine settings.
type Config struct {
	Limits       risk.Limits
	TickInterval time.Duration
	LedgerSize   int       // 0 means ledger.DefaultWindow
	Model        sim.Model // zero Volatility means sim.DefaultModel
	Rand         sim.Rand  // nil means a time-seeded math/rand source
}

// Snapshot is the read-only status surface: the daily aggregate, the recent
// trade window (newest first), per-strategy cumulative stats, and the
// governor/scheduler state. Always internally consistent; it can never
// reflect a partially applied trade.
type Snapshot struct {
	Stats        ledger.Stats
	RecentTrades []sim.Trade
	Strategies   []strategy.Strategy
	State        risk.State
	Armed        bool
}

// Engine wires the registry, synthesizer, governor and ledger together.
//
// A single mutex guards the whole gate-check -> synthesize -> record ->
// attribute pipeline, so concurrent ticks or external mutations can never
// interleave with an in-flight trade attribution.
type Engine struct {
	mu        sync.Mutex
	cfg       Config
	registry  *strategy.Registry
	governor  *risk.Governor
	ledger    *ledger.Ledger
	synth     *sim.Synthesizer
	prices    market.Source
	journal   journal.Journal
	listeners []TradeListener
	log       zerolog.Logger

	armed bool
	stop  chan struct{}
}

func New(cfg Config, catalog []strategy.Strategy, prices market.Source, jnl journal.Journal) *Engine {
	model := cfg.Model
	if model.Volatility == 0 {
		model = sim.DefaultModel()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = sim.NewRand(time.Now().UnixNano())
	}
	if jnl == nil {
		jnl = journal.Discard{}
	}

	return &Engine{
		cfg:      cfg,
		registry: strategy.NewRegistry(catalog),
		governor: risk.NewGovernor(cfg.Limits),
		ledger:   ledger.New(cfg.LedgerSize),
		synth:    sim.NewSynthesizer(model, rng),
		prices:   prices,
		journal:  jnl,
		log:      zerolog.Nop(),
	}
}

// SetLogger installs a structured logger for tick, trade and halt events.
func (e *Engine) SetLogger(l zerolog.Logger) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log = l
}

// AddListener registers a trade event sink.
func (e *Engine) AddListener(l TradeListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, l)
}

// Toggle flips the enabled flag of a strategy. Unknown ids are a silent
// no-op.
func (e *Engine) Toggle(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.registry.Toggle(id)
}

// Reset starts a new session: daily aggregate and trade window zeroed,
// per-strategy cumulative stats cleared, governor back to ACTIVE. This is the
// one deliberate way out of a halt; the engine never resets itself.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.governor.Reset()
	e.ledger.Reset()
	e.registry.ResetStats()
	e.log.Info().Msg("session reset")
}

// Snapshot returns the current status surface.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{
		Stats:        e.ledger.Stats(),
		RecentTrades: e.ledger.Recent(),
		Strategies:   e.registry.List(),
		State:        e.governor.State(),
		Armed:        e.armed,
	}
}

// Halted reports whether the governor has halted the session.
func (e *Engine) Halted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.governor.HaltedNow()
}

// Tick runs one evaluation pass: every enabled strategy, in registry order,
// is gated against the daily limits and, if permitted, run through the
// synthesize -> record -> attribute pipeline. Registry order is the
// tie-break: the first strategies get priority for the day's remaining trade
// budget.
//
// Returns false when the session is (or becomes) halted, which tells the
// scheduler to disarm. Callable directly, so the pipeline is testable without
// waiting on wall-clock ticks.
func (e *Engine) Tick() bool {
	type event struct {
		trade sim.Trade
		name  string
	}

	e.mu.Lock()

	if e.governor.HaltedNow() {
		e.mu.Unlock()
		return false
	}

	var events []event
	halted := false

	for _, st := range e.registry.Enabled() {
		stats := e.ledger.Stats()

		// Gate once per strategy, immediately before synthesis, so a tick
		// that exhausts the budget mid-iteration stops right there.
		if !e.governor.MayTrade(stats.TradesToday, stats.PnLToday) {
			break
		}

		trade, ok := e.synth.Synthesize(st, e.prices)
		if !ok {
			// No price for the chosen symbol: designed skip, no retry this
			// tick.
			e.log.Debug().Str("strategy", st.ID).Msg("no price, skipping")
			continue
		}

		e.ledger.Record(trade)
		e.registry.RecordResult(st.ID, trade.PnL)

		if err := e.journal.RecordTrade(journal.TradeRecord{
			TradeID:      trade.ID,
			StrategyID:   trade.StrategyID,
			StrategyName: st.Name,
			Symbol:       trade.Symbol,
			Side:         trade.Side.String(),
			Quantity:     trade.Quantity,
			Price:        trade.Price,
			PnL:          trade.PnL,
			Time:         trade.Time,
		}); err != nil {
			// Persistence failures never abort a tick.
			e.log.Error().Err(err).Str("trade", trade.ID).Msg("journal trade")
		}

		events = append(events, event{trade: trade, name: st.Name})

		e.log.Info().
			Str("strategy", st.ID).
			Str("symbol", trade.Symbol).
			Str("side", trade.Side.String()).
			Float64("pnl", trade.PnL).
			Msg("trade synthesized")

		if e.governor.NoteRecorded(e.ledger.Stats().PnLToday) {
			halted = true
			e.log.Warn().
				Float64("pnl_today", e.ledger.Stats().PnLToday).
				Float64("max_daily_loss", e.cfg.Limits.MaxDailyLoss).
				Msg("daily loss limit breached, session halted")
			break
		}
	}

	if len(events) > 0 || halted {
		stats := e.ledger.Stats()
		if err := e.journal.RecordSession(journal.SessionSnapshot{
			Time:        time.Now().UTC(),
			TradesToday: stats.TradesToday,
			PnLToday:    stats.PnLToday,
			WinsToday:   stats.WinsToday,
			LossesToday: stats.LossesToday,
			Halted:      halted,
		}); err != nil {
			e.log.Error().Err(err).Msg("journal session")
		}
	}

	// Capture listeners before releasing the lock.
	listeners := append([]TradeListener(nil), e.listeners...)

	e.mu.Unlock()

	// Notify outside the lock so a listener can call back into the engine.
	for _, l := range listeners {
		for _, ev := range events {
			l.OnTrade(ev.trade, ev.name)
		}
	}

	return !halted
}
