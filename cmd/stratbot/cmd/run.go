package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rustyeddy/stratbot/config"
	"github.com/rustyeddy/stratbot/engine"
	"github.com/rustyeddy/stratbot/journal"
	"github.com/rustyeddy/stratbot/market"
	"github.com/rustyeddy/stratbot/notify"
	"github.com/rustyeddy/stratbot/risk"
	"github.com/rustyeddy/stratbot/sim"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the auto-trading engine from a config file",
	Long: `Arm the engine and evaluate the strategy catalog on every tick until the
duration elapses, the daily loss limit halts the session, or Ctrl-C.

Prices come from a built-in random-walk feed seeded by the config; trade
outcomes are simulated.

Example:
  stratbot run --config stratbot.yaml --duration 1m`,
	RunE: runRun,
}

var (
	runConfigPath string
	runDuration   time.Duration
	runQuiet      bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (or STRATBOT_CONFIG)")
	runCmd.Flags().DurationVarP(&runDuration, "duration", "d", time.Minute, "how long to stay armed")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "suppress engine logs")
}

func runRun(cmd *cobra.Command, args []string) error {
	// A .env next to the binary may carry STRATBOT_CONFIG.
	_ = godotenv.Load()

	path := runConfigPath
	if path == "" {
		path = os.Getenv("STRATBOT_CONFIG")
	}
	if path == "" {
		return fmt.Errorf("no config given: use --config or STRATBOT_CONFIG")
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	if runQuiet {
		logger = zerolog.Nop()
	}

	var jnl journal.Journal
	switch cfg.Journal.Type {
	case "sqlite":
		jnl, err = journal.NewSQLite(cfg.Journal.DBPath)
	case "csv":
		jnl, err = journal.NewCSV(cfg.Journal.TradesFile, cfg.Journal.SessionsFile)
	default:
		jnl = journal.Discard{}
	}
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer jnl.Close()

	tick, err := cfg.Engine.ParseTickInterval()
	if err != nil {
		return fmt.Errorf("tick interval: %w", err)
	}

	store := market.NewStore()
	walk := market.NewRandomWalk(store, cfg.Feed.Prices, cfg.Feed.MaxStep, time.Now().UnixNano())

	eng := engine.New(engine.Config{
		Limits: risk.Limits{
			MaxDailyTrades: cfg.Engine.MaxDailyTrades,
			MaxDailyLoss:   cfg.Engine.MaxDailyLoss,
		},
		TickInterval: tick,
		LedgerSize:   cfg.Engine.LedgerSize,
		Model:        sim.Model{Bias: cfg.Synth.Bias, Volatility: cfg.Synth.Volatility},
	}, cfg.Catalog(), store, jnl)
	eng.SetLogger(logger)
	eng.AddListener(notify.NewConsole(os.Stdout))

	eng.Arm()

	// Walk prices on the same cadence as the engine ticks.
	feedStop := make(chan struct{})
	go func() {
		t := time.NewTicker(tick)
		defer t.Stop()
		for {
			select {
			case <-feedStop:
				return
			case <-t.C:
				walk.Step()
			}
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	deadline := time.After(runDuration)
	poll := time.NewTicker(tick)
	defer poll.Stop()

loop:
	for {
		select {
		case <-sigc:
			fmt.Println("\ninterrupted")
			break loop
		case <-deadline:
			break loop
		case <-poll.C:
			// The engine disarms itself on a halt.
			if !eng.Armed() {
				break loop
			}
		}
	}

	close(feedStop)
	eng.Disarm()

	notify.Summary(os.Stdout, eng.Snapshot())
	return nil
}
