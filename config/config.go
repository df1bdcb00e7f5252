package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rustyeddy/stratbot/strategy"
	"gopkg.in/yaml.v3"
)

// Config is the complete engine configuration: risk limits, the synthesizer
// model, the strategy catalog, the price feed and the journal backend.
type Config struct {
	Engine     EngineConfig     `json:"engine" yaml:"engine"`
	Synth      SynthConfig      `json:"synth" yaml:"synth"`
	Strategies []StrategyConfig `json:"strategies" yaml:"strategies"`
	Feed       FeedConfig       `json:"feed" yaml:"feed"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
}

// EngineConfig holds the session risk limits and scheduler cadence.
type EngineConfig struct {
	MaxDailyTrades int     `json:"max_daily_trades" yaml:"max_daily_trades"`
	MaxDailyLoss   float64 `json:"max_daily_loss" yaml:"max_daily_loss"`
	TickInterval   string  `json:"tick_interval" yaml:"tick_interval"` // e.g. "5s", "1m"
	LedgerSize     int     `json:"ledger_size,omitempty" yaml:"ledger_size,omitempty"`
}

// ParseTickInterval converts the tick interval to a time.Duration.
func (e EngineConfig) ParseTickInterval() (time.Duration, error) {
	return time.ParseDuration(e.TickInterval)
}

// SynthConfig holds the simulation P&L model parameters. Bias is the shift of
// the uniform outcome draw; it is a placeholder constant, not a signal.
type SynthConfig struct {
	Bias       float64 `json:"bias" yaml:"bias"`
	Volatility float64 `json:"volatility" yaml:"volatility"`
}

// StrategyConfig is one catalog entry.
type StrategyConfig struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description,omitempty" yaml:"description,omitempty"`
	Symbols         []string `json:"symbols" yaml:"symbols"`
	RiskTier        string   `json:"risk_tier" yaml:"risk_tier"`
	MaxPositionSize float64  `json:"max_position_size" yaml:"max_position_size"`
	Enabled         bool     `json:"enabled" yaml:"enabled"`
}

// FeedConfig seeds the offline random-walk price feed.
type FeedConfig struct {
	Prices  map[string]float64 `json:"prices" yaml:"prices"`
	MaxStep float64            `json:"max_step" yaml:"max_step"`
}

// JournalConfig selects the persistence backend.
type JournalConfig struct {
	Type         string `json:"type" yaml:"type"` // "sqlite", "csv" or "none"
	DBPath       string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	TradesFile   string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	SessionsFile string `json:"sessions_file,omitempty" yaml:"sessions_file,omitempty"`
}

// Catalog converts the configured strategies into registry entries.
func (c *Config) Catalog() []strategy.Strategy {
	out := make([]strategy.Strategy, 0, len(c.Strategies))
	for _, s := range c.Strategies {
		out = append(out, strategy.Strategy{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			Symbols:         append([]string(nil), s.Symbols...),
			RiskTier:        strategy.RiskTier(s.RiskTier),
			MaxPositionSize: s.MaxPositionSize,
			Enabled:         s.Enabled,
		})
	}
	return out
}

// LoadFromFile loads configuration from a file (YAML or JSON based on
// content; YAML is tried first).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Engine.MaxDailyTrades <= 0 {
		return fmt.Errorf("engine.max_daily_trades must be positive")
	}
	if c.Engine.MaxDailyLoss <= 0 {
		return fmt.Errorf("engine.max_daily_loss must be positive")
	}
	if d, err := c.Engine.ParseTickInterval(); err != nil || d <= 0 {
		return fmt.Errorf("engine.tick_interval must be a positive duration (e.g. \"5s\")")
	}
	if c.Engine.LedgerSize < 0 {
		return fmt.Errorf("engine.ledger_size must not be negative")
	}
	if c.Synth.Volatility <= 0 {
		return fmt.Errorf("synth.volatility must be positive")
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("at least one strategy is required")
	}

	seen := map[string]bool{}
	for i, s := range c.Strategies {
		if s.ID == "" {
			return fmt.Errorf("strategies[%d]: id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("strategies[%d]: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true
		if len(s.Symbols) == 0 {
			return fmt.Errorf("strategy %s: symbols must not be empty", s.ID)
		}
		if !strategy.RiskTier(s.RiskTier).Valid() {
			return fmt.Errorf("strategy %s: risk_tier must be low, medium or high", s.ID)
		}
		if s.MaxPositionSize <= 0 {
			return fmt.Errorf("strategy %s: max_position_size must be positive", s.ID)
		}
	}

	switch c.Journal.Type {
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for sqlite type")
		}
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.SessionsFile == "" {
			return fmt.Errorf("journal trades_file and sessions_file required for csv type")
		}
	case "none":
	default:
		return fmt.Errorf("journal.type must be 'sqlite', 'csv' or 'none'")
	}

	return nil
}

// Default returns a configuration with a small demo catalog and sensible
// limits.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			MaxDailyTrades: 20,
			MaxDailyLoss:   500,
			TickInterval:   "5s",
			LedgerSize:     20,
		},
		Synth: SynthConfig{
			Bias:       0.1,
			Volatility: 0.02,
		},
		Strategies: []StrategyConfig{
			{
				ID:              "momentum-btc",
				Name:            "BTC Momentum",
				Description:     "Rides short-term BTC momentum.",
				Symbols:         []string{"BTC"},
				RiskTier:        "high",
				MaxPositionSize: 0.5,
				Enabled:         true,
			},
			{
				ID:              "mean-revert-majors",
				Name:            "Majors Mean Reversion",
				Description:     "Fades moves in the large-cap pairs.",
				Symbols:         []string{"ETH", "SOL"},
				RiskTier:        "medium",
				MaxPositionSize: 2,
				Enabled:         true,
			},
			{
				ID:              "carry-basket",
				Name:            "Carry Basket",
				Description:     "Low-churn basket across the board.",
				Symbols:         []string{"BTC", "ETH", "SOL"},
				RiskTier:        "low",
				MaxPositionSize: 1,
				Enabled:         false,
			},
		},
		Feed: FeedConfig{
			Prices: map[string]float64{
				"BTC": 65000,
				"ETH": 3200,
				"SOL": 150,
			},
			MaxStep: 0.01,
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./stratbot.db",
		},
	}
}
