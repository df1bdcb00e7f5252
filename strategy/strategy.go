package strategy

// RiskTier classifies a strategy for display purposes. It does not influence
// sizing; dashboards derive color-coding from it.
type RiskTier string

const (
	TierLow    RiskTier = "low"
	TierMedium RiskTier = "medium"
	TierHigh   RiskTier = "high"
)

func (t RiskTier) Valid() bool {
	switch t {
	case TierLow, TierMedium, TierHigh:
		return true
	}
	return false
}

// Strategy is a named, toggleable rule-set with an eligible symbol set and a
// fixed trade size. CumulativeTrades/CumulativePnL are mutated only by the
// engine's attribution step.
type Strategy struct {
	ID          string
	Name        string
	Description string
	Symbols     []string
	RiskTier    RiskTier

	// MaxPositionSize is the quantity synthesized per trade, in the
	// position's native unit. Always > 0.
	MaxPositionSize float64

	Enabled bool

	CumulativeTrades int
	CumulativePnL    float64
}

// clone returns a copy with its own Symbols slice so callers cannot reach
// back into registry state.
func (s Strategy) clone() Strategy {
	c := s
	c.Symbols = append([]string(nil), s.Symbols...)
	return c
}
