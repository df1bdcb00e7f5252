// Package notify contains trade event sinks. The engine does not know what a
// sink does with a trade; the console sink just prints it.
package notify

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/rustyeddy/stratbot/engine"
	"github.com/rustyeddy/stratbot/sim"
)

// Console prints one line per synthesized trade. Implements
// engine.TradeListener.
type Console struct {
	out io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{out: w}
}

func (c *Console) OnTrade(t sim.Trade, strategyName string) {
	fmt.Fprintf(c.out, "[%s] %s %s %.4f %s @ %.2f  pnl %+.2f  (%s)\n",
		t.Time.Format("15:04:05"),
		strategyName,
		t.Side,
		t.Quantity,
		t.Symbol,
		t.Price,
		t.PnL,
		t.ID,
	)
}

// Summary renders the session and per-strategy stats as tables.
func Summary(w io.Writer, snap engine.Snapshot) {
	fmt.Fprintf(w, "\nSession: %s  armed=%v\n", snap.State, snap.Armed)
	fmt.Fprintf(w, "Trades today: %d  PnL today: %+.2f  W/L: %d/%d\n\n",
		snap.Stats.TradesToday, snap.Stats.PnLToday,
		snap.Stats.WinsToday, snap.Stats.LossesToday)

	table := tablewriter.NewWriter(w)
	table.Header("Strategy", "Tier", "Enabled", "Trades", "Cumulative PnL")
	for _, s := range snap.Strategies {
		table.Append(
			s.Name,
			string(s.RiskTier),
			fmt.Sprintf("%v", s.Enabled),
			fmt.Sprintf("%d", s.CumulativeTrades),
			fmt.Sprintf("%+.2f", s.CumulativePnL),
		)
	}
	table.Render()

	if len(snap.RecentTrades) == 0 {
		return
	}

	fmt.Fprintln(w)
	recent := tablewriter.NewWriter(w)
	recent.Header("Time", "Symbol", "Side", "Qty", "Price", "PnL")
	for _, t := range snap.RecentTrades {
		recent.Append(
			t.Time.Format("15:04:05"),
			t.Symbol,
			t.Side.String(),
			fmt.Sprintf("%.4f", t.Quantity),
			fmt.Sprintf("%.2f", t.Price),
			fmt.Sprintf("%+.2f", t.PnL),
		)
	}
	recent.Render()
}
