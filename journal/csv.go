package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSV struct {
	trades   *csv.Writer
	sessions *csv.Writer
	tf, sf   *os.File
}

func NewCSV(tradesPath, sessionsPath string) (*CSV, error) {
	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, err
	}
	sf, err := os.Create(sessionsPath)
	if err != nil {
		tf.Close()
		return nil, err
	}

	tw := csv.NewWriter(tf)
	sw := csv.NewWriter(sf)

	if err := tw.Write([]string{"trade_id", "strategy_id", "strategy_name", "symbol", "side", "quantity", "price", "pnl", "time"}); err != nil {
		return nil, err
	}
	if err := sw.Write([]string{"time", "trades_today", "pnl_today", "wins_today", "losses_today", "halted"}); err != nil {
		return nil, err
	}

	tw.Flush()
	if err := tw.Error(); err != nil {
		return nil, err
	}
	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}

	return &CSV{tw, sw, tf, sf}, nil
}

func (j *CSV) RecordTrade(t TradeRecord) error {
	j.trades.Write([]string{
		t.TradeID,
		t.StrategyID,
		t.StrategyName,
		t.Symbol,
		t.Side,
		f(t.Quantity),
		f(t.Price),
		f(t.PnL),
		t.Time.Format(time.RFC3339),
	})
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSV) RecordSession(s SessionSnapshot) error {
	err := j.sessions.Write([]string{
		s.Time.Format(time.RFC3339),
		strconv.Itoa(s.TradesToday),
		f(s.PnLToday),
		strconv.Itoa(s.WinsToday),
		strconv.Itoa(s.LossesToday),
		strconv.FormatBool(s.Halted),
	})
	if err != nil {
		return err
	}

	j.sessions.Flush()
	return j.sessions.Error()
}

func (j *CSV) Close() error {
	j.trades.Flush()
	if err := j.trades.Error(); err != nil {
		return err
	}
	j.sessions.Flush()
	if err := j.sessions.Error(); err != nil {
		return err
	}

	if err := j.tf.Close(); err != nil {
		return err
	}
	return j.sf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
