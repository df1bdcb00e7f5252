package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, strategy_id, strategy_name, symbol, side, quantity, price, pnl, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.StrategyID, t.StrategyName, t.Symbol,
		t.Side, t.Quantity, t.Price, t.PnL, t.Time,
	)
	return err
}

func (j *SQLite) RecordSession(s SessionSnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO sessions
		(time, trades_today, pnl_today, wins_today, losses_today, halted)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.Time, s.TradesToday, s.PnLToday, s.WinsToday, s.LossesToday, s.Halted,
	)
	return err
}

// TradesByStrategy returns the persisted trades for one strategy, oldest
// first.
func (j *SQLite) TradesByStrategy(strategyID string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT trade_id, strategy_id, strategy_name, symbol, side, quantity, price, pnl, time
		FROM trades WHERE strategy_id = ? ORDER BY time`, strategyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var t TradeRecord
		if err := rows.Scan(&t.TradeID, &t.StrategyID, &t.StrategyName, &t.Symbol,
			&t.Side, &t.Quantity, &t.Price, &t.PnL, &t.Time); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
