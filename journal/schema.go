package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	strategy_id TEXT NOT NULL,
	strategy_name TEXT NOT NULL,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	quantity REAL NOT NULL,
	price REAL NOT NULL,
	pnl REAL NOT NULL,
	time DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_strategy ON trades(strategy_id);
CREATE INDEX IF NOT EXISTS idx_trades_time ON trades(time);

CREATE TABLE IF NOT EXISTS sessions (
	time DATETIME NOT NULL,
	trades_today INTEGER NOT NULL,
	pnl_today REAL NOT NULL,
	wins_today INTEGER NOT NULL,
	losses_today INTEGER NOT NULL,
	halted INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_time ON sessions(time);
`
