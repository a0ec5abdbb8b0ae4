package ledger

// Decimal columns are TEXT so quantities and prices round-trip exactly.
const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	side TEXT NOT NULL,
	symbol TEXT NOT NULL,
	quantity TEXT NOT NULL,
	usdc_amount TEXT NOT NULL,
	price_per_token TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_symbol ON trades(symbol);

CREATE TABLE IF NOT EXISTS positions (
	agent_id TEXT NOT NULL,
	symbol TEXT NOT NULL,
	quantity TEXT NOT NULL,
	avg_cost_basis TEXT NOT NULL,
	PRIMARY KEY (agent_id, symbol)
);
`
