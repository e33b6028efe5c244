// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS calculations (
	id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	balance_text TEXT NOT NULL,
	risk_text TEXT NOT NULL,
	signal_text TEXT NOT NULL,
	instrument TEXT NOT NULL,
	account_currency TEXT NOT NULL,
	pips TEXT NOT NULL,
	rate TEXT NOT NULL,
	lot_size TEXT NOT NULL,
	amount_at_risk TEXT NOT NULL,
	position_units TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_calculations_time ON calculations(time);
`
