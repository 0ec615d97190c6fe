package postgres

import (
	"context"
	"fmt"
)

// The UNIQUE constraint on txid is load-bearing: it is the only thing
// standing between two concurrent submissions of the same transaction.
const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id BIGSERIAL PRIMARY KEY,
	txid TEXT UNIQUE NOT NULL,
	alias TEXT NOT NULL DEFAULT '',
	city TEXT NOT NULL,
	country TEXT NOT NULL,
	lat DOUBLE PRECISION NOT NULL,
	lng DOUBLE PRECISION NOT NULL,
	amount_btc DOUBLE PRECISION NOT NULL,
	iso_date TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS project_meta (
	k TEXT PRIMARY KEY,
	v TEXT NOT NULL
);
`

// EnsureSchema creates the ledger tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
