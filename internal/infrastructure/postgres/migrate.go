package postgres

import (
	"context"
	"fmt"
)

// schema is idempotent; running it against an up-to-date database is a no-op.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id                BIGSERIAL PRIMARY KEY,
	username          TEXT NOT NULL UNIQUE,
	secret_key_prefix TEXT NOT NULL,
	secret_key_hash   TEXT NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_users_secret_key_prefix ON users (secret_key_prefix);

CREATE TABLE IF NOT EXISTS accounts (
	id             BIGSERIAL PRIMARY KEY,
	account_number TEXT NOT NULL UNIQUE,
	user_id        BIGINT NOT NULL REFERENCES users (id),
	balance        NUMERIC(15,2) NOT NULL DEFAULT 0 CHECK (balance >= 0),
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_accounts_user_id ON accounts (user_id);

CREATE TABLE IF NOT EXISTS transactions (
	id                     BIGSERIAL PRIMARY KEY,
	transaction_id         UUID NOT NULL UNIQUE,
	type                   TEXT NOT NULL CHECK (type IN ('deposit', 'withdrawal', 'transfer')),
	amount                 NUMERIC(15,2) NOT NULL,
	source_account_id      BIGINT REFERENCES accounts (id) ON DELETE SET NULL,
	destination_account_id BIGINT REFERENCES accounts (id) ON DELETE SET NULL,
	status                 TEXT NOT NULL CHECK (status IN ('completed', 'failed')),
	failure_reason         TEXT,
	created_at             TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK ((status = 'failed') = (failure_reason IS NOT NULL))
);

CREATE INDEX IF NOT EXISTS idx_transactions_source_account_id ON transactions (source_account_id);
CREATE INDEX IF NOT EXISTS idx_transactions_destination_account_id ON transactions (destination_account_id);
CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions (status);
`

// Migrate creates the schema in a single transaction.
func Migrate(ctx context.Context, db *DB) error {
	err := db.InTx(ctx, nil, func(ctx context.Context, tx *Tx) error {
		_, err := tx.ExecContext(ctx, schema)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
