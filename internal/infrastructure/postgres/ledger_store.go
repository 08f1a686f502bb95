package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"ledger/internal/domain/account"
	"ledger/internal/domain/transaction"
)

// LedgerStore runs money movements as read-committed transactions. Row locks
// taken by LockAccount serialize concurrent movements on the same account.
type LedgerStore struct {
	db *DB
}

func NewLedgerStore(db *DB) *LedgerStore {
	return &LedgerStore{db: db}
}

func (s *LedgerStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx transaction.Tx) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelReadCommitted}
	return s.db.InTx(ctx, opts, func(ctx context.Context, tx *Tx) error {
		return fn(ctx, &ledgerTx{q: tx})
	})
}

type ledgerTx struct {
	q querier
}

func (t *ledgerTx) LockAccount(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := t.q.QueryRowContext(ctx, `SELECT balance FROM accounts WHERE id = $1 FOR UPDATE`, accountID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, account.ErrAccountNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to lock account %d: %w", accountID, err)
	}
	return balance, nil
}

func (t *ledgerTx) Credit(ctx context.Context, accountID int64, amount decimal.Decimal) error {
	result, err := t.q.ExecContext(ctx,
		`UPDATE accounts SET balance = balance + $1, updated_at = NOW() WHERE id = $2`,
		amount, accountID,
	)
	if err != nil {
		return fmt.Errorf("failed to credit account %d: %w", accountID, mapError(err))
	}
	return expectOneRow(result, account.ErrAccountNotFound)
}

// Debit only matches when the balance covers amount, so it never drives a
// balance negative even without a prior lock.
func (t *ledgerTx) Debit(ctx context.Context, accountID int64, amount decimal.Decimal) error {
	result, err := t.q.ExecContext(ctx,
		`UPDATE accounts SET balance = balance - $1, updated_at = NOW() WHERE id = $2 AND balance >= $1`,
		amount, accountID,
	)
	if err != nil {
		return fmt.Errorf("failed to debit account %d: %w", accountID, mapError(err))
	}
	return expectOneRow(result, account.ErrInsufficientFunds)
}

func (t *ledgerTx) Append(ctx context.Context, rec transaction.NewRecord) (*transaction.Transaction, error) {
	query := `
		INSERT INTO transactions (transaction_id, type, amount, source_account_id, destination_account_id, status, failure_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + transactionColumns

	row := t.q.QueryRowContext(ctx, query,
		rec.TransactionID, string(rec.Type), rec.Amount, rec.SourceAccountID, rec.DestinationAccountID,
		string(rec.Status), rec.FailureReason,
	)
	recorded, err := scanTransaction(row)
	if err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", mapError(err))
	}
	return recorded, nil
}

func expectOneRow(result sql.Result, none error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return none
	}
	return nil
}
