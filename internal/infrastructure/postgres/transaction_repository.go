package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"ledger/internal/domain/transaction"
)

// TransactionRepository reads the ledger. Rows are written only by
// LedgerStore inside a unit of work.
type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, transaction_id, type, amount, source_account_id, destination_account_id,
	status, failure_reason, created_at`

func (r *TransactionRepository) GetByTransactionID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`

	t, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, transaction.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return t, nil
}

// ListByAccountID returns rows where the account is either side, newest first.
func (r *TransactionRepository) ListByAccountID(ctx context.Context, accountID int64, limit, offset int) ([]*transaction.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE source_account_id = $1 OR destination_account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []*transaction.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}

func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var t transaction.Transaction
	var source, destination sql.NullInt64
	var reason sql.NullString

	err := s.Scan(
		&t.ID, &t.TransactionID, &t.Type, &t.Amount, &source, &destination,
		&t.Status, &reason, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if source.Valid {
		t.SourceAccountID = &source.Int64
	}
	if destination.Valid {
		t.DestinationAccountID = &destination.Int64
	}
	if reason.Valid {
		t.FailureReason = &reason.String
	}
	return &t, nil
}
