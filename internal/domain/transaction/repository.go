package transaction

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines read access to the ledger. Appends only happen through Tx.
type Repository interface {
	GetByTransactionID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListByAccountID(ctx context.Context, accountID int64, limit, offset int) ([]*Transaction, error)
}

// Store opens atomic units of work. fn's error aborts the unit; a nil return
// commits it. Implementations must release the underlying connection on every path.
type Store interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the set of operations available inside one unit of work.
type Tx interface {
	// LockAccount takes a row lock on the account until the unit ends and returns
	// its balance. Returns account.ErrAccountNotFound if it does not exist.
	LockAccount(ctx context.Context, accountID int64) (decimal.Decimal, error)

	// Credit adds amount to the account's balance.
	Credit(ctx context.Context, accountID int64, amount decimal.Decimal) error

	// Debit subtracts amount. It fails with account.ErrInsufficientFunds rather
	// than drive the balance negative.
	Debit(ctx context.Context, accountID int64, amount decimal.Decimal) error

	// Append writes the ledger row.
	Append(ctx context.Context, rec NewRecord) (*Transaction, error)
}
