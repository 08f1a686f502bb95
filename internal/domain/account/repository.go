package account

import "context"

// Repository defines the interface for account data access.
// Balance mutations are not part of it: they only happen inside the
// ledger's unit of work (see transaction.Tx).
type Repository interface {
	// Create provisions a new account with its opening balance
	Create(ctx context.Context, params CreateParams) (*Account, error)

	// GetByID retrieves an account by its ID
	GetByID(ctx context.Context, id int64) (*Account, error)

	// GetByAccountNumber retrieves an account by its external number
	GetByAccountNumber(ctx context.Context, number string) (*Account, error)

	// ListByUserID retrieves all accounts for a specific user
	ListByUserID(ctx context.Context, userID int64) ([]*Account, error)
}
