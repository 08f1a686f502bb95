package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"ledger/internal/domain/account"
	"ledger/internal/domain/transaction"
	"ledger/internal/domain/user"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// mapError translates constraint violations into domain errors. The driver
// error stays in the chain for logging.
func mapError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case codeCheckViolation:
		if pqErr.Table == "accounts" {
			return fmt.Errorf("%w: %w", account.ErrInsufficientFunds, err)
		}
	case codeForeignKeyViolation:
		if pqErr.Table == "accounts" {
			return fmt.Errorf("%w: %w", user.ErrUserNotFound, err)
		}
		return fmt.Errorf("%w: %w", account.ErrAccountNotFound, err)
	case codeUniqueViolation:
		switch pqErr.Table {
		case "users":
			return fmt.Errorf("%w: %w", user.ErrDuplicateUsername, err)
		case "accounts":
			return fmt.Errorf("%w: %w", account.ErrDuplicateAccount, err)
		case "transactions":
			return fmt.Errorf("%w: %w", transaction.ErrDuplicate, err)
		}
	}
	return err
}
