package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"

	"ledger/internal/domain/account"
	"ledger/internal/domain/transaction"
	"ledger/internal/domain/user"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "Negative Balance", err: &pq.Error{Code: codeCheckViolation, Table: "accounts"}, want: account.ErrInsufficientFunds},
		{name: "Missing Account Reference", err: &pq.Error{Code: codeForeignKeyViolation, Table: "transactions"}, want: account.ErrAccountNotFound},
		{name: "Missing Owner", err: &pq.Error{Code: codeForeignKeyViolation, Table: "accounts"}, want: user.ErrUserNotFound},
		{name: "Duplicate Username", err: &pq.Error{Code: codeUniqueViolation, Table: "users"}, want: user.ErrDuplicateUsername},
		{name: "Duplicate Account Number", err: &pq.Error{Code: codeUniqueViolation, Table: "accounts"}, want: account.ErrDuplicateAccount},
		{name: "Duplicate Transaction ID", err: &pq.Error{Code: codeUniqueViolation, Table: "transactions"}, want: transaction.ErrDuplicate},
		{name: "Wrapped Driver Error", err: fmt.Errorf("insert: %w", &pq.Error{Code: codeUniqueViolation, Table: "users"}), want: user.ErrDuplicateUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("mapError() = %v, want %v", got, tt.want)
			}
			var pqErr *pq.Error
			if !errors.As(got, &pqErr) {
				t.Error("mapError() dropped the driver error from the chain")
			}
		})
	}
}

func TestMapError_PassThrough(t *testing.T) {
	plain := errors.New("connection reset by peer")
	if got := mapError(plain); got != plain {
		t.Errorf("mapError() = %v, want unchanged", got)
	}

	other := &pq.Error{Code: "40001"}
	if got := mapError(other); got != error(other) {
		t.Errorf("mapError() = %v, want unchanged serialization failure", got)
	}
}
