package account

import (
	"errors"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// Domain errors
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrForbidden            = errors.New("access forbidden")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInvalidAccountNumber = errors.New("account number must be 6 to 34 alphanumeric characters")
	ErrNegativeBalance      = errors.New("balance cannot be negative")
	ErrDuplicateAccount     = errors.New("account number already exists")
)

var accountNumberPattern = regexp.MustCompile(`^[A-Za-z0-9]{6,34}$`)

// Account holds one user's balance. Balance never drops below zero.
type Account struct {
	ID            int64           `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	UserID        int64           `json:"userId"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CreateParams contains parameters for provisioning a new account
type CreateParams struct {
	AccountNumber  string
	UserID         int64
	InitialBalance decimal.Decimal
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if p.UserID <= 0 {
		return errors.New("valid user ID is required")
	}
	if !accountNumberPattern.MatchString(p.AccountNumber) {
		return ErrInvalidAccountNumber
	}
	if p.InitialBalance.IsNegative() {
		return ErrNegativeBalance
	}
	return nil
}
