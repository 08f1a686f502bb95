package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeDeposit    Type = "deposit"
	TypeWithdrawal Type = "withdrawal"
	TypeTransfer   Type = "transfer"
)

func (t Type) Valid() bool {
	switch t {
	case TypeDeposit, TypeWithdrawal, TypeTransfer:
		return true
	}
	return false
}

type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Failure reasons recorded on failed transactions.
const (
	ReasonNonPositiveAmount   = "Negative or zero amount not allowed"
	ReasonDestinationRequired = "Destination account required for deposit"
	ReasonSourceRequired      = "Source account required for withdrawal"
	ReasonBothRequired        = "Both source and destination accounts required for transfer"
	ReasonSameAccount         = "Source and destination accounts must be different"
	ReasonInsufficientFunds   = "Insufficient funds"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicate           = errors.New("transaction identifier already recorded")
)

// Transaction is one recorded money-movement attempt. Rows are never updated
// or deleted once appended.
type Transaction struct {
	ID                   int64           `json:"id"`
	TransactionID        uuid.UUID       `json:"transactionId"`
	Type                 Type            `json:"type"`
	Amount               decimal.Decimal `json:"amount"`
	SourceAccountID      *int64          `json:"sourceAccountId,omitempty"`
	DestinationAccountID *int64          `json:"destinationAccountId,omitempty"`
	Status               Status          `json:"status"`
	FailureReason        *string         `json:"failureReason,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// Touches reports whether the transaction references accountID on either side.
func (t *Transaction) Touches(accountID int64) bool {
	return (t.SourceAccountID != nil && *t.SourceAccountID == accountID) ||
		(t.DestinationAccountID != nil && *t.DestinationAccountID == accountID)
}

// NewRecord is the row the engine appends to the ledger.
type NewRecord struct {
	TransactionID        uuid.UUID
	Type                 Type
	Amount               decimal.Decimal
	SourceAccountID      *int64
	DestinationAccountID *int64
	Status               Status
	FailureReason        *string
}
