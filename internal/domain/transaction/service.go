package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"ledger/internal/domain/account"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

var (
	ledgerMeter          = otel.Meter("ledger/transaction")
	transactionTotal, _  = ledgerMeter.Int64Counter("ledger.transactions.total", metric.WithDescription("Recorded transactions by type and status"))
	transactionAmount, _ = ledgerMeter.Float64Histogram("ledger.transaction.amount", metric.WithDescription("Amounts of completed transactions"))
)

// Service is the money-movement engine plus read access to the ledger.
type Service struct {
	store Store
	repo  Repository
	newID func() uuid.UUID
}

// NewService creates a transaction service on top of a unit-of-work store and
// a read repository.
func NewService(store Store, repo Repository) *Service {
	return &Service{store: store, repo: repo, newID: uuid.New}
}

type outcome struct {
	status Status
	reason string
}

var completed = outcome{status: StatusCompleted}

func failed(reason string) outcome {
	return outcome{status: StatusFailed, reason: reason}
}

// Submit applies cmd and records it in the ledger as one atomic unit.
//
// Business-rule violations (non-positive amount, missing account reference,
// insufficient funds) are not errors: they produce a failed Transaction with a
// reason and no balance change. A returned error means the store failed and
// nothing was committed.
func (s *Service) Submit(ctx context.Context, cmd Command) (*Transaction, error) {
	if cmd == nil {
		return nil, errors.New("nil transaction command")
	}

	var recorded *Transaction
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		rec := NewRecord{
			TransactionID:        s.newID(),
			Type:                 cmd.Type(),
			Amount:               cmd.Amount(),
			SourceAccountID:      ref(cmd.source()),
			DestinationAccountID: ref(cmd.destination()),
		}

		out, err := apply(ctx, tx, cmd)
		if err != nil {
			return err
		}
		rec.Status = out.status
		if out.reason != "" {
			reason := out.reason
			rec.FailureReason = &reason
		}

		recorded, err = tx.Append(ctx, rec)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit %s: %w", cmd.Type(), err)
	}

	s.record(ctx, recorded)
	return recorded, nil
}

// apply runs the balance checks and mutations for cmd inside tx. Only the
// completed outcome mutates balances.
func apply(ctx context.Context, tx Tx, cmd Command) (outcome, error) {
	amount := cmd.Amount()
	if !amount.IsPositive() {
		return failed(ReasonNonPositiveAmount), nil
	}

	switch c := cmd.(type) {
	case Deposit:
		if c.DestinationAccountID <= 0 {
			return failed(ReasonDestinationRequired), nil
		}
		if _, err := tx.LockAccount(ctx, c.DestinationAccountID); err != nil {
			return outcome{}, err
		}
		if err := tx.Credit(ctx, c.DestinationAccountID, amount); err != nil {
			return outcome{}, err
		}
		return completed, nil

	case Withdrawal:
		if c.SourceAccountID <= 0 {
			return failed(ReasonSourceRequired), nil
		}
		balance, err := tx.LockAccount(ctx, c.SourceAccountID)
		if err != nil {
			return outcome{}, err
		}
		if balance.LessThan(amount) {
			return failed(ReasonInsufficientFunds), nil
		}
		return debit(ctx, tx, c.SourceAccountID, amount)

	case Transfer:
		if c.SourceAccountID <= 0 || c.DestinationAccountID <= 0 {
			return failed(ReasonBothRequired), nil
		}
		if c.SourceAccountID == c.DestinationAccountID {
			return failed(ReasonSameAccount), nil
		}

		// Lock in ascending ID order so opposing transfers cannot deadlock.
		first, second := c.SourceAccountID, c.DestinationAccountID
		if first > second {
			first, second = second, first
		}
		firstBalance, err := tx.LockAccount(ctx, first)
		if err != nil {
			return outcome{}, err
		}
		secondBalance, err := tx.LockAccount(ctx, second)
		if err != nil {
			return outcome{}, err
		}
		sourceBalance := firstBalance
		if first != c.SourceAccountID {
			sourceBalance = secondBalance
		}

		if sourceBalance.LessThan(amount) {
			return failed(ReasonInsufficientFunds), nil
		}
		out, err := debit(ctx, tx, c.SourceAccountID, amount)
		if err != nil || out.status != StatusCompleted {
			return out, err
		}
		if err := tx.Credit(ctx, c.DestinationAccountID, amount); err != nil {
			return outcome{}, err
		}
		return completed, nil
	}

	return outcome{}, fmt.Errorf("unsupported transaction command %T", cmd)
}

// debit treats a store-level insufficient funds rejection as a business
// failure; the conditional update leaves the unit usable.
func debit(ctx context.Context, tx Tx, accountID int64, amount decimal.Decimal) (outcome, error) {
	err := tx.Debit(ctx, accountID, amount)
	if errors.Is(err, account.ErrInsufficientFunds) {
		return failed(ReasonInsufficientFunds), nil
	}
	if err != nil {
		return outcome{}, err
	}
	return completed, nil
}

func (s *Service) record(ctx context.Context, t *Transaction) {
	attrs := metric.WithAttributes(
		attribute.String("type", string(t.Type)),
		attribute.String("status", string(t.Status)),
	)
	transactionTotal.Add(ctx, 1, attrs)
	if t.Status == StatusCompleted {
		transactionAmount.Record(ctx, t.Amount.InexactFloat64(), metric.WithAttributes(attribute.String("type", string(t.Type))))
	}
}

// Get returns a single ledger row by its public identifier.
func (s *Service) Get(ctx context.Context, transactionID uuid.UUID) (*Transaction, error) {
	t, err := s.repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTransactionNotFound
	}
	return t, nil
}

// ListByAccount returns the newest ledger rows touching accountID.
// Ownership must be checked by the caller.
func (s *Service) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*Transaction, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByAccountID(ctx, accountID, limit, offset)
}
