package transaction

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Command is a money-movement request. It is implemented only by Deposit,
// Withdrawal and Transfer. An account ID of zero means the reference is absent.
type Command interface {
	Type() Type
	Amount() decimal.Decimal
	source() int64
	destination() int64
}

type Deposit struct {
	DestinationAccountID int64
	Value                decimal.Decimal
}

func (Deposit) Type() Type { return TypeDeposit }
func (d Deposit) Amount() decimal.Decimal { return d.Value }
func (Deposit) source() int64 { return 0 }
func (d Deposit) destination() int64 { return d.DestinationAccountID }

type Withdrawal struct {
	SourceAccountID int64
	Value           decimal.Decimal
}

func (Withdrawal) Type() Type { return TypeWithdrawal }
func (w Withdrawal) Amount() decimal.Decimal { return w.Value }
func (w Withdrawal) source() int64 { return w.SourceAccountID }
func (Withdrawal) destination() int64 { return 0 }

type Transfer struct {
	SourceAccountID      int64
	DestinationAccountID int64
	Value                decimal.Decimal
}

func (Transfer) Type() Type { return TypeTransfer }
func (t Transfer) Amount() decimal.Decimal { return t.Value }
func (t Transfer) source() int64 { return t.SourceAccountID }
func (t Transfer) destination() int64 { return t.DestinationAccountID }

// NewCommand builds the variant for typ. Account IDs that typ does not use are
// ignored; nil means absent.
func NewCommand(typ Type, amount decimal.Decimal, sourceID, destinationID *int64) (Command, error) {
	src, dst := deref(sourceID), deref(destinationID)
	switch typ {
	case TypeDeposit:
		return Deposit{DestinationAccountID: dst, Value: amount}, nil
	case TypeWithdrawal:
		return Withdrawal{SourceAccountID: src, Value: amount}, nil
	case TypeTransfer:
		return Transfer{SourceAccountID: src, DestinationAccountID: dst, Value: amount}, nil
	default:
		return nil, fmt.Errorf("unknown transaction type %q", typ)
	}
}

func deref(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func ref(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}
