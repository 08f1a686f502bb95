package report

import "github.com/shopspring/decimal"

// AccountSummary is one row of the per-account section of the summary report.
type AccountSummary struct {
	AccountID                   int64
	AccountNumber               string
	Username                    string
	CurrentBalance              decimal.Decimal
	LargestCompletedTransaction decimal.Decimal
}

// FailureCount is the number of failed transactions sharing a reason.
type FailureCount struct {
	Reason string
	Count  int64
}

type Summary struct {
	Accounts           []AccountSummary
	FailedTransactions []FailureCount
}
