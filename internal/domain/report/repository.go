package report

import "context"

// Repository defines the aggregate queries behind the summary report.
type Repository interface {
	// AccountSummaries returns every account with its owner and the largest
	// completed amount it took part in, ordered by account ID.
	AccountSummaries(ctx context.Context) ([]AccountSummary, error)

	// FailureCounts groups failed transactions by reason, most frequent first.
	FailureCounts(ctx context.Context) ([]FailureCount, error)
}
