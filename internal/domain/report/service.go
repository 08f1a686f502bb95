package report

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summary assembles the report. Both sections are always non-nil so that they
// render as empty lists.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	accounts, err := s.repo.AccountSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load account summaries: %w", err)
	}
	failures, err := s.repo.FailureCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load failure counts: %w", err)
	}

	if accounts == nil {
		accounts = []AccountSummary{}
	}
	if failures == nil {
		failures = []FailureCount{}
	}
	return &Summary{Accounts: accounts, FailedTransactions: failures}, nil
}
