package postgres

import (
	"context"
	"fmt"

	"ledger/internal/domain/report"
)

type ReportRepository struct {
	db *DB
}

func NewReportRepository(db *DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) AccountSummaries(ctx context.Context) ([]report.AccountSummary, error) {
	query := `
		SELECT a.id, a.account_number, u.username, a.balance,
		       COALESCE((
		           SELECT MAX(t.amount)
		           FROM transactions t
		           WHERE t.status = 'completed'
		             AND (t.source_account_id = a.id OR t.destination_account_id = a.id)
		       ), 0)
		FROM accounts a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize accounts: %w", err)
	}
	defer rows.Close()

	summaries := []report.AccountSummary{}
	for rows.Next() {
		var s report.AccountSummary
		if err := rows.Scan(&s.AccountID, &s.AccountNumber, &s.Username, &s.CurrentBalance, &s.LargestCompletedTransaction); err != nil {
			return nil, fmt.Errorf("failed to scan account summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account summaries: %w", err)
	}

	return summaries, nil
}

func (r *ReportRepository) FailureCounts(ctx context.Context) ([]report.FailureCount, error) {
	query := `
		SELECT failure_reason, COUNT(*)
		FROM transactions
		WHERE status = 'failed'
		GROUP BY failure_reason
		ORDER BY COUNT(*) DESC, failure_reason
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count failures: %w", err)
	}
	defer rows.Close()

	counts := []report.FailureCount{}
	for rows.Next() {
		var c report.FailureCount
		if err := rows.Scan(&c.Reason, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan failure count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating failure counts: %w", err)
	}

	return counts, nil
}
