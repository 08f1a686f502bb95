package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"ledger/internal/domain/account"
	"ledger/internal/domain/transaction"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.WarnContext(r.Context(), "failed to write response", "path", r.URL.Path, "error", err)
	}
}

// money renders amounts with exactly two decimals.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type TransactionResponse struct {
	ID                   int64   `json:"id"`
	TransactionID        string  `json:"transaction_id"`
	Type                 string  `json:"type"`
	Amount               string  `json:"amount"`
	SourceAccountID      *int64  `json:"source_account_id"`
	DestinationAccountID *int64  `json:"destination_account_id"`
	Status               string  `json:"status"`
	FailureReason        *string `json:"failure_reason"`
	CreatedAt            string  `json:"created_at"`
}

func toTransactionResponse(t *transaction.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                   t.ID,
		TransactionID:        t.TransactionID.String(),
		Type:                 string(t.Type),
		Amount:               money(t.Amount),
		SourceAccountID:      t.SourceAccountID,
		DestinationAccountID: t.DestinationAccountID,
		Status:               string(t.Status),
		FailureReason:        t.FailureReason,
		CreatedAt:            t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type AccountResponse struct {
	ID            int64  `json:"id"`
	AccountNumber string `json:"account_number"`
	Balance       string `json:"balance"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func toAccountResponse(acc *account.Account) AccountResponse {
	return AccountResponse{
		ID:            acc.ID,
		AccountNumber: acc.AccountNumber,
		Balance:       money(acc.Balance),
		CreatedAt:     acc.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     acc.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

type BalanceResponse struct {
	AccountID int64  `json:"account_id"`
	Balance   string `json:"balance"`
}
