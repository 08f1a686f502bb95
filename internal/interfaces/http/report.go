package http

import (
	"net/http"

	"ledger/internal/domain/report"
	"ledger/internal/shared/apierror"
)

type ReportHandler struct {
	reportService *report.Service
}

func NewReportHandler(reportService *report.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type AccountSummaryResponse struct {
	AccountID                   int64  `json:"account_id"`
	AccountNumber               string `json:"account_number"`
	Username                    string `json:"username"`
	CurrentBalance              string `json:"current_balance"`
	LargestCompletedTransaction string `json:"largest_completed_transaction"`
}

type FailureCountResponse struct {
	Reason string `json:"reason"`
	Count  int64  `json:"count"`
}

type SummaryResponse struct {
	Accounts           []AccountSummaryResponse `json:"accounts"`
	FailedTransactions []FailureCountResponse   `json:"failed_transactions"`
}

// HandleSummary serves the public summary report.
func (h *ReportHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.Summary(r.Context())
	if err != nil {
		apierror.Write(w, r, err)
		return
	}

	response := SummaryResponse{
		Accounts:           make([]AccountSummaryResponse, 0, len(summary.Accounts)),
		FailedTransactions: make([]FailureCountResponse, 0, len(summary.FailedTransactions)),
	}
	for _, a := range summary.Accounts {
		response.Accounts = append(response.Accounts, AccountSummaryResponse{
			AccountID:                   a.AccountID,
			AccountNumber:               a.AccountNumber,
			Username:                    a.Username,
			CurrentBalance:              money(a.CurrentBalance),
			LargestCompletedTransaction: money(a.LargestCompletedTransaction),
		})
	}
	for _, f := range summary.FailedTransactions {
		response.FailedTransactions = append(response.FailedTransactions, FailureCountResponse{
			Reason: f.Reason,
			Count:  f.Count,
		})
	}

	writeJSON(w, r, http.StatusOK, response)
}
