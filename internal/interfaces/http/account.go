package http

import (
	"net/http"

	"ledger/internal/domain/account"
	"ledger/internal/shared/apierror"
	"ledger/internal/shared/middleware"
)

type AccountHandler struct {
	accountService *account.Service
}

func NewAccountHandler(accountService *account.Service) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// HandleListAccounts returns all accounts for the authenticated user
func (h *AccountHandler) HandleListAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		apierror.Write(w, r, apierror.ErrAuthenticationRequired)
		return
	}

	accounts, err := h.accountService.ListAccounts(r.Context(), userID)
	if err != nil {
		apierror.Write(w, r, err)
		return
	}

	response := make([]AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		response = append(response, toAccountResponse(acc))
	}
	writeJSON(w, r, http.StatusOK, response)
}

// HandleGetBalance returns the current balance of one of the caller's accounts
func (h *AccountHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		apierror.Write(w, r, apierror.ErrAuthenticationRequired)
		return
	}

	accountID, err := parseAccountID(r)
	if err != nil {
		apierror.Write(w, r, err)
		return
	}

	acc, err := h.accountService.GetBalance(r.Context(), accountID, userID)
	if err != nil {
		apierror.Write(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, BalanceResponse{AccountID: acc.ID, Balance: money(acc.Balance)})
}
