package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"ledger/internal/domain/account"
	"ledger/internal/domain/transaction"
	"ledger/internal/shared/apierror"
	"ledger/internal/shared/middleware"
)

type TransactionHandler struct {
	transactionService *transaction.Service
	accountService     *account.Service
}

func NewTransactionHandler(transactionService *transaction.Service, accountService *account.Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		accountService:     accountService,
	}
}

// CreateTransactionRequest is the body of POST /api/transactions. Which
// account fields are allowed depends on the type.
type CreateTransactionRequest struct {
	Type                 string      `json:"type" validate:"required,oneof=deposit withdrawal transfer"`
	Amount               amountField `json:"amount" validate:"required,numeric,money"`
	SourceAccountID      *int64      `json:"source_account_id" validate:"required_if=Type withdrawal,required_if=Type transfer,excluded_if=Type deposit,omitempty,gt=0"`
	DestinationAccountID *int64      `json:"destination_account_id" validate:"required_if=Type deposit,required_if=Type transfer,excluded_if=Type withdrawal,omitempty,gt=0"`
}

// HandleCreateTransaction submits a deposit, withdrawal or transfer. Business
// failures are still 201 with status "failed".
func (h *TransactionHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		apierror.Write(w, r, apierror.ErrAuthenticationRequired)
		return
	}

	var req CreateTransactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apierror.Write(w, r, apierror.Validation(err.Error()))
		return
	}
	if err := validate.Struct(req); err != nil {
		apierror.Write(w, r, apierror.Validation(validationMessage(err)))
		return
	}

	amount, err := req.Amount.Decimal()
	if err != nil {
		apierror.Write(w, r, apierror.Validation("amount must be a number"))
		return
	}
	cmd, err := transaction.NewCommand(transaction.Type(req.Type), amount, req.SourceAccountID, req.DestinationAccountID)
	if err != nil {
		apierror.Write(w, r, apierror.Validation(err.Error()))
		return
	}

	if err := h.authorize(r.Context(), userID, cmd); err != nil {
		apierror.Write(w, r, err)
		return
	}

	recorded, err := h.transactionService.Submit(r.Context(), cmd)
	if err != nil {
		apierror.Write(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, toTransactionResponse(recorded))
}

// authorize checks that the caller owns the account money leaves from (or,
// for deposits, the account it lands in) and that a transfer's destination
// exists.
func (h *TransactionHandler) authorize(ctx context.Context, userID int64, cmd transaction.Command) error {
	switch c := cmd.(type) {
	case transaction.Deposit:
		_, err := h.accountService.RequireOwned(ctx, c.DestinationAccountID, userID)
		return err
	case transaction.Withdrawal:
		_, err := h.accountService.RequireOwned(ctx, c.SourceAccountID, userID)
		return err
	case transaction.Transfer:
		if _, err := h.accountService.RequireOwned(ctx, c.SourceAccountID, userID); err != nil {
			return err
		}
		_, err := h.accountService.RequireExists(ctx, c.DestinationAccountID)
		return err
	}
	return apierror.Validation("unsupported transaction type")
}

// HandleGetTransaction returns one ledger row if it touches one of the
// caller's accounts.
func (h *TransactionHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		apierror.Write(w, r, apierror.ErrAuthenticationRequired)
		return
	}

	id, err := uuid.Parse(r.PathValue("transaction_id"))
	if err != nil {
		apierror.Write(w, r, apierror.Validation("transaction_id must be a UUID"))
		return
	}

	t, err := h.transactionService.Get(r.Context(), id)
	if err != nil {
		apierror.Write(w, r, err)
		return
	}

	accounts, err := h.accountService.ListAccounts(r.Context(), userID)
	if err != nil {
		apierror.Write(w, r, err)
		return
	}
	for _, acc := range accounts {
		if t.Touches(acc.ID) {
			writeJSON(w, r, http.StatusOK, toTransactionResponse(t))
			return
		}
	}
	apierror.Write(w, r, apierror.Forbidden("Transaction does not involve an account of the authenticated user"))
}

type TransactionListResponse struct {
	AccountID    int64                 `json:"account_id"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
	Transactions []TransactionResponse `json:"transactions"`
}

// HandleListAccountTransactions pages through the ledger rows of one of the
// caller's accounts, newest first.
func (h *TransactionHandler) HandleListAccountTransactions(w http.ResponseWriter, r *http.Request) {
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
	limit, err := queryInt(r, "limit", transaction.DefaultPageSize)
	if err != nil {
		apierror.Write(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		apierror.Write(w, r, err)
		return
	}

	if _, err := h.accountService.RequireOwned(r.Context(), accountID, userID); err != nil {
		apierror.Write(w, r, err)
		return
	}

	switch {
	case limit == 0:
		limit = transaction.DefaultPageSize
	case limit > transaction.MaxPageSize:
		limit = transaction.MaxPageSize
	}
	rows, err := h.transactionService.ListByAccount(r.Context(), accountID, limit, offset)
	if err != nil {
		apierror.Write(w, r, err)
		return
	}

	response := TransactionListResponse{
		AccountID:    accountID,
		Limit:        limit,
		Offset:       offset,
		Transactions: make([]TransactionResponse, 0, len(rows)),
	}
	for _, t := range rows {
		response.Transactions = append(response.Transactions, toTransactionResponse(t))
	}
	writeJSON(w, r, http.StatusOK, response)
}

func parseAccountID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apierror.Validation("account id must be a positive integer")
	}
	return id, nil
}

func queryInt(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apierror.Validation(name + " must be a non-negative integer")
	}
	return n, nil
}
