// Package apierror renders every non-2xx response in one JSON shape.
package apierror

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ledger/internal/domain/account"
	"ledger/internal/domain/transaction"
	"ledger/internal/domain/user"
)

const (
	CodeValidation             = "validation_error"
	CodeAuthenticationRequired = "authentication_required"
	CodeAuthenticationFailed   = "authentication_failed"
	CodeForbidden              = "forbidden"
	CodeNotFound               = "not_found"
	CodeMethodNotAllowed       = "method_not_allowed"
	CodeInternal               = "internal_error"
)

// Error is a request-level failure with its HTTP status and public message.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func MethodNotAllowed(method string) *Error {
	return &Error{Status: http.StatusMethodNotAllowed, Code: CodeMethodNotAllowed, Message: "Method " + method + " is not allowed on this resource"}
}

var (
	ErrAuthenticationRequired = &Error{Status: http.StatusUnauthorized, Code: CodeAuthenticationRequired, Message: "Authentication required"}
	ErrAuthenticationFailed   = &Error{Status: http.StatusUnauthorized, Code: CodeAuthenticationFailed, Message: "Authentication failed"}
	ErrInternal               = &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "An unexpected error occurred"}
)

// From maps domain sentinel errors to their HTTP form. Anything unrecognized
// becomes ErrInternal.
func From(err error) *Error {
	var apiErr *Error
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, account.ErrAccountNotFound):
		return NotFound("Account not found")
	case errors.Is(err, account.ErrForbidden):
		return Forbidden("Account does not belong to the authenticated user")
	case errors.Is(err, transaction.ErrTransactionNotFound):
		return NotFound("Transaction not found")
	case errors.Is(err, user.ErrUserNotFound):
		return NotFound("User not found")
	case errors.Is(err, user.ErrAuthenticationFailed):
		return ErrAuthenticationFailed
	case errors.Is(err, account.ErrInvalidAccountNumber),
		errors.Is(err, account.ErrNegativeBalance),
		errors.Is(err, user.ErrInvalidUsername):
		return Validation(err.Error())
	}
	return ErrInternal
}

type body struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
}

// Write renders err for r. Internal errors are logged with their cause and
// returned to the client without it.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := From(err)
	if apiErr.Status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	_ = json.NewEncoder(w).Encode(body{
		Error:     apiErr.Code,
		Message:   apiErr.Message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      r.URL.Path,
	})
}
