package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ledger/internal/domain/user"
	"ledger/internal/shared/apierror"
)

type ContextKey string

const (
	UserIDKey   ContextKey = "user_id"
	UsernameKey ContextKey = "username"
)

// SecretKeyHeader carries the caller's API key.
const SecretKeyHeader = "X-Secret-Key"

// Authenticator resolves an API key to its owner.
type Authenticator interface {
	Resolve(ctx context.Context, secretKey string) (*user.User, error)
}

func Auth(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			secret := strings.TrimSpace(r.Header.Get(SecretKeyHeader))
			if secret == "" {
				apierror.Write(w, r, apierror.ErrAuthenticationRequired)
				return
			}

			u, err := authenticator.Resolve(r.Context(), secret)
			if err != nil {
				if errors.Is(err, user.ErrAuthenticationFailed) {
					apierror.Write(w, r, apierror.ErrAuthenticationFailed)
					return
				}
				apierror.Write(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, u.ID)
			ctx = context.WithValue(ctx, UsernameKey, u.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated caller's ID.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}
