package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ledger/internal/domain/user"
)

type mockAuthenticator struct {
	ResolveFunc func(ctx context.Context, secretKey string) (*user.User, error)
}

func (m *mockAuthenticator) Resolve(ctx context.Context, secretKey string) (*user.User, error) {
	return m.ResolveFunc(ctx, secretKey)
}

func TestAuth(t *testing.T) {
	const validKey = "sk_0123456789ab_" + "00112233445566778899aabbccddeeff0011223344556677"

	authenticator := &mockAuthenticator{
		ResolveFunc: func(ctx context.Context, secretKey string) (*user.User, error) {
			switch secretKey {
			case validKey:
				return &user.User{ID: 1, Username: "alice"}, nil
			case "sk_broken":
				return nil, errors.New("database unavailable")
			}
			return nil, user.ErrAuthenticationFailed
		},
	}

	tests := []struct {
		name           string
		setupRequest   func(r *http.Request)
		expectedStatus int
		expectedCode   string
		expectedUser   bool
	}{
		{
			name: "Valid Key",
			setupRequest: func(r *http.Request) {
				r.Header.Set(SecretKeyHeader, validKey)
			},
			expectedStatus: http.StatusOK,
			expectedUser:   true,
		},
		{
			name:           "No Key",
			setupRequest:   func(r *http.Request) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "authentication_required",
		},
		{
			name: "Blank Key",
			setupRequest: func(r *http.Request) {
				r.Header.Set(SecretKeyHeader, "   ")
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "authentication_required",
		},
		{
			name: "Unknown Key",
			setupRequest: func(r *http.Request) {
				r.Header.Set(SecretKeyHeader, "sk_nope")
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "authentication_failed",
		},
		{
			name: "Resolver Failure",
			setupRequest: func(r *http.Request) {
				r.Header.Set(SecretKeyHeader, "sk_broken")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, ok := UserID(r.Context())
				if !ok && tt.expectedUser {
					t.Error("Expected user ID in context, got none")
				}
				if ok && !tt.expectedUser {
					t.Error("Unexpected user ID in context")
				}
				if ok && userID != 1 {
					t.Errorf("Expected user ID 1, got %d", userID)
				}
				if name, _ := r.Context().Value(UsernameKey).(string); ok && name != "alice" {
					t.Errorf("Expected username alice, got %q", name)
				}
				w.WriteHeader(http.StatusOK)
			})

			handler := Auth(authenticator)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
			tt.setupRequest(req)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, tt.expectedStatus)
			}
			if tt.expectedCode != "" {
				var body struct {
					Error string `json:"error"`
				}
				if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}
				if body.Error != tt.expectedCode {
					t.Errorf("error code = %q, want %q", body.Error, tt.expectedCode)
				}
			}
		})
	}
}
