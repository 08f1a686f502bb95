package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ledger/internal/domain/user"
)

// MockUserRepo implements user.Repository for testing
type MockUserRepo struct {
	CreateFunc                func(ctx context.Context, params user.CreateUserParams) (*user.User, error)
	GetByIDFunc               func(ctx context.Context, id int64) (*user.User, error)
	ListBySecretKeyPrefixFunc func(ctx context.Context, prefix string) ([]*user.User, error)
}

func (m *MockUserRepo) Create(ctx context.Context, params user.CreateUserParams) (*user.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, user.ErrUserNotFound
}

func (m *MockUserRepo) ListBySecretKeyPrefix(ctx context.Context, prefix string) ([]*user.User, error) {
	if m.ListBySecretKeyPrefixFunc != nil {
		return m.ListBySecretKeyPrefixFunc(ctx, prefix)
	}
	return nil, nil
}

func TestHandleMe(t *testing.T) {
	tests := []struct {
		name           string
		userID         int64
		mockRepo       func() *MockUserRepo
		expectedStatus int
	}{
		{
			name:   "Success",
			userID: 1,
			mockRepo: func() *MockUserRepo {
				return &MockUserRepo{
					GetByIDFunc: func(ctx context.Context, id int64) (*user.User, error) {
						return &user.User{ID: id, Username: "alice", SecretKeyHash: "$2a$10$secret"}, nil
					},
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "User Not Found",
			userID:         999,
			mockRepo:       func() *MockUserRepo { return &MockUserRepo{} },
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewUserHandler(user.NewService(tt.mockRepo()))

			req := withUser(httptest.NewRequest(http.MethodGet, "/api/users/me", nil), tt.userID)
			rr := httptest.NewRecorder()
			handler.HandleMe(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, tt.expectedStatus)
			}

			if tt.expectedStatus == http.StatusOK {
				var raw map[string]any
				if err := json.NewDecoder(rr.Body).Decode(&raw); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if raw["username"] != "alice" {
					t.Errorf("username = %v, want alice", raw["username"])
				}
				for _, secret := range []string{"secret_key_hash", "SecretKeyHash", "secret_key_prefix"} {
					if _, ok := raw[secret]; ok {
						t.Errorf("response leaks %s", secret)
					}
				}
			}
		})
	}
}
