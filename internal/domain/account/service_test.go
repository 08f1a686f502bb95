package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// MockRepository is a mock implementation of Repository interface
type MockRepository struct {
	CreateFunc             func(ctx context.Context, params CreateParams) (*Account, error)
	GetByIDFunc            func(ctx context.Context, id int64) (*Account, error)
	GetByAccountNumberFunc func(ctx context.Context, number string) (*Account, error)
	ListByUserIDFunc       func(ctx context.Context, userID int64) ([]*Account, error)
}

func (m *MockRepository) Create(ctx context.Context, params CreateParams) (*Account, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, ErrAccountNotFound
}

func (m *MockRepository) GetByAccountNumber(ctx context.Context, number string) (*Account, error) {
	if m.GetByAccountNumberFunc != nil {
		return m.GetByAccountNumberFunc(ctx, number)
	}
	return nil, ErrAccountNotFound
}

func (m *MockRepository) ListByUserID(ctx context.Context, userID int64) ([]*Account, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		params  CreateParams
		mock    func() *MockRepository
		wantErr bool
		errType error
	}{
		{
			name: "Success",
			params: CreateParams{
				AccountNumber:  "ACC1000001",
				UserID:         1,
				InitialBalance: decimal.RequireFromString("1000.00"),
			},
			mock: func() *MockRepository {
				return &MockRepository{
					CreateFunc: func(ctx context.Context, params CreateParams) (*Account, error) {
						return &Account{
							ID:            1,
							AccountNumber: params.AccountNumber,
							UserID:        params.UserID,
							Balance:       params.InitialBalance,
							CreatedAt:     time.Now(),
							UpdatedAt:     time.Now(),
						}, nil
					},
				}
			},
		},
		{
			name: "Invalid Account Number",
			params: CreateParams{
				AccountNumber: "12-3",
				UserID:        1,
			},
			mock:    func() *MockRepository { return &MockRepository{} },
			wantErr: true,
			errType: ErrInvalidAccountNumber,
		},
		{
			name: "Negative Opening Balance",
			params: CreateParams{
				AccountNumber:  "ACC1000001",
				UserID:         1,
				InitialBalance: decimal.RequireFromString("-0.01"),
			},
			mock:    func() *MockRepository { return &MockRepository{} },
			wantErr: true,
			errType: ErrNegativeBalance,
		},
		{
			name: "Missing User",
			params: CreateParams{
				AccountNumber: "ACC1000001",
			},
			mock:    func() *MockRepository { return &MockRepository{} },
			wantErr: true,
		},
		{
			name: "Repository Error",
			params: CreateParams{
				AccountNumber: "ACC1000001",
				UserID:        1,
			},
			mock: func() *MockRepository {
				return &MockRepository{
					CreateFunc: func(ctx context.Context, params CreateParams) (*Account, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(tt.mock())

			acc, err := service.CreateAccount(ctx, tt.params)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("CreateAccount() expected error, got nil")
				}
				if tt.errType != nil && !errors.Is(err, tt.errType) {
					t.Errorf("CreateAccount() expected error %v, got %v", tt.errType, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateAccount() unexpected error: %v", err)
			}
			if acc.AccountNumber != tt.params.AccountNumber {
				t.Errorf("CreateAccount() account number = %s, want %s", acc.AccountNumber, tt.params.AccountNumber)
			}
		})
	}
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()

	owned := func() *MockRepository {
		return &MockRepository{
			GetByIDFunc: func(ctx context.Context, id int64) (*Account, error) {
				if id != 1 {
					return nil, ErrAccountNotFound
				}
				return &Account{ID: 1, UserID: 7, Balance: decimal.RequireFromString("1000.00")}, nil
			},
		}
	}

	tests := []struct {
		name      string
		accountID int64
		userID    int64
		wantErr   error
	}{
		{name: "Owner", accountID: 1, userID: 7},
		{name: "Not Found", accountID: 99, userID: 7, wantErr: ErrAccountNotFound},
		{name: "Zero ID", accountID: 0, userID: 7, wantErr: ErrAccountNotFound},
		{name: "Forbidden", accountID: 1, userID: 8, wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(owned())

			acc, err := service.GetBalance(ctx, tt.accountID, tt.userID)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GetBalance() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetBalance() unexpected error: %v", err)
			}
			if !acc.Balance.Equal(decimal.RequireFromString("1000")) {
				t.Errorf("GetBalance() balance = %s, want 1000", acc.Balance)
			}
		})
	}
}

func TestListAccounts_InvalidUser(t *testing.T) {
	service := NewService(&MockRepository{})

	if _, err := service.ListAccounts(context.Background(), 0); err == nil {
		t.Error("ListAccounts() expected error for user 0, got nil")
	}
}

func TestGetByAccountNumber_Empty(t *testing.T) {
	service := NewService(&MockRepository{
		GetByAccountNumberFunc: func(ctx context.Context, number string) (*Account, error) {
			t.Fatal("repository should not be called for an empty number")
			return nil, nil
		},
	})

	_, err := service.GetByAccountNumber(context.Background(), "")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("GetByAccountNumber() error = %v, want %v", err, ErrAccountNotFound)
	}
}
