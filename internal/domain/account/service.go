package account

import (
	"context"
	"errors"
)

// Service contains the business logic for account operations
type Service struct {
	repo Repository
}

// NewService creates a new account service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateAccount provisions an account after validating its parameters
func (s *Service) CreateAccount(ctx context.Context, params CreateParams) (*Account, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

// RequireExists returns the account or ErrAccountNotFound.
func (s *Service) RequireExists(ctx context.Context, accountID int64) (*Account, error) {
	if accountID <= 0 {
		return nil, ErrAccountNotFound
	}
	return s.repo.GetByID(ctx, accountID)
}

// RequireOwned returns the account if it exists and belongs to userID.
func (s *Service) RequireOwned(ctx context.Context, accountID, userID int64) (*Account, error) {
	acc, err := s.RequireExists(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc.UserID != userID {
		return nil, ErrForbidden
	}
	return acc, nil
}

// GetBalance retrieves an account's balance after verifying ownership
func (s *Service) GetBalance(ctx context.Context, accountID, userID int64) (*Account, error) {
	return s.RequireOwned(ctx, accountID, userID)
}

// GetByAccountNumber looks an account up by its external number
func (s *Service) GetByAccountNumber(ctx context.Context, number string) (*Account, error) {
	if number == "" {
		return nil, ErrAccountNotFound
	}
	return s.repo.GetByAccountNumber(ctx, number)
}

// ListAccounts retrieves all accounts for a specific user
func (s *Service) ListAccounts(ctx context.Context, userID int64) ([]*Account, error) {
	if userID <= 0 {
		return nil, errors.New("valid user ID is required")
	}
	return s.repo.ListByUserID(ctx, userID)
}
