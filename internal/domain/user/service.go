package user

import (
	"context"
	"fmt"

	"ledger/internal/shared/auth"
)

// Service resolves secret keys to users and provisions new users.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Resolve maps a presented secret key to its owner. Any mismatch, including a
// malformed key, yields ErrAuthenticationFailed.
func (s *Service) Resolve(ctx context.Context, secretKey string) (*User, error) {
	lookupID, secret, err := auth.ParseSecretKey(secretKey)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	candidates, err := s.repo.ListBySecretKeyPrefix(ctx, lookupID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up secret key: %w", err)
	}

	for _, u := range candidates {
		if auth.VerifySecret(u.SecretKeyHash, secret) == nil {
			return u, nil
		}
	}
	return nil, ErrAuthenticationFailed
}

// CreateUser provisions a user and returns it with its plaintext secret key.
// The key is not recoverable afterwards.
func (s *Service) CreateUser(ctx context.Context, username string) (*User, string, error) {
	key, err := auth.GenerateSecretKey()
	if err != nil {
		return nil, "", err
	}

	params := CreateUserParams{
		Username:        username,
		SecretKeyPrefix: key.LookupID,
		SecretKeyHash:   key.Hash,
	}
	if err := params.Validate(); err != nil {
		return nil, "", err
	}

	u, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, "", err
	}
	return u, key.Plain, nil
}

// GetUser returns the user with the given ID.
func (s *Service) GetUser(ctx context.Context, id int64) (*User, error) {
	if id <= 0 {
		return nil, ErrUserNotFound
	}
	return s.repo.GetByID(ctx, id)
}
