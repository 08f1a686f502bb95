package user

import "context"

// Repository defines the interface for user data access
type Repository interface {
	Create(ctx context.Context, params CreateUserParams) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	// ListBySecretKeyPrefix returns every user whose key carries the given lookup id.
	// Normally at most one.
	ListBySecretKeyPrefix(ctx context.Context, prefix string) ([]*User, error)
}
