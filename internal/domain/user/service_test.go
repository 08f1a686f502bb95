package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ledger/internal/shared/auth"
)

type MockRepository struct {
	CreateFunc                func(ctx context.Context, params CreateUserParams) (*User, error)
	GetByIDFunc               func(ctx context.Context, id int64) (*User, error)
	ListBySecretKeyPrefixFunc func(ctx context.Context, prefix string) ([]*User, error)
}

func (m *MockRepository) Create(ctx context.Context, params CreateUserParams) (*User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *MockRepository) ListBySecretKeyPrefix(ctx context.Context, prefix string) ([]*User, error) {
	if m.ListBySecretKeyPrefixFunc != nil {
		return m.ListBySecretKeyPrefixFunc(ctx, prefix)
	}
	return nil, nil
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	key, err := auth.GenerateSecretKey()
	if err != nil {
		t.Fatalf("GenerateSecretKey() failed: %v", err)
	}
	other, err := auth.GenerateSecretKey()
	if err != nil {
		t.Fatalf("GenerateSecretKey() failed: %v", err)
	}

	alice := &User{ID: 1, Username: "alice", SecretKeyPrefix: key.LookupID, SecretKeyHash: key.Hash}
	repo := &MockRepository{
		ListBySecretKeyPrefixFunc: func(ctx context.Context, prefix string) ([]*User, error) {
			if prefix == key.LookupID {
				return []*User{alice}, nil
			}
			return nil, nil
		},
	}

	tests := []struct {
		name    string
		secret  string
		wantID  int64
		wantErr error
	}{
		{name: "Valid Key", secret: key.Plain, wantID: 1},
		{name: "Unknown Key", secret: other.Plain, wantErr: ErrAuthenticationFailed},
		{name: "Malformed Key", secret: "not-a-key", wantErr: ErrAuthenticationFailed},
		{
			name:    "Right Lookup Wrong Secret",
			secret:  "sk_" + key.LookupID + "_" + strings.Repeat("0", 48),
			wantErr: ErrAuthenticationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewService(repo).Resolve(ctx, tt.secret)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				if u != nil {
					t.Errorf("Resolve() returned user %d on failure", u.ID)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if u.ID != tt.wantID {
				t.Errorf("Resolve() user = %d, want %d", u.ID, tt.wantID)
			}
		})
	}
}

func TestResolve_RepositoryError(t *testing.T) {
	key, _ := auth.GenerateSecretKey()
	dbErr := errors.New("connection refused")
	repo := &MockRepository{
		ListBySecretKeyPrefixFunc: func(ctx context.Context, prefix string) ([]*User, error) {
			return nil, dbErr
		},
	}

	_, err := NewService(repo).Resolve(context.Background(), key.Plain)
	if !errors.Is(err, dbErr) {
		t.Errorf("Resolve() error = %v, want wrapped %v", err, dbErr)
	}
	if errors.Is(err, ErrAuthenticationFailed) {
		t.Error("Resolve() reported an infrastructure error as an authentication failure")
	}
}

func TestCreateUser(t *testing.T) {
	var stored CreateUserParams
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, params CreateUserParams) (*User, error) {
			stored = params
			return &User{ID: 5, Username: params.Username, SecretKeyPrefix: params.SecretKeyPrefix, SecretKeyHash: params.SecretKeyHash}, nil
		},
	}
	service := NewService(repo)

	u, plain, err := service.CreateUser(context.Background(), "bob")
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	if u.Username != "bob" {
		t.Errorf("Username = %q, want bob", u.Username)
	}
	if stored.SecretKeyHash == "" || strings.Contains(stored.SecretKeyHash, plain) {
		t.Error("CreateUser() must persist a hash, not the plaintext key")
	}

	lookupID, secret, err := auth.ParseSecretKey(plain)
	if err != nil {
		t.Fatalf("returned key is malformed: %v", err)
	}
	if lookupID != stored.SecretKeyPrefix {
		t.Errorf("stored prefix = %q, want %q", stored.SecretKeyPrefix, lookupID)
	}
	if err := auth.VerifySecret(stored.SecretKeyHash, secret); err != nil {
		t.Errorf("stored hash does not verify returned key: %v", err)
	}
}

func TestCreateUser_InvalidUsername(t *testing.T) {
	service := NewService(&MockRepository{
		CreateFunc: func(ctx context.Context, params CreateUserParams) (*User, error) {
			t.Fatal("repository should not be called for an invalid username")
			return nil, nil
		},
	})

	_, _, err := service.CreateUser(context.Background(), "a b")
	if !errors.Is(err, ErrInvalidUsername) {
		t.Errorf("CreateUser() error = %v, want %v", err, ErrInvalidUsername)
	}
}

func TestGetUser(t *testing.T) {
	repo := &MockRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*User, error) {
			if id == 3 {
				return &User{ID: 3, Username: "carol"}, nil
			}
			return nil, ErrUserNotFound
		},
	}
	service := NewService(repo)

	u, err := service.GetUser(context.Background(), 3)
	if err != nil || u.Username != "carol" {
		t.Errorf("GetUser(3) = %v, %v", u, err)
	}
	for _, id := range []int64{0, -1, 99} {
		if _, err := service.GetUser(context.Background(), id); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("GetUser(%d) error = %v, want %v", id, err, ErrUserNotFound)
		}
	}
}
