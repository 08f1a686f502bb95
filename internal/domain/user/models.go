package user

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidUsername      = errors.New("username must be 3 to 50 characters of letters, digits, '.', '_' or '-'")
	ErrDuplicateUsername    = errors.New("username already exists")
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{3,50}$`)

type User struct {
	ID              int64     `json:"id"`
	Username        string    `json:"username"`
	SecretKeyPrefix string    `json:"-"`
	SecretKeyHash   string    `json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CreateUserParams struct {
	Username        string
	SecretKeyPrefix string
	SecretKeyHash   string
}

func (p CreateUserParams) Validate() error {
	if !usernamePattern.MatchString(p.Username) {
		return ErrInvalidUsername
	}
	if p.SecretKeyPrefix == "" || p.SecretKeyHash == "" {
		return errors.New("secret key is required")
	}
	return nil
}
