package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	secretKeyPrefix = "sk_"
	lookupIDBytes   = 6
	secretBytes     = 24
)

// ErrMalformedSecretKey is returned when a key does not have the
// sk_<lookup id>_<secret> shape.
var ErrMalformedSecretKey = errors.New("malformed secret key")

// SecretKey is a freshly issued credential. Plain is shown to the user once;
// only LookupID and Hash are persisted.
type SecretKey struct {
	Plain    string
	LookupID string
	Hash     string
}

// GenerateSecretKey creates a random key of the form sk_<12 hex>_<48 hex>.
func GenerateSecretKey() (*SecretKey, error) {
	lookup := make([]byte, lookupIDBytes)
	if _, err := rand.Read(lookup); err != nil {
		return nil, fmt.Errorf("failed to generate lookup id: %w", err)
	}
	secret := make([]byte, secretBytes)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}

	lookupID := hex.EncodeToString(lookup)
	secretHex := hex.EncodeToString(secret)

	hash, err := HashSecret(secretHex)
	if err != nil {
		return nil, err
	}

	return &SecretKey{
		Plain:    secretKeyPrefix + lookupID + "_" + secretHex,
		LookupID: lookupID,
		Hash:     hash,
	}, nil
}

// ParseSecretKey splits a presented key into its lookup id and secret part.
func ParseSecretKey(key string) (lookupID, secret string, err error) {
	rest, ok := strings.CutPrefix(key, secretKeyPrefix)
	if !ok {
		return "", "", ErrMalformedSecretKey
	}
	lookupID, secret, ok = strings.Cut(rest, "_")
	if !ok || len(lookupID) != lookupIDBytes*2 || len(secret) != secretBytes*2 {
		return "", "", ErrMalformedSecretKey
	}
	return lookupID, secret, nil
}

// HashSecret hashes the secret part of a key using bcrypt
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifySecret checks if the secret part of a key matches the stored hash
func VerifySecret(hash, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
}
