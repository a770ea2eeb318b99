// Package password wraps bcrypt hashing for account credentials.
package password

import (
	"campuscoffee/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword    = errs.New("password must not be empty")
	ErrPasswordMismatch = errs.New("password does not match")
)

// HashPassword hashes a raw password at the default bcrypt cost. Length
// limits are enforced at the request boundary, not here.
func HashPassword(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

// ComparePassword checks raw against a stored bcrypt hash. A mismatch is
// ErrPasswordMismatch; any other failure means the stored hash is unusable.
func ComparePassword(hashed, raw string) error {
	if hashed == "" || raw == "" {
		return ErrEmptyPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw)); err != nil {
		if errs.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return errs.Wrap(err, "compare password hash")
	}
	return nil
}
