package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for every stored credential.
const Cost = 10

const (
	MinLength = 8
	MaxLength = 72 // bcrypt input limit in bytes
)

var (
	ErrMismatch = errors.New("password does not match")
	ErrTooShort = errors.New("password must be at least 8 characters")
	ErrTooLong  = errors.New("password exceeds maximum length of 72 bytes")
)

// Hash creates a bcrypt hash of the password.
func Hash(password string) (string, error) {
	if len(password) < MinLength {
		return "", ErrTooShort
	}
	if len(password) > MaxLength {
		return "", ErrTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare checks a plaintext password against a stored hash.
func Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}
