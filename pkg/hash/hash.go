package hash

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrCorruptHash marks a stored hash that bcrypt cannot parse at all.
// That is a data integrity problem, not a wrong password.
var ErrCorruptHash = errors.New("stored password hash is malformed")

func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashBytes), nil
}

// CheckPassword reports whether password matches hash. The returned error
// is non-nil only when the stored hash itself is unreadable.
func CheckPassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrCorruptHash
}
