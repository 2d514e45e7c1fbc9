package hash

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLen = 6

// ErrWeakPassword enumerates every required character class so the caller
// can surface it verbatim on a password change.
var ErrWeakPassword = errors.New(
	"password must be at least 6 characters and contain an uppercase letter, a lowercase letter, a digit and a symbol",
)

func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// CheckPassword reports whether password matches hash. It never exposes why
// a comparison failed.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the composition policy for new passwords only;
// existing hashes are verified regardless of current policy.
func ValidatePassword(candidate string) error {
	var upper, lower, digit, symbol bool
	for _, r := range candidate {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if len(candidate) < MinPasswordLen || !upper || !lower || !digit || !symbol {
		return ErrWeakPassword
	}
	return nil
}
