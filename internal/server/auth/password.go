package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is used when the configured cost is out of bcrypt's
// valid range.
const DefaultBcryptCost = bcrypt.DefaultCost

// HashPassword derives a salted bcrypt digest from the plaintext password.
// A fresh random salt is embedded in the output, so hashing the same input
// twice yields two different digests that both verify.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether password matches the stored digest. It
// returns false for a wrong password and for a structurally invalid digest;
// it never panics. The comparison inside bcrypt is constant-time.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
