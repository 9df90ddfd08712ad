// Package auth implements the credential primitives of the gateway: signed
// session tokens (HS256 JWTs) and salted password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/akarpov87/authgate/internal/common"
)

// Claims carries the registered JWT claims; the username travels in Subject.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken mints a signed session token for username, valid for ttl
// from now. The token itself is the whole session state: the server keeps
// no session table.
func GenerateToken(username string, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUsernameFromToken verifies the token's signature and expiry and returns
// the Subject claim. Expired tokens yield common.ErrTokenExpired; any other
// problem (tampered signature, wrong algorithm, malformed input, missing
// subject) yields common.ErrInvalidToken. leeway tolerates clock skew
// between issuer and verifier.
func GetUsernameFromToken(tokenString string, secretKey []byte, leeway time.Duration) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	}, jwt.WithLeeway(leeway))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
