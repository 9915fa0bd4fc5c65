// Package auth provides the credential primitives of the server: password
// hashing and verification, and issuing/verifying signed session tokens.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wallboard/internal/common"
)

// Claims is the session claim set. The username travels in the registered
// Subject claim; nothing custom is added.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256-signed token with subject=username and an
// absolute expiry validityDuration from now.
func GenerateToken(username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSubjectFromToken verifies signature and expiry and returns the subject
// claim. Expired tokens yield common.ErrTokenExpired; any other defect
// (bad signature, malformed token, missing subject) yields
// common.ErrTokenInvalid. The caller must still resolve the subject against
// the user store.
func GetSubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrTokenInvalid
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrTokenInvalid
	}

	return claims.Subject, nil
}
