// Package auth implements the single-admin bearer-token scheme: one
// credential pair from configuration, HS256 JWTs, no refresh or revocation.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a bearer token fails verification.
var ErrInvalidToken = errors.New("invalid token")

// IssueToken signs an admin JWT valid for the given duration.
func IssueToken(secret []byte, duration time.Duration) (token string, expiresAt time.Time, err error) {
	expiresAt = time.Now().Add(duration)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "admin",
		"admin": true,
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	})
	token, err = t.SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// VerifyToken parses and validates an admin JWT. Any failure (bad signature,
// expiry, wrong algorithm, missing admin claim) returns ErrInvalidToken.
func VerifyToken(tokenString string, secret []byte) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidToken
	}
	if admin, _ := claims["admin"].(bool); !admin {
		return ErrInvalidToken
	}
	return nil
}
