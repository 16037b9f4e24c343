package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Credentials holds the configured admin identity. PasswordHash, when set,
// takes precedence over the plaintext Password.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string // bcrypt hash
}

// Check compares a submitted credential pair against the configured admin
// identity in constant time.
func (c Credentials) Check(username, password string) bool {
	if c.Username == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1

	var passOK bool
	switch {
	case c.PasswordHash != "":
		passOK = bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	case c.Password != "":
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	}

	return userOK && passOK
}
