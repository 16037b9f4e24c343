package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCredentials_PlaintextPassword(t *testing.T) {
	creds := Credentials{Username: "admin", Password: "hunter2"}

	if !creds.Check("admin", "hunter2") {
		t.Error("expected matching credentials to pass")
	}
	if creds.Check("admin", "wrong") {
		t.Error("expected wrong password to fail")
	}
	if creds.Check("other", "hunter2") {
		t.Error("expected wrong username to fail")
	}
}

func TestCredentials_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	creds := Credentials{Username: "admin", PasswordHash: string(hash)}

	if !creds.Check("admin", "hunter2") {
		t.Error("expected bcrypt credentials to pass")
	}
	if creds.Check("admin", "wrong") {
		t.Error("expected wrong password against hash to fail")
	}
}

func TestCredentials_HashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("real"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	creds := Credentials{Username: "admin", Password: "plaintext", PasswordHash: string(hash)}

	if !creds.Check("admin", "real") {
		t.Error("expected hash to win over plaintext")
	}
	if creds.Check("admin", "plaintext") {
		t.Error("plaintext password must be ignored when a hash is configured")
	}
}

func TestCredentials_EmptyConfigurationRejectsAll(t *testing.T) {
	var creds Credentials
	if creds.Check("", "") {
		t.Error("unconfigured credentials must never pass")
	}
	if creds.Check("admin", "admin") {
		t.Error("unconfigured credentials must never pass")
	}
}
