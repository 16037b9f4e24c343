package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/folio/backend/pkg/auth"
)

// tokenDuration is how long issued admin tokens stay valid. There is no
// refresh: the admin logs in again when the token expires.
const tokenDuration = 24 * time.Hour

// AuthHandler issues admin bearer tokens against the configured credential pair.
type AuthHandler struct {
	creds  auth.Credentials
	secret []byte
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(creds auth.Credentials, secret []byte) *AuthHandler {
	return &AuthHandler{creds: creds, secret: secret}
}

// loginRequest is the expected JSON body for POST /api/auth/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the JSON response for a successful login.
type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if req.Username == "" || req.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "credentials_required"})
		return
	}

	if !h.creds.Check(req.Username, req.Password) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_credentials"})
		return
	}

	token, expiresAt, err := auth.IssueToken(h.secret, tokenDuration)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "token_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(loginResponse{Token: token, ExpiresAt: expiresAt})
}
