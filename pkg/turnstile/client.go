// Package turnstile provides a Cloudflare Turnstile verification client.
// Uses raw HTTP calls (no SDK) to minimize external dependencies.
package turnstile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// VerifyURL is the Cloudflare siteverify endpoint.
const VerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Result is the outcome of a token verification.
type Result struct {
	Success      bool
	IsConfigured bool
	ErrorMessage string
}

// Verifier checks challenge tokens submitted with public forms.
type Verifier interface {
	// Verify posts the token to the verification endpoint. An empty secret
	// yields IsConfigured=false; network failures and non-2xx responses count
	// as verification failure, not as unconfigured.
	Verify(ctx context.Context, token, remoteIP string) Result
}

// Client is the production Verifier against the Cloudflare API.
type Client struct {
	secret    string
	verifyURL string
	http      *http.Client
}

// NewClient creates a Client. An empty secret disables verification.
func NewClient(secret string) *Client {
	return &Client{
		secret:    secret,
		verifyURL: VerifyURL,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

var _ Verifier = (*Client)(nil)

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func (c *Client) Verify(ctx context.Context, token, remoteIP string) Result {
	if c.secret == "" {
		return Result{IsConfigured: false}
	}

	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return Result{IsConfigured: true, ErrorMessage: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{IsConfigured: true, ErrorMessage: fmt.Sprintf("verification request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{IsConfigured: true, ErrorMessage: fmt.Sprintf("verification endpoint returned %d", resp.StatusCode)}
	}

	var vr verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return Result{IsConfigured: true, ErrorMessage: fmt.Sprintf("decode verification response: %v", err)}
	}
	if !vr.Success {
		return Result{IsConfigured: true, ErrorMessage: strings.Join(vr.ErrorCodes, ", ")}
	}
	return Result{Success: true, IsConfigured: true}
}
