package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/profanity"
	"github.com/folio/backend/internal/ratelimit"
	"github.com/folio/backend/internal/realtime"
	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/internal/service"
	"github.com/folio/backend/pkg/turnstile"
)

const (
	maxContactMessageLength = 500
	contactRateWindow       = time.Hour
	contactRateMax          = 5
)

// ContactHandler handles contact form submission and admin message moderation.
type ContactHandler struct {
	svc      service.ContactService
	notifier realtime.Notifier
	limiter  *ratelimit.Limiter
	filter   *profanity.Filter
	verifier turnstile.Verifier
	env      string // "development" relaxes the bot-verification gate
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc service.ContactService, notifier realtime.Notifier,
	limiter *ratelimit.Limiter, filter *profanity.Filter, verifier turnstile.Verifier, env string) *ContactHandler {
	return &ContactHandler{
		svc:      svc,
		notifier: notifier,
		limiter:  limiter,
		filter:   filter,
		verifier: verifier,
		env:      env,
	}
}

// sendRequest is the expected JSON body for POST /api/contact/send.
type sendRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Message        string `json:"message"`
	TurnstileToken string `json:"turnstile_token"`
}

// Send handles POST /api/contact/send. name, email and message are required;
// message max 500 chars. The submission is profanity-checked, bot-verified and
// rate-limited to 5 per hour per IP before the message is stored and the owner
// notified by email.
func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if req.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "name_required"})
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_email"})
		return
	}
	if req.Message == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "message_required"})
		return
	}
	if len([]rune(req.Message)) > maxContactMessageLength {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "message_too_long"})
		return
	}

	ip := clientIP(r)

	rl := h.limiter.Check("contact", ip, contactRateWindow, contactRateMax)
	if !rl.Allowed {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":       "rate_limit_exceeded",
			"retry_after": int(rl.RetryAfter.Seconds()) + 1,
		})
		return
	}

	if res := h.filter.Check(req.Name + " " + req.Message); res.HasProfanity {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": "profanity_detected",
			"words": res.Words,
		})
		return
	}

	// Bot-verification gate: unconfigured passes only in development,
	// otherwise fail closed.
	vr := h.verifier.Verify(r.Context(), req.TurnstileToken, ip)
	if !vr.IsConfigured {
		if h.env != "development" {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "verification_unavailable"})
			return
		}
	} else if !vr.Success {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "verification_failed"})
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	err := h.svc.Submit(r.Context(), msg)
	if errors.Is(err, service.ErrMailFailed) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "email_failed"})
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed"})
		return
	}

	h.notifier.EntityChanged("contact-message", "created", map[string]int{"id": msg.ID})
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "sent"})
}

// Messages handles GET /api/contact/messages (admin, newest first).
func (h *ContactHandler) Messages(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	messages, err := h.svc.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	_ = json.NewEncoder(w).Encode(messages)
}

// MarkRead handles PUT /api/contact/messages/{id}/mark-read (admin).
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	err := h.svc.MarkRead(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}

	h.notifier.EntityChanged("contact-message", "updated", map[string]any{"id": id, "is_read": true})
	_ = json.NewEncoder(w).Encode(map[string]any{"id": id, "is_read": true})
}

// DeleteMessage handles DELETE /api/contact/messages/{id} (admin).
func (h *ContactHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	err := h.svc.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "delete_failed"})
		return
	}

	h.notifier.EntityChanged("contact-message", "deleted", map[string]int{"id": id})
	w.WriteHeader(http.StatusNoContent)
}
