package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/profanity"
	"github.com/folio/backend/internal/ratelimit"
	"github.com/folio/backend/internal/realtime"
	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/internal/service"
)

const (
	maxTestimonialLength  = 500
	testimonialRateWindow = 24 * time.Hour
	testimonialRateMax    = 3
)

// TestimonialHandler handles public testimonial submission and admin moderation.
type TestimonialHandler struct {
	svc      service.TestimonialService
	notifier realtime.Notifier
	limiter  *ratelimit.Limiter
	filter   *profanity.Filter
}

// NewTestimonialHandler creates a TestimonialHandler.
func NewTestimonialHandler(svc service.TestimonialService, notifier realtime.Notifier,
	limiter *ratelimit.Limiter, filter *profanity.Filter) *TestimonialHandler {
	return &TestimonialHandler{svc: svc, notifier: notifier, limiter: limiter, filter: filter}
}

// List handles GET /api/testimonials (public, published only, newest first).
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	testimonials, err := h.svc.ListPublished(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if testimonials == nil {
		testimonials = []*model.Testimonial{}
	}
	_ = json.NewEncoder(w).Encode(testimonials)
}

// AdminList handles GET /api/testimonials/admin/all (admin, includes unpublished).
func (h *TestimonialHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	testimonials, err := h.svc.ListAll(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if testimonials == nil {
		testimonials = []*model.Testimonial{}
	}
	_ = json.NewEncoder(w).Encode(testimonials)
}

// submitTestimonialRequest is the expected JSON body for POST /api/testimonials.
type submitTestimonialRequest struct {
	AuthorName string `json:"author_name"`
	AuthorRole string `json:"author_role"`
	Message    string `json:"message"`
	Rating     int    `json:"rating"`
}

// Submit handles POST /api/testimonials (public, rate-limited, profanity-checked).
// New testimonials always start unpublished.
func (h *TestimonialHandler) Submit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req submitTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if req.AuthorName == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "author_name_required"})
		return
	}
	if req.Message == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "message_required"})
		return
	}
	if len([]rune(req.Message)) > maxTestimonialLength {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "message_too_long"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_rating"})
		return
	}

	rl := h.limiter.Check("testimonial", clientIP(r), testimonialRateWindow, testimonialRateMax)
	if !rl.Allowed {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":       "rate_limit_exceeded",
			"retry_after": int(rl.RetryAfter.Seconds()) + 1,
		})
		return
	}

	if res := h.filter.Check(req.AuthorName + " " + req.Message); res.HasProfanity {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": "profanity_detected",
			"words": res.Words,
		})
		return
	}

	t := &model.Testimonial{
		AuthorName: req.AuthorName,
		AuthorRole: req.AuthorRole,
		Message:    req.Message,
		Rating:     req.Rating,
	}
	if err := h.svc.Submit(r.Context(), t); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed"})
		return
	}

	h.notifier.EntityChanged("testimonial", "created", t)
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

// Publish handles PUT /api/testimonials/{id}/publish (admin).
func (h *TestimonialHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, true)
}

// Unpublish handles PUT /api/testimonials/{id}/unpublish (admin).
func (h *TestimonialHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	h.setPublished(w, r, false)
}

func (h *TestimonialHandler) setPublished(w http.ResponseWriter, r *http.Request, published bool) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	err := h.svc.SetPublished(r.Context(), id, published)
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

	h.notifier.EntityChanged("testimonial", "updated", map[string]any{"id": id, "is_published": published})
	_ = json.NewEncoder(w).Encode(map[string]any{"id": id, "is_published": published})
}

// Delete handles DELETE /api/testimonials/{id} (admin).
func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	h.notifier.EntityChanged("testimonial", "deleted", map[string]int{"id": id})
	w.WriteHeader(http.StatusNoContent)
}
