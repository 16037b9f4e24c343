package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/realtime"
	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/internal/service"
)

// ExperienceHandler handles public listing and admin CRUD for work history.
type ExperienceHandler struct {
	svc      service.WorkExperienceService
	notifier realtime.Notifier
}

// NewExperienceHandler creates an ExperienceHandler.
func NewExperienceHandler(svc service.WorkExperienceService, notifier realtime.Notifier) *ExperienceHandler {
	return &ExperienceHandler{svc: svc, notifier: notifier}
}

// List handles GET /api/experience (public).
func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	entries, err := h.svc.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if entries == nil {
		entries = []*model.WorkExperience{}
	}
	_ = json.NewEncoder(w).Encode(entries)
}

// Get handles GET /api/experience/{id} (public).
func (h *ExperienceHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "get_failed"})
		return
	}
	_ = json.NewEncoder(w).Encode(entry)
}

// Create handles POST /api/experience (admin).
func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var entry model.WorkExperience
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if entry.Company == "" || entry.TitleEn == "" || entry.TitleFr == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "company_and_title_required"})
		return
	}
	if entry.StartDate.IsZero() {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "start_date_required"})
		return
	}

	if err := h.svc.Create(r.Context(), &entry); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
		return
	}

	h.notifier.EntityChanged("experience", "created", entry)
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(entry)
}

// Update handles PUT /api/experience/{id} (admin).
func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	var patch model.WorkExperiencePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	entry, err := h.svc.Update(r.Context(), id, patch)
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

	h.notifier.EntityChanged("experience", "updated", entry)
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/experience/{id} (admin).
func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	h.notifier.EntityChanged("experience", "deleted", map[string]int{"id": id})
	w.WriteHeader(http.StatusNoContent)
}
