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

// EducationHandler handles public listing and admin CRUD for education entries.
type EducationHandler struct {
	svc      service.EducationService
	notifier realtime.Notifier
}

// NewEducationHandler creates an EducationHandler.
func NewEducationHandler(svc service.EducationService, notifier realtime.Notifier) *EducationHandler {
	return &EducationHandler{svc: svc, notifier: notifier}
}

// List handles GET /api/education (public).
func (h *EducationHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	entries, err := h.svc.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if entries == nil {
		entries = []*model.Education{}
	}
	_ = json.NewEncoder(w).Encode(entries)
}

// Get handles GET /api/education/{id} (public).
func (h *EducationHandler) Get(w http.ResponseWriter, r *http.Request) {
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

// Create handles POST /api/education (admin).
func (h *EducationHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var entry model.Education
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if entry.Institution == "" || entry.DegreeEn == "" || entry.DegreeFr == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "institution_and_degree_required"})
		return
	}

	if err := h.svc.Create(r.Context(), &entry); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
		return
	}

	h.notifier.EntityChanged("education", "created", entry)
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(entry)
}

// Update handles PUT /api/education/{id} (admin).
func (h *EducationHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	var patch model.EducationPatch
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

	h.notifier.EntityChanged("education", "updated", entry)
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/education/{id} (admin).
func (h *EducationHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	h.notifier.EntityChanged("education", "deleted", map[string]int{"id": id})
	w.WriteHeader(http.StatusNoContent)
}
