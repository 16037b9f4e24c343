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

// HobbyHandler handles public listing and admin CRUD for hobbies.
type HobbyHandler struct {
	svc      service.HobbyService
	notifier realtime.Notifier
}

// NewHobbyHandler creates a HobbyHandler.
func NewHobbyHandler(svc service.HobbyService, notifier realtime.Notifier) *HobbyHandler {
	return &HobbyHandler{svc: svc, notifier: notifier}
}

// List handles GET /api/hobbies (public).
func (h *HobbyHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	hobbies, err := h.svc.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if hobbies == nil {
		hobbies = []*model.Hobby{}
	}
	_ = json.NewEncoder(w).Encode(hobbies)
}

// Get handles GET /api/hobbies/{id} (public).
func (h *HobbyHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	hobby, err := h.svc.Get(r.Context(), id)
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
	_ = json.NewEncoder(w).Encode(hobby)
}

// Create handles POST /api/hobbies (admin).
func (h *HobbyHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var hobby model.Hobby
	if err := json.NewDecoder(r.Body).Decode(&hobby); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if hobby.NameEn == "" || hobby.NameFr == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "name_required"})
		return
	}

	if err := h.svc.Create(r.Context(), &hobby); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
		return
	}

	h.notifier.EntityChanged("hobby", "created", hobby)
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(hobby)
}

// Update handles PUT /api/hobbies/{id} (admin).
func (h *HobbyHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	var patch model.HobbyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	hobby, err := h.svc.Update(r.Context(), id, patch)
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

	h.notifier.EntityChanged("hobby", "updated", hobby)
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/hobbies/{id} (admin).
func (h *HobbyHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	h.notifier.EntityChanged("hobby", "deleted", map[string]int{"id": id})
	w.WriteHeader(http.StatusNoContent)
}
