package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/realtime"
	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/internal/service"
)

// ContactInfoHandler handles the owner's public contact details.
type ContactInfoHandler struct {
	svc      service.ContactInfoService
	notifier realtime.Notifier
}

// NewContactInfoHandler creates a ContactInfoHandler.
func NewContactInfoHandler(svc service.ContactInfoService, notifier realtime.Notifier) *ContactInfoHandler {
	return &ContactInfoHandler{svc: svc, notifier: notifier}
}

// List handles GET /api/contact-info (public).
func (h *ContactInfoHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	infos, err := h.svc.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if infos == nil {
		infos = []*model.ContactInfo{}
	}
	_ = json.NewEncoder(w).Encode(infos)
}

// Get handles GET /api/contact-info/{id} (public).
func (h *ContactInfoHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	info, err := h.svc.Get(r.Context(), id)
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
	_ = json.NewEncoder(w).Encode(info)
}

// Create handles POST /api/contact-info (admin).
func (h *ContactInfoHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var info model.ContactInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if info.Email == "" || !strings.Contains(info.Email, "@") {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_email"})
		return
	}

	if err := h.svc.Create(r.Context(), &info); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
		return
	}

	h.notifier.EntityChanged("contact-info", "created", info)
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(info)
}

// Update handles PUT /api/contact-info/{id} (admin).
func (h *ContactInfoHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	var patch model.ContactInfoPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if patch.Email != nil && !strings.Contains(*patch.Email, "@") {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_email"})
		return
	}

	info, err := h.svc.Update(r.Context(), id, patch)
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

	h.notifier.EntityChanged("contact-info", "updated", info)
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/contact-info/{id} (admin).
func (h *ContactInfoHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	h.notifier.EntityChanged("contact-info", "deleted", map[string]int{"id": id})
	w.WriteHeader(http.StatusNoContent)
}
