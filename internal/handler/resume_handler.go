package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/realtime"
	"github.com/folio/backend/internal/repository"
	"github.com/folio/backend/internal/service"
)

const maxResumeSize = 5 << 20 // 5 MB

// ResumeHandler handles resume PDF upload, listing, download and deletion.
type ResumeHandler struct {
	svc      service.ResumeService
	notifier realtime.Notifier
}

// NewResumeHandler creates a ResumeHandler.
func NewResumeHandler(svc service.ResumeService, notifier realtime.Notifier) *ResumeHandler {
	return &ResumeHandler{svc: svc, notifier: notifier}
}

// List handles GET /api/resume (public, newest first).
func (h *ResumeHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resumes, err := h.svc.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}
	if resumes == nil {
		resumes = []*model.Resume{}
	}
	_ = json.NewEncoder(w).Encode(resumes)
}

// Upload handles POST /api/resume/upload (admin, multipart). Accepts a single
// "file" part, PDF only, max 5 MB, with an optional "language" form value
// ("en" or "fr", default "en").
func (h *ResumeHandler) Upload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_too_large"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_required"})
		return
	}
	defer file.Close()

	if header.Size > maxResumeSize {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_too_large"})
		return
	}

	ct := header.Header.Get("Content-Type")
	if ct != "application/pdf" || !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "pdf_required"})
		return
	}

	language := r.FormValue("language")
	if language != "fr" {
		language = "en"
	}

	res, err := h.svc.Upload(r.Context(), header.Filename, language, header.Size, file)
	if err != nil {
		slog.Error("resume upload failed", "error", err, "file", header.Filename)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "upload_failed"})
		return
	}

	h.notifier.EntityChanged("resume", "created", res)
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(res)
}

// Download handles GET /api/resume/download/{id} (public). Streams the stored
// PDF bytes with a fixed Content-Type.
func (h *ResumeHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_id"})
		return
	}

	res, rc, err := h.svc.Open(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
		return
	}
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "download_failed"})
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+res.FileName+`"`)
	w.Header().Set("Content-Length", strconv.FormatInt(res.FileSize, 10))
	if _, err := io.Copy(w, rc); err != nil {
		slog.Warn("resume download interrupted", "resume_id", id, "error", err)
	}
}

// Delete handles DELETE /api/resume/{id} (admin). The stored file is removed
// best-effort after the row.
func (h *ResumeHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	h.notifier.EntityChanged("resume", "deleted", map[string]int{"id": id})
	w.WriteHeader(http.StatusNoContent)
}
