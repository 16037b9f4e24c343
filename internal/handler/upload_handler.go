package handler

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"path"

	"github.com/folio/backend/internal/storage"
)

const maxImageSize = 5 << 20 // 5 MB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// UploadHandler stores project images under uploads/projects with random names.
type UploadHandler struct {
	storage storage.Storage
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{storage: store}
}

// ProjectImage handles POST /api/upload/project-image (admin, multipart).
// Accepts a single "image" part, jpeg/png/webp/gif, max 5 MB, and returns the
// public URL to store on the project.
func (h *UploadHandler) ProjectImage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_too_large"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "image_required"})
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "file_too_large"})
		return
	}

	ct := header.Header.Get("Content-Type")
	ext, ok := allowedImageTypes[ct]
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_content_type"})
		return
	}

	b := make([]byte, 16)
	_, _ = rand.Read(b)
	key := path.Join("projects", hex.EncodeToString(b)+ext)

	url, err := h.storage.Save(r.Context(), key, file, ct)
	if err != nil {
		slog.Error("project image upload failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "upload_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{"url": url})
}
