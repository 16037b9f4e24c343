package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type captureStorage struct {
	keys []string
}

func (c *captureStorage) Save(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	c.keys = append(c.keys, key)
	return "/uploads/" + key, nil
}

func (c *captureStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

func (c *captureStorage) Delete(_ context.Context, key string) error { return nil }

func TestUploadHandler_ProjectImage_Success(t *testing.T) {
	store := &captureStorage{}
	h := NewUploadHandler(store)

	body, ct := multipartUpload(t, "image", "shot.png", "image/png", "pngdata", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload/project-image", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.ProjectImage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(store.keys) != 1 {
		t.Fatalf("expected one stored file, got %v", store.keys)
	}
	if !strings.HasPrefix(store.keys[0], "projects/") || !strings.HasSuffix(store.keys[0], ".png") {
		t.Errorf("unexpected storage key %q", store.keys[0])
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["url"] != "/uploads/"+store.keys[0] {
		t.Errorf("expected URL for stored key, got %q", resp["url"])
	}
}

func TestUploadHandler_ProjectImage_RejectsContentType(t *testing.T) {
	h := NewUploadHandler(&captureStorage{})

	body, ct := multipartUpload(t, "image", "doc.pdf", "application/pdf", "data", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload/project-image", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.ProjectImage(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "invalid_content_type" {
		t.Errorf("expected invalid_content_type, got %s", resp["error"])
	}
}

func TestUploadHandler_ProjectImage_MissingPart(t *testing.T) {
	h := NewUploadHandler(&captureStorage{})

	body, ct := multipartUpload(t, "file", "shot.png", "image/png", "data", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/upload/project-image", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.ProjectImage(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
