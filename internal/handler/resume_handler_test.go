package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockResumeService
// ---------------------------------------------------------------------------

type mockResumeService struct {
	listFunc   func(ctx context.Context) ([]*model.Resume, error)
	getFunc    func(ctx context.Context, id int) (*model.Resume, error)
	uploadFunc func(ctx context.Context, fileName, language string, size int64, data io.Reader) (*model.Resume, error)
	openFunc   func(ctx context.Context, id int) (*model.Resume, io.ReadCloser, error)
	deleteFunc func(ctx context.Context, id int) error
}

func (m *mockResumeService) List(ctx context.Context) ([]*model.Resume, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockResumeService) Get(ctx context.Context, id int) (*model.Resume, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockResumeService) Upload(ctx context.Context, fileName, language string, size int64, data io.Reader) (*model.Resume, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, fileName, language, size, data)
	}
	return &model.Resume{ID: 1, FileName: fileName, Language: language, FileSize: size}, nil
}

func (m *mockResumeService) Open(ctx context.Context, id int) (*model.Resume, io.ReadCloser, error) {
	if m.openFunc != nil {
		return m.openFunc(ctx, id)
	}
	return nil, nil, repository.ErrNotFound
}

func (m *mockResumeService) Delete(ctx context.Context, id int) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// multipartUpload builds a multipart body with a single file part.
func multipartUpload(t *testing.T, field, filename, contentType, content string, extra map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	_, _ = part.Write([]byte(content))

	for k, v := range extra {
		_ = mw.WriteField(k, v)
	}
	_ = mw.Close()
	return &buf, mw.FormDataContentType()
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestResumeHandler_Upload_Success(t *testing.T) {
	var gotName, gotLang string
	svc := &mockResumeService{
		uploadFunc: func(ctx context.Context, fileName, language string, size int64, data io.Reader) (*model.Resume, error) {
			gotName = fileName
			gotLang = language
			return &model.Resume{ID: 3, FileName: fileName, Language: language, FileSize: size}, nil
		},
	}
	notifier := &mockNotifier{}
	h := NewResumeHandler(svc, notifier)

	body, ct := multipartUpload(t, "file", "cv.pdf", "application/pdf", "%PDF-1.4", map[string]string{"language": "fr"})
	req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotName != "cv.pdf" || gotLang != "fr" {
		t.Errorf("expected (cv.pdf, fr), got (%s, %s)", gotName, gotLang)
	}
	if len(notifier.events) != 1 || notifier.events[0].entity != "resume" {
		t.Errorf("expected resume notification, got %+v", notifier.events)
	}
}

func TestResumeHandler_Upload_RejectsNonPDF(t *testing.T) {
	h := NewResumeHandler(&mockResumeService{}, &mockNotifier{})

	tests := []struct {
		name        string
		filename    string
		contentType string
	}{
		{"wrong content type", "cv.pdf", "image/png"},
		{"wrong extension", "cv.docx", "application/pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ct := multipartUpload(t, "file", tt.filename, tt.contentType, "data", nil)
			req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", body)
			req.Header.Set("Content-Type", ct)
			rec := httptest.NewRecorder()
			h.Upload(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			var resp map[string]string
			_ = json.Unmarshal(rec.Body.Bytes(), &resp)
			if resp["error"] != "pdf_required" {
				t.Errorf("expected pdf_required, got %s", resp["error"])
			}
		})
	}
}

func TestResumeHandler_Upload_MissingFile(t *testing.T) {
	h := NewResumeHandler(&mockResumeService{}, &mockNotifier{})

	body, ct := multipartUpload(t, "wrong_field", "cv.pdf", "application/pdf", "data", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "file_required" {
		t.Errorf("expected file_required, got %s", resp["error"])
	}
}

func TestResumeHandler_Download_StreamsPDF(t *testing.T) {
	svc := &mockResumeService{
		openFunc: func(ctx context.Context, id int) (*model.Resume, io.ReadCloser, error) {
			res := &model.Resume{ID: id, FileName: "cv.pdf", FileSize: 8}
			return res, io.NopCloser(strings.NewReader("%PDF-1.4")), nil
		},
	}
	h := NewResumeHandler(svc, &mockNotifier{})

	req := httptest.NewRequest(http.MethodGet, "/api/resume/download/2", nil)
	req.SetPathValue("id", "2")
	rec := httptest.NewRecorder()
	h.Download(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("expected application/pdf, got %s", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "cv.pdf") {
		t.Errorf("expected filename in disposition, got %s", got)
	}
	if rec.Body.String() != "%PDF-1.4" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestResumeHandler_Download_NotFound(t *testing.T) {
	h := NewResumeHandler(&mockResumeService{}, &mockNotifier{})

	req := httptest.NewRequest(http.MethodGet, "/api/resume/download/99", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	h.Download(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
