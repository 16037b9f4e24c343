package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/profanity"
	"github.com/folio/backend/internal/ratelimit"
	"github.com/folio/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockTestimonialService
// ---------------------------------------------------------------------------

type mockTestimonialService struct {
	listPublishedFunc func(ctx context.Context) ([]*model.Testimonial, error)
	listAllFunc       func(ctx context.Context) ([]*model.Testimonial, error)
	getFunc           func(ctx context.Context, id int) (*model.Testimonial, error)
	submitFunc        func(ctx context.Context, t *model.Testimonial) error
	setPublishedFunc  func(ctx context.Context, id int, published bool) error
	deleteFunc        func(ctx context.Context, id int) error
}

func (m *mockTestimonialService) ListPublished(ctx context.Context) ([]*model.Testimonial, error) {
	if m.listPublishedFunc != nil {
		return m.listPublishedFunc(ctx)
	}
	return nil, nil
}

func (m *mockTestimonialService) ListAll(ctx context.Context) ([]*model.Testimonial, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTestimonialService) Get(ctx context.Context, id int) (*model.Testimonial, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockTestimonialService) Submit(ctx context.Context, t *model.Testimonial) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, t)
	}
	return nil
}

func (m *mockTestimonialService) SetPublished(ctx context.Context, id int, published bool) error {
	if m.setPublishedFunc != nil {
		return m.setPublishedFunc(ctx, id, published)
	}
	return nil
}

func (m *mockTestimonialService) Delete(ctx context.Context, id int) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func newTestimonialHandler(svc *mockTestimonialService) (*TestimonialHandler, *mockNotifier) {
	notifier := &mockNotifier{}
	return NewTestimonialHandler(svc, notifier, ratelimit.New(), profanity.NewFilter()), notifier
}

func submitReq(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/testimonials", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.2:1234"
	return req
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestTestimonialHandler_Submit_Success(t *testing.T) {
	var submitted *model.Testimonial
	svc := &mockTestimonialService{
		submitFunc: func(ctx context.Context, tm *model.Testimonial) error {
			tm.ID = 1
			submitted = tm
			return nil
		},
	}
	h, notifier := newTestimonialHandler(svc)

	body := `{"author_name": "Eve", "author_role": "CTO", "message": "Great work", "rating": 5}`
	rec := httptest.NewRecorder()
	h.Submit(rec, submitReq(body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if submitted == nil || submitted.AuthorName != "Eve" || submitted.Rating != 5 {
		t.Errorf("unexpected submitted testimonial: %+v", submitted)
	}
	if len(notifier.events) != 1 || notifier.events[0].entity != "testimonial" {
		t.Errorf("expected testimonial notification, got %+v", notifier.events)
	}
}

func TestTestimonialHandler_Submit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing author", `{"message": "hi", "rating": 5}`, "author_name_required"},
		{"missing message", `{"author_name": "Eve", "rating": 5}`, "message_required"},
		{"rating low", `{"author_name": "Eve", "message": "hi", "rating": 0}`, "invalid_rating"},
		{"rating high", `{"author_name": "Eve", "message": "hi", "rating": 6}`, "invalid_rating"},
		{"too long", `{"author_name": "Eve", "message": "` + strings.Repeat("x", 501) + `", "rating": 5}`, "message_too_long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestimonialHandler(&mockTestimonialService{})
			rec := httptest.NewRecorder()
			h.Submit(rec, submitReq(tt.body))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			var resp map[string]string
			_ = json.Unmarshal(rec.Body.Bytes(), &resp)
			if resp["error"] != tt.wantErr {
				t.Errorf("expected error=%s, got %s", tt.wantErr, resp["error"])
			}
		})
	}
}

func TestTestimonialHandler_Submit_RateLimited(t *testing.T) {
	h, _ := newTestimonialHandler(&mockTestimonialService{})
	body := `{"author_name": "Eve", "message": "Great work", "rating": 5}`

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.Submit(rec, submitReq(body))
		if rec.Code != http.StatusCreated {
			t.Fatalf("attempt %d: expected 201, got %d", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	h.Submit(rec, submitReq(body))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on fourth attempt, got %d", rec.Code)
	}
}

func TestTestimonialHandler_Submit_Profanity(t *testing.T) {
	h, _ := newTestimonialHandler(&mockTestimonialService{})

	body := `{"author_name": "Eve", "message": "this is shit", "rating": 1}`
	rec := httptest.NewRecorder()
	h.Submit(rec, submitReq(body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "profanity_detected" {
		t.Errorf("expected profanity_detected, got %s", resp["error"])
	}
}

func TestTestimonialHandler_Publish(t *testing.T) {
	var gotID int
	var gotPublished bool
	svc := &mockTestimonialService{
		setPublishedFunc: func(ctx context.Context, id int, published bool) error {
			gotID = id
			gotPublished = published
			return nil
		},
	}
	h, notifier := newTestimonialHandler(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/testimonials/7/publish", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	h.Publish(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != 7 || !gotPublished {
		t.Errorf("expected SetPublished(7, true), got (%d, %v)", gotID, gotPublished)
	}
	if len(notifier.events) != 1 || notifier.events[0].action != "updated" {
		t.Errorf("expected updated notification, got %+v", notifier.events)
	}
}

func TestTestimonialHandler_Unpublish_NotFound(t *testing.T) {
	svc := &mockTestimonialService{
		setPublishedFunc: func(ctx context.Context, id int, published bool) error {
			return repository.ErrNotFound
		},
	}
	h, _ := newTestimonialHandler(svc)

	req := httptest.NewRequest(http.MethodPut, "/api/testimonials/99/unpublish", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	h.Unpublish(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
