package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockNotifier, shared by handler tests
// ---------------------------------------------------------------------------

type notification struct {
	entity  string
	action  string
	payload any
}

type mockNotifier struct {
	events []notification
}

func (m *mockNotifier) EntityChanged(entity, action string, payload any) {
	m.events = append(m.events, notification{entity: entity, action: action, payload: payload})
}

// ---------------------------------------------------------------------------
// mockSkillService
// ---------------------------------------------------------------------------

type mockSkillService struct {
	listFunc   func(ctx context.Context) ([]*model.Skill, error)
	getFunc    func(ctx context.Context, id int) (*model.Skill, error)
	createFunc func(ctx context.Context, s *model.Skill) error
	updateFunc func(ctx context.Context, id int, patch model.SkillPatch) (*model.Skill, error)
	deleteFunc func(ctx context.Context, id int) error
}

func (m *mockSkillService) List(ctx context.Context) ([]*model.Skill, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockSkillService) Get(ctx context.Context, id int) (*model.Skill, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockSkillService) Create(ctx context.Context, s *model.Skill) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, s)
	}
	return nil
}

func (m *mockSkillService) Update(ctx context.Context, id int, patch model.SkillPatch) (*model.Skill, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil, repository.ErrNotFound
}

func (m *mockSkillService) Delete(ctx context.Context, id int) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestSkillHandler_List_EmptyIsJSONArray(t *testing.T) {
	h := NewSkillHandler(&mockSkillService{}, &mockNotifier{})

	req := httptest.NewRequest(http.MethodGet, "/api/skills", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestSkillHandler_Create_Valid(t *testing.T) {
	notifier := &mockNotifier{}
	svc := &mockSkillService{
		createFunc: func(ctx context.Context, s *model.Skill) error {
			s.ID = 1
			return nil
		},
	}
	h := NewSkillHandler(svc, notifier)

	body := `{"name_en": "Go", "name_fr": "Go", "category": "backend", "level": 90}`
	req := httptest.NewRequest(http.MethodPost, "/api/skills", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var got model.Skill
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != 1 || got.NameEn != "Go" {
		t.Errorf("unexpected response record: %+v", got)
	}
	if len(notifier.events) != 1 || notifier.events[0].entity != "skill" || notifier.events[0].action != "created" {
		t.Errorf("expected skill/created notification, got %+v", notifier.events)
	}
}

func TestSkillHandler_Create_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad json", `{`, "invalid_json"},
		{"missing name", `{"name_fr": "Go", "level": 50}`, "name_required"},
		{"level too low", `{"name_en": "Go", "name_fr": "Go", "level": 0}`, "invalid_level"},
		{"level too high", `{"name_en": "Go", "name_fr": "Go", "level": 101}`, "invalid_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSkillHandler(&mockSkillService{}, &mockNotifier{})
			req := httptest.NewRequest(http.MethodPost, "/api/skills", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Create(rec, req)

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

func TestSkillHandler_Update_NotFound(t *testing.T) {
	h := NewSkillHandler(&mockSkillService{}, &mockNotifier{})

	req := httptest.NewRequest(http.MethodPut, "/api/skills/99", bytes.NewReader([]byte(`{"level": 50}`)))
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestSkillHandler_Update_MergedRecordNotified(t *testing.T) {
	notifier := &mockNotifier{}
	svc := &mockSkillService{
		updateFunc: func(ctx context.Context, id int, patch model.SkillPatch) (*model.Skill, error) {
			return &model.Skill{ID: id, NameEn: "Go", NameFr: "Go", Level: *patch.Level}, nil
		},
	}
	h := NewSkillHandler(svc, notifier)

	req := httptest.NewRequest(http.MethodPut, "/api/skills/3", strings.NewReader(`{"level": 95}`))
	req.SetPathValue("id", "3")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(notifier.events) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.events))
	}
	skill, ok := notifier.events[0].payload.(*model.Skill)
	if !ok || skill.Level != 95 {
		t.Errorf("expected merged record in notification, got %+v", notifier.events[0].payload)
	}
}

func TestSkillHandler_Delete(t *testing.T) {
	notifier := &mockNotifier{}
	h := NewSkillHandler(&mockSkillService{}, notifier)

	req := httptest.NewRequest(http.MethodDelete, "/api/skills/2", nil)
	req.SetPathValue("id", "2")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(notifier.events) != 1 || notifier.events[0].action != "deleted" {
		t.Errorf("expected deleted notification, got %+v", notifier.events)
	}
}

func TestSkillHandler_Get_InvalidID(t *testing.T) {
	h := NewSkillHandler(&mockSkillService{}, &mockNotifier{})

	for _, raw := range []string{"abc", "0", "-5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/skills/"+raw, nil)
		req.SetPathValue("id", raw)
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("id=%q: expected 400, got %d", raw, rec.Code)
		}
	}
}
