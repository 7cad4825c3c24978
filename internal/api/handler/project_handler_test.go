package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adminconsole/admin-api/internal/core/domain"
	"github.com/adminconsole/admin-api/internal/core/ports"
)

type stubProjectService struct {
	listFn   func(ctx context.Context, limit, offset int) ([]domain.Project, error)
	createFn func(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error)
	getFn    func(ctx context.Context, id string) (*domain.Project, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error)
}

func (s *stubProjectService) List(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *stubProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	return s.createFn(ctx, input)
}

func (s *stubProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.getFn(ctx, id)
}

func (s *stubProjectService) Require(ctx context.Context, id string) (*domain.Project, error) {
	return s.getFn(ctx, id)
}

func (s *stubProjectService) Update(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubProjectService) GetAll(ctx context.Context) ([]domain.Project, error) {
	return s.listFn(ctx, 0, 0)
}

func newProjectContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProjectHandler_List_Success(t *testing.T) {
	now := time.Now()
	stub := &stubProjectService{
		listFn: func(ctx context.Context, limit, offset int) ([]domain.Project, error) {
			if limit != 5 || offset != 10 {
				t.Fatalf("unexpected pagination: %d %d", limit, offset)
			}
			return []domain.Project{{ID: "project-1", Name: "P", Kind: domain.ProjectKindPersonal, CreatedAt: now, UpdatedAt: now}}, nil
		},
	}
	handler := NewProjectHandler(stub)

	c, rec := newProjectContext(http.MethodGet, "/v1alpha1/projects?limit=5&offset=10", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "project-1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProjectHandler_List_MissingLimit(t *testing.T) {
	stub := &stubProjectService{
		listFn: func(ctx context.Context, limit, offset int) ([]domain.Project, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProjectHandler(stub)

	c, _ := newProjectContext(http.MethodGet, "/v1alpha1/projects?offset=0", "")
	err := handler.List(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Message != "limit is required" {
		t.Fatalf("unexpected message: %q", ve.Message)
	}
}

func TestProjectHandler_Create_Success(t *testing.T) {
	stub := &stubProjectService{
		createFn: func(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
			if input.Name != "P" || input.Kind != domain.ProjectKindShared {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Project{ID: "project-9", Name: input.Name, Kind: input.Kind}, nil
		},
	}
	handler := NewProjectHandler(stub)

	body := `{"name":" P ","description":"d","kind":"shared","ownerIds":["user-1"],"ownerGroupIds":[]}`
	c, rec := newProjectContext(http.MethodPost, "/v1alpha1/projects", body)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "project-9" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProjectHandler_Create_BadKind(t *testing.T) {
	stub := &stubProjectService{
		createFn: func(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProjectHandler(stub)

	body := `{"name":"P","description":"d","kind":"corporate","ownerIds":[],"ownerGroupIds":[]}`
	c, _ := newProjectContext(http.MethodPost, "/v1alpha1/projects", body)
	err := handler.Create(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(ve.Message, "kind") {
		t.Fatalf("message should name the field: %q", ve.Message)
	}
}

func TestProjectHandler_Create_InvalidPayload(t *testing.T) {
	stub := &stubProjectService{
		createFn: func(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProjectHandler(stub)

	c, _ := newProjectContext(http.MethodPost, "/v1alpha1/projects", "not-json")
	err := handler.Create(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Message != "Invalid request body" {
		t.Fatalf("unexpected message: %q", ve.Message)
	}
}

func TestProjectHandler_Get_NotFound(t *testing.T) {
	stub := &stubProjectService{
		getFn: func(ctx context.Context, id string) (*domain.Project, error) {
			return nil, nil
		},
	}
	handler := NewProjectHandler(stub)

	c, _ := newProjectContext(http.MethodGet, "/v1alpha1/projects/project-404", "")
	c.SetParamNames("projectId")
	c.SetParamValues("project-404")
	err := handler.Get(c)

	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if nf.Message != "Project not found" {
		t.Fatalf("unexpected message: %q", nf.Message)
	}
}
