package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gct/report-admin/internal/core/domain"
	"github.com/gct/report-admin/internal/core/ports"
)

type stubUserService struct {
	views []ports.UserView
	err   error

	listKeyword string
	createInput ports.CreateUserInput
	updateID    string
	updateInput ports.UpdateUserInput
	deletedID   string
	statusID    string
	statusValue bool
}

func (s *stubUserService) List(_ context.Context, keyword string) ([]ports.UserView, error) {
	s.listKeyword = keyword
	return s.views, s.err
}

func (s *stubUserService) GetByID(_ context.Context, id string) (*ports.UserView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.views[0], nil
}

func (s *stubUserService) Create(_ context.Context, input ports.CreateUserInput) (*ports.UserView, error) {
	s.createInput = input
	if s.err != nil {
		return nil, s.err
	}
	return &s.views[0], nil
}

func (s *stubUserService) Update(_ context.Context, id string, input ports.UpdateUserInput) (*ports.UserView, error) {
	s.updateID, s.updateInput = id, input
	if s.err != nil {
		return nil, s.err
	}
	return &s.views[0], nil
}

func (s *stubUserService) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return s.err
}

func (s *stubUserService) SetEnabled(_ context.Context, id string, enabled bool) (*ports.UserView, error) {
	s.statusID, s.statusValue = id, enabled
	if s.err != nil {
		return nil, s.err
	}
	return &s.views[0], nil
}

func sampleView() ports.UserView {
	return ports.UserView{
		ID:        "id-1",
		Username:  "alice",
		Role:      domain.RoleDesigner,
		Enabled:   true,
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestUserHandler_List(t *testing.T) {
	svc := &stubUserService{views: []ports.UserView{sampleView()}}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(http.MethodGet, "/users?keyword=ali", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if svc.listKeyword != "ali" {
		t.Fatalf("keyword not passed through: %q", svc.listKeyword)
	}

	var body []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if len(body) != 1 || body[0]["username"] != "alice" || body[0]["role"] != "DESIGNER" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if _, leaked := body[0]["passwordHash"]; leaked {
		t.Fatalf("password hash leaked into the response")
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	svc := &stubUserService{err: domain.ErrUserNotFound}
	h := NewUserHandler(svc)

	c, _ := newJSONContext(http.MethodGet, "/users/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Create(t *testing.T) {
	svc := &stubUserService{views: []ports.UserView{sampleView()}}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/users", `{"username":"alice","password":"pw123456","role":"DESIGNER"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.createInput.Username != "alice" || svc.createInput.Role != domain.RoleDesigner {
		t.Fatalf("input not forwarded: %+v", svc.createInput)
	}
	if svc.createInput.Enabled != nil {
		t.Fatalf("absent enabled flag must stay nil")
	}
}

func TestUserHandler_Create_InvalidRole(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newJSONContext(http.MethodPost, "/users", `{"username":"alice","password":"pw123456","role":"SUPERADMIN"}`)
	err := h.Create(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if _, ok := ve.Fields["role"]; !ok {
		t.Fatalf("expected role field error, got %+v", ve.Fields)
	}
}

func TestUserHandler_Create_Duplicate(t *testing.T) {
	svc := &stubUserService{err: domain.ErrDuplicateUsername}
	h := NewUserHandler(svc)

	c, _ := newJSONContext(http.MethodPost, "/users", `{"username":"alice","password":"pw123456","role":"VIEWER"}`)
	if err := h.Create(c); err != domain.ErrDuplicateUsername {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestUserHandler_Update_PartialBody(t *testing.T) {
	svc := &stubUserService{views: []ports.UserView{sampleView()}}
	h := NewUserHandler(svc)

	c, _ := newJSONContext(http.MethodPut, "/users/id-1", `{"role":"ADMIN"}`)
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if svc.updateID != "id-1" {
		t.Fatalf("id not passed through: %q", svc.updateID)
	}
	if svc.updateInput.Role == nil || *svc.updateInput.Role != domain.RoleAdmin {
		t.Fatalf("role not forwarded: %+v", svc.updateInput)
	}
	if svc.updateInput.Password != nil || svc.updateInput.Enabled != nil {
		t.Fatalf("absent fields must stay nil: %+v", svc.updateInput)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	svc := &stubUserService{}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(http.MethodDelete, "/users/id-1", "")
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if svc.deletedID != "id-1" {
		t.Fatalf("id not passed through: %q", svc.deletedID)
	}

	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != "user deleted" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestUserHandler_SetStatus(t *testing.T) {
	svc := &stubUserService{views: []ports.UserView{sampleView()}}
	h := NewUserHandler(svc)

	c, rec := newJSONContext(http.MethodPatch, "/users/id-1/status?enabled=false", "")
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	if err := h.SetStatus(c); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.statusID != "id-1" || svc.statusValue {
		t.Fatalf("arguments not forwarded: %q %v", svc.statusID, svc.statusValue)
	}
}

func TestUserHandler_SetStatus_MissingFlag(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newJSONContext(http.MethodPatch, "/users/id-1/status", "")
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	err := h.SetStatus(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
