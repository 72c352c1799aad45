package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gct/report-admin/internal/core/domain"
	"github.com/gct/report-admin/internal/infrastructure/session"
)

const testCookie = "session_id"

func newGateContext(t *testing.T, sessionID string, viaHeader bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if sessionID != "" {
		if viaHeader {
			req.Header.Set("Authorization", "Bearer "+sessionID)
		} else {
			req.AddCookie(&http.Cookie{Name: testCookie, Value: sessionID})
		}
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSessionGate_AllowsLiveSession(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	id, err := store.Create(t.Context(), domain.UserSession{UserID: "u1", Username: "alice", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	c, rec := newGateContext(t, id, false)

	called := false
	mw := Session(store, testCookie)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("session_id") != id {
			t.Fatalf("session_id not set")
		}
		if c.Get("user_id") != "u1" || c.Get("username") != "alice" || c.Get("role") != "ADMIN" {
			t.Fatalf("session attributes not injected")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSessionGate_AcceptsBearerHeader(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	id, _ := store.Create(t.Context(), domain.UserSession{UserID: "u1", Username: "alice", Role: domain.RoleViewer})

	c, rec := newGateContext(t, id, true)

	mw := Session(store, testCookie)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSessionGate_RejectsMissingSession(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	c, rec := newGateContext(t, "", false)

	mw := Session(store, testCookie)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("gate must write the denial itself, got error %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if body["message"] != "not logged in or session expired" {
		t.Fatalf("unexpected denial body: %+v", body)
	}
}

func TestSessionGate_RejectsUnknownSession(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	c, rec := newGateContext(t, "not-a-real-session", false)

	mw := Session(store, testCookie)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionGate_RejectsAfterInvalidation(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	id, _ := store.Create(t.Context(), domain.UserSession{UserID: "u1", Username: "alice", Role: domain.RoleViewer})
	_ = store.Invalidate(t.Context(), id)

	c, rec := newGateContext(t, id, false)

	mw := Session(store, testCookie)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	_ = handler(c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}
