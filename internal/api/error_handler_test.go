package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gct/report-admin/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json error body: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidCredentials, http.StatusBadRequest, "INVALID_CREDENTIALS"},
		{domain.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{domain.ErrDuplicateUsername, http.StatusBadRequest, "DUPLICATE_USERNAME"},
		{domain.ErrDuplicateReportName, http.StatusBadRequest, "DUPLICATE_REPORT_NAME"},
	}
	for _, tc := range cases {
		status, resp := handleError(t, tc.err)
		if status != tc.status {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.status, status)
		}
		if resp.Code != tc.code {
			t.Fatalf("%v: expected code %s, got %s", tc.err, tc.code, resp.Code)
		}
		if resp.Message != tc.err.Error() {
			t.Fatalf("%v: expected the domain message, got %q", tc.err, resp.Message)
		}
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	err := domain.NewValidationError(map[string]string{
		"username": "is required",
		"password": "must be at least 6 characters",
	})

	status, resp := handleError(t, err)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if resp.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %s", resp.Code)
	}
	if len(resp.Fields) != 2 || resp.Fields["username"] != "is required" {
		t.Fatalf("field detail lost: %+v", resp.Fields)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	status, resp := handleError(t, echo.NewHTTPError(http.StatusNotFound, "route not found"))
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if resp.Code != "NOT_FOUND" || resp.Message != "route not found" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestErrorHandler_UnknownError(t *testing.T) {
	status, resp := handleError(t, errors.New("mongo: connection reset"))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if resp.Code != "INTERNAL" {
		t.Fatalf("expected INTERNAL, got %s", resp.Code)
	}
	if resp.Message != "internal server error" {
		t.Fatalf("internal cause leaked: %q", resp.Message)
	}
}

func TestErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Once a handler has written a response the error handler must not
	// write a second one.
	if err := c.JSON(http.StatusUnauthorized, map[string]string{"message": "denied"}); err != nil {
		t.Fatalf("priming response failed: %v", err)
	}
	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status overwritten: %d", rec.Code)
	}
}
