package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gct/report-admin/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors: a stable
// machine-readable code, a human message, and field-level detail for
// validation failures.
type errorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Aggregates validation failures into one field→message response.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, resp := resolveError(err, log, c)
		_ = c.JSON(status, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Validation failures carry every bad field at once.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "validation failed",
			Fields:  ve.Fields,
		}
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{
			Code:    statusCode(he.Code),
			Message: fmt.Sprintf("%v", he.Message),
		}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, errorResponse{Code: "INVALID_CREDENTIALS", Message: err.Error()}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Code: "USER_NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusBadRequest, errorResponse{Code: "DUPLICATE_USERNAME", Message: err.Error()}
	case errors.Is(err, domain.ErrDuplicateReportName):
		return http.StatusBadRequest, errorResponse{Code: "DUPLICATE_REPORT_NAME", Message: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{
		Code:    "INTERNAL",
		Message: "internal server error",
	}
}

func statusCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
