package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCredentials covers wrong username, wrong password and disabled
// accounts alike, so a caller cannot probe which usernames exist.
var ErrInvalidCredentials = errors.New("username or password incorrect")

var ErrUserNotFound = errors.New("user not found")
var ErrDuplicateUsername = errors.New("username already exists")
var ErrDuplicateReportName = errors.New("report name already exists")

// ValidationError aggregates field-level failures so a single response can
// carry every bad field at once.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
