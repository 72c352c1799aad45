package ports

import (
	"context"

	"github.com/gct/report-admin/internal/core/domain"
)

// LoginResult is returned on successful authentication. Token is the opaque
// session id itself; clients present it back via cookie or bearer header.
type LoginResult struct {
	Token    string
	UserID   string
	Username string
	Role     domain.Role
}

// ChangePasswordInput carries a password-change request. OldPassword is
// re-verified even though the caller already holds a valid session.
type ChangePasswordInput struct {
	Username        string
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// ChangePassword rotates the password and invalidates the user's other
	// sessions; currentSessionID survives so the caller stays logged in.
	ChangePassword(ctx context.Context, input ChangePasswordInput, currentSessionID string) error
	// Logout is idempotent: absent or already-invalidated sessions succeed.
	Logout(ctx context.Context, sessionID string) error
}
