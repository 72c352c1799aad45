package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gct/report-admin/internal/core/domain"
	"github.com/gct/report-admin/internal/core/ports"
)

// AuthService implements login, logout and password change against the
// credential store and the session store.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

// Login verifies credentials and creates a session. Unknown usernames,
// disabled accounts and wrong passwords all fail with ErrInvalidCredentials
// so the three cases cannot be told apart from outside.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	user, err := s.users.FindEnabledByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			s.logger.Warn().Str("username", username).Msg("login failed: user absent or disabled")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn().Str("username", username).Msg("login failed: password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	sessionID, err := s.sessions.Create(ctx, domain.UserSession{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login succeeded")

	return &ports.LoginResult{
		Token:    sessionID,
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// ChangePassword re-verifies the old password, stores a hash of the new one
// and invalidates the user's other sessions. The confirm mismatch check runs
// first so nothing touches the store when the request is inconsistent.
func (s *AuthService) ChangePassword(ctx context.Context, input ports.ChangePasswordInput, currentSessionID string) error {
	if input.NewPassword != input.ConfirmPassword {
		return domain.NewValidationError(map[string]string{
			"confirmPassword": "new password and confirmation do not match",
		})
	}

	user, err := s.users.FindEnabledByUsername(ctx, input.Username)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)) != nil {
		s.logger.Warn().Str("username", input.Username).Msg("password change failed: old password mismatch")
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()
	if _, err := s.users.Update(ctx, user); err != nil {
		return err
	}

	// Other sessions of this user were authenticated with the old password;
	// drop them. The caller's own session stays valid.
	if err := s.sessions.InvalidateUser(ctx, user.ID, currentSessionID); err != nil {
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to invalidate stale sessions")
	}

	s.logger.Info().Str("username", input.Username).Msg("password changed")
	return nil
}

// Logout invalidates the session if one exists. Calling it without an active
// session still succeeds.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Invalidate(ctx, sessionID)
}
