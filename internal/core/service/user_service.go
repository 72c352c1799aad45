package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gct/report-admin/internal/core/domain"
	"github.com/gct/report-admin/internal/core/ports"
)

// UserService implements account management over the credential store.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context, keyword string) ([]ports.UserView, error) {
	users, err := s.users.List(ctx, keyword)
	if err != nil {
		return nil, err
	}
	views := make([]ports.UserView, len(users))
	for i, u := range users {
		views[i] = toUserView(u)
	}
	return views, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*ports.UserView, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toUserView(user)
	return &view, nil
}

// Create hashes the password and inserts the account. The ExistsByUsername
// pre-check yields a friendly error on the common path; the repository's
// unique constraint remains the final authority when two creates race.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*ports.UserView, error) {
	taken, err := s.users.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	enabled := true
	if input.Enabled != nil {
		enabled = *input.Enabled
	}

	now := time.Now().UTC()
	created, err := s.users.Insert(ctx, &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
		Enabled:      enabled,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user created")

	view := toUserView(created)
	return &view, nil
}

// Update applies only the supplied fields; nil pointers leave the stored
// values untouched. A supplied password is re-hashed.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*ports.UserView, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Password != nil && *input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Enabled != nil {
		user.Enabled = *input.Enabled
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Msg("user updated")

	view := toUserView(updated)
	return &view, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) SetEnabled(ctx context.Context, id string, enabled bool) (*ports.UserView, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Enabled = enabled
	user.UpdatedAt = time.Now().UTC()
	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Bool("enabled", enabled).Msg("user status toggled")

	view := toUserView(updated)
	return &view, nil
}

func toUserView(u *domain.User) ports.UserView {
	return ports.UserView{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Enabled:   u.Enabled,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
