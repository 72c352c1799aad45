package ports

import (
	"context"
	"time"

	"github.com/gct/report-admin/internal/core/domain"
)

// UserView is the client-facing projection of a user. It deliberately has no
// password hash field.
type UserView struct {
	ID        string
	Username  string
	Role      domain.Role
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateUserInput carries a new-account request. Enabled is a pointer so the
// handler can distinguish "not supplied" (defaults to true) from false.
type CreateUserInput struct {
	Username string
	Password string
	Role     domain.Role
	Enabled  *bool
}

// UpdateUserInput is a partial update: nil fields are left untouched.
type UpdateUserInput struct {
	Password *string
	Role     *domain.Role
	Enabled  *bool
}

type UserService interface {
	List(ctx context.Context, keyword string) ([]UserView, error)
	GetByID(ctx context.Context, id string) (*UserView, error)
	Create(ctx context.Context, input CreateUserInput) (*UserView, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*UserView, error)
	Delete(ctx context.Context, id string) error
	SetEnabled(ctx context.Context, id string, enabled bool) (*UserView, error)
}
