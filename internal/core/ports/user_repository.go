package ports

import (
	"context"

	"github.com/gct/report-admin/internal/core/domain"
)

// UserRepository defines persistence operations over the credential store.
// The storage layer owns username uniqueness: Insert must fail with
// domain.ErrDuplicateUsername when the name is already taken, regardless of
// any pre-check the caller performed.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindEnabledByUsername returns domain.ErrUserNotFound for both absent
	// and disabled accounts so the two cases stay indistinguishable upstream.
	FindEnabledByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// List returns all users, or those whose username contains keyword
	// case-insensitively when keyword is non-blank.
	List(ctx context.Context, keyword string) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
