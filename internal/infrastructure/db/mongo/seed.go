package mongo

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/gct/report-admin/internal/core/domain"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// EnsureDefaultAdmin creates the bootstrap admin account when the users
// collection is empty, so a fresh deployment is reachable. The password must
// be rotated after first login.
func EnsureDefaultAdmin(ctx context.Context, repo *UserRepository, logger zerolog.Logger) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = repo.Insert(ctx, &domain.User{
		Username:     defaultAdminUsername,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err == domain.ErrDuplicateUsername {
		// Another replica seeded first.
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info().Str("username", defaultAdminUsername).Msg("default admin account created")
	return nil
}
