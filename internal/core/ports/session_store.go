package ports

import (
	"context"

	"github.com/gct/report-admin/internal/core/domain"
)

// SessionStore holds the mapping from opaque session ids to authenticated
// user descriptors. It is the one piece of shared mutable state touched by
// every protected request, so implementations must be safe under concurrent
// Create/Get/Invalidate calls without serializing unrelated session ids.
type SessionStore interface {
	// Create allocates a new unguessable session id for the descriptor.
	Create(ctx context.Context, sess domain.UserSession) (string, error)
	// Get resolves a session id. Absent or expired sessions return (nil, nil);
	// that is a normal outcome meaning "not authenticated", not an error.
	Get(ctx context.Context, id string) (*domain.UserSession, error)
	// Invalidate removes the session. Unknown ids are a no-op.
	Invalidate(ctx context.Context, id string) error
	// InvalidateUser removes every session belonging to userID except the one
	// identified by exceptID (pass "" to remove all of them).
	InvalidateUser(ctx context.Context, userID, exceptID string) error
}
