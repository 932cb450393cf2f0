package ports

import (
	"context"

	"github.com/mykare/auth-core/internal/core/domain"
)

// SessionStore persists the pointer to the currently authenticated identity.
type SessionStore interface {
	// Load rehydrates the stored session. A nil session with a nil error
	// means "determined absent" (signed out).
	Load(ctx context.Context) (*domain.Session, error)
	// Save writes the session through to durable storage.
	Save(ctx context.Context, session *domain.Session) error
	// Clear removes the stored session. Clearing an absent session is a no-op.
	Clear(ctx context.Context) error
}
