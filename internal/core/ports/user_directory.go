package ports

import (
	"context"

	"github.com/mykare/auth-core/internal/core/domain"
)

// UserDirectory is the persisted collection of registered users. It is the
// sole owner of the collection; nothing else writes it.
type UserDirectory interface {
	// Load reads the directory from durable storage. An absent record yields
	// an empty directory, not an error.
	Load(ctx context.Context) error
	// BootstrapAdmin ensures exactly one privileged account exists. Calling
	// it repeatedly never creates a second admin.
	BootstrapAdmin(ctx context.Context) error
	// FindByUsername performs a case-sensitive exact lookup and returns
	// domain.ErrUserNotFound when no user matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Add appends a new user and persists, or fails with
	// domain.ErrDuplicateUsername.
	Add(ctx context.Context, user *domain.User) error
	// AllUsers returns the public projection of every registered user,
	// password hashes stripped, in registration order.
	AllUsers(ctx context.Context) ([]*domain.Session, error)
}
