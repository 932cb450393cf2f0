package ports

import (
	"context"

	"github.com/mykare/auth-core/internal/core/domain"
)

// AuthService orchestrates the user directory, credential hasher and session
// store to implement registration, login and logout.
type AuthService interface {
	// Hydrate performs the one-time startup read: directory load, admin
	// bootstrap, session rehydration. Until it runs the session state is
	// domain.SessionUnknown.
	Hydrate(ctx context.Context) error
	Register(ctx context.Context, fullname, username, password, role string) (*domain.Session, error)
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	// Logout clears the session and navigates to the login path. It cannot
	// fail and needs no confirmation.
	Logout(ctx context.Context)
	// Current returns the session projection (nil unless authenticated) and
	// the session lifecycle state.
	Current() (*domain.Session, domain.SessionState)
	AllUsers(ctx context.Context) ([]*domain.Session, error)
	// Subscribe registers fn to run synchronously after every session
	// mutation. The returned function removes the subscription.
	Subscribe(fn func()) (unsubscribe func())
}
