// Package directory implements the persisted user directory over a KV store.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mykare/auth-core/internal/core/domain"
	"github.com/mykare/auth-core/internal/core/ports"
)

// StorageKey is the KV key holding the serialized user list.
const StorageKey = "allUsers"

// Bootstrap admin credentials, guaranteed to exist after initialization so the
// system never starts without a privileged account.
const (
	AdminUsername = "admin"
	AdminPassword = "admin"
	adminFullname = "Admin user"
)

// Directory is a write-through user collection: durable storage is the source
// of truth, the in-memory slice is a cache updated under the mutex on every
// mutation.
type Directory struct {
	mu     sync.Mutex
	store  ports.KVStore
	hasher ports.CredentialHasher
	users  []*domain.User
	log    zerolog.Logger
}

func New(store ports.KVStore, hasher ports.CredentialHasher, log zerolog.Logger) *Directory {
	return &Directory{store: store, hasher: hasher, log: log}
}

// Load reads the directory from storage. An absent key yields an empty
// directory.
func (d *Directory) Load(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	raw, ok, err := d.store.Get(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("directory load: %w", err)
	}
	if !ok {
		d.users = nil
		return nil
	}

	var users []*domain.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return fmt.Errorf("directory decode: %w", err)
	}
	d.users = users
	d.log.Debug().Int("users", len(users)).Msg("directory loaded")
	return nil
}

// BootstrapAdmin creates the fixed admin account if no admin-role user exists
// yet. Idempotent: repeated calls never produce a second admin.
func (d *Directory) BootstrapAdmin(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if u.Role == domain.RoleAdmin {
			return nil
		}
	}

	hashed, err := d.hasher.Hash(ctx, AdminPassword)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	admin := &domain.User{
		Fullname:     adminFullname,
		Username:     AdminUsername,
		PasswordHash: hashed,
		Role:         domain.RoleAdmin,
	}
	d.users = append(d.users, admin)
	if err := d.persistLocked(ctx); err != nil {
		d.users = d.users[:len(d.users)-1]
		return err
	}
	d.log.Info().Str("username", AdminUsername).Msg("bootstrap admin created")
	return nil
}

// FindByUsername performs a case-sensitive exact scan.
func (d *Directory) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Add appends a new user and persists. The uniqueness check and the append
// happen under one lock, so two concurrent registrations of the same username
// cannot both succeed.
func (d *Directory) Add(ctx context.Context, user *domain.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if u.Username == user.Username {
			return domain.ErrDuplicateUsername
		}
	}

	clone := *user
	d.users = append(d.users, &clone)
	if err := d.persistLocked(ctx); err != nil {
		d.users = d.users[:len(d.users)-1]
		return err
	}
	return nil
}

// AllUsers returns every registered user, bootstrap admin included, with the
// password hash stripped.
func (d *Directory) AllUsers(_ context.Context) ([]*domain.Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*domain.Session, 0, len(d.users))
	for _, u := range d.users {
		out = append(out, u.Project())
	}
	return out, nil
}

func (d *Directory) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(d.users)
	if err != nil {
		return fmt.Errorf("directory encode: %w", err)
	}
	if err := d.store.Set(ctx, StorageKey, string(raw)); err != nil {
		return fmt.Errorf("directory persist: %w", err)
	}
	return nil
}
