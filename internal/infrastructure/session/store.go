// Package session implements the persisted current-session store over a KV
// store, with a choice of plain-JSON or signed encodings.
package session

import (
	"context"
	"fmt"

	"github.com/mykare/auth-core/internal/core/domain"
	"github.com/mykare/auth-core/internal/core/ports"
)

// StorageKey is the KV key holding the current session. An absent key means
// signed out.
const StorageKey = "currentUser"

// Codec converts a session to and from its stored string form.
type Codec interface {
	Encode(session *domain.Session) (string, error)
	// Decode returns (nil, nil) for a value that cannot be trusted or parsed:
	// an unreadable stored session rehydrates as signed-out, it never blocks
	// startup.
	Decode(value string) (*domain.Session, error)
}

// Store persists the current session write-through under StorageKey.
type Store struct {
	store ports.KVStore
	codec Codec
}

func NewStore(store ports.KVStore, codec Codec) *Store {
	if codec == nil {
		codec = PlainCodec{}
	}
	return &Store{store: store, codec: codec}
}

func (s *Store) Load(ctx context.Context) (*domain.Session, error) {
	raw, ok, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("session load: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return s.codec.Decode(raw)
}

func (s *Store) Save(ctx context.Context, session *domain.Session) error {
	raw, err := s.codec.Encode(session)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.store.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}
