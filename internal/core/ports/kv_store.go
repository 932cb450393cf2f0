package ports

import "context"

// KVStore is the durable storage collaborator: a flat string key-value store.
// The directory and session layers serialize into it under fixed keys.
type KVStore interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
