package ports

import "context"

// CredentialHasher performs the one-way transform over plaintext passwords.
type CredentialHasher interface {
	// Hash produces a self-describing hash (salt and cost embedded) for the
	// given plaintext. Each call salts independently.
	Hash(ctx context.Context, plaintext string) (string, error)
	// Verify reports whether plaintext matches hashed. A malformed hash
	// verifies false; Verify never fails.
	Verify(ctx context.Context, plaintext, hashed string) bool
}
