// Package hash provides the bcrypt-backed credential hasher.
package hash

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// WorkFactor is the fixed bcrypt cost used in production. It matches
// bcrypt.DefaultCost; tests may construct a cheaper hasher.
const WorkFactor = 10

// Bcrypt hashes and verifies passwords with golang.org/x/crypto/bcrypt.
// The produced hash embeds salt and cost, so Verify needs no extra inputs.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a hasher with the given cost. Costs outside bcrypt's
// supported range fall back to WorkFactor.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = WorkFactor
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(_ context.Context, plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hashed. Any failure, including a
// malformed hash, verifies false.
func (b *Bcrypt) Verify(_ context.Context, plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
