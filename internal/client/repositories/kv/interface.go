// Package kv provides the key-value storage the durable document and the
// remembered session scalars live in. Every backend honours the same
// contract, so the rest of the client never knows which one is in use.
package kv

import (
	"context"
)

// Repository is a flat string → bytes store.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set inserts or replaces the value in a single write.
//   - Delete is idempotent.
//   - Clear removes every key the repository owns, and only those.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
