package store

import (
	"context"
	"fmt"
)

// Remember stores a small scalar under its own key, outside the document.
func (s *Store) Remember(ctx context.Context, key, value string) error {
	if err := s.repo.Set(ctx, key, []byte(value)); err != nil {
		return fmt.Errorf("remember %s: %w", key, err)
	}
	return nil
}

// Recall returns the scalar stored under key; ok is false when nothing is
// stored.
func (s *Store) Recall(ctx context.Context, key string) (value string, ok bool, err error) {
	b, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("recall %s: %w", key, err)
	}
	if b == nil {
		return "", false, nil
	}
	return string(b), true, nil
}

// Forget removes the scalar stored under key.
func (s *Store) Forget(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("forget %s: %w", key, err)
	}
	return nil
}
