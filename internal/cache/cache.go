// Package cache mirrors manager state into a key/value store so a restarted
// dashboard can warm-start. Entries are never authoritative: a live fetch
// always supersedes them.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	MerchantStateKey = "merchants_cache"
	PaymentStateKey  = "payments_cache"
)

type Store interface {
	// Get reports false when the key has no entry.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Load rehydrates the value stored under key. A missing, unreadable or
// malformed entry yields fallback; the failure is logged and never returned.
func Load[T any](ctx context.Context, store Store, key string, fallback T) T {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		logrus.Warnf("Error reading cache entry %s, starting empty: %s", key, err.Error())
		return fallback
	}
	if !ok || len(raw) == 0 {
		return fallback
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		logrus.Warnf("Discarding malformed cache entry %s: %s", key, err.Error())
		return fallback
	}
	return value
}

// Save serializes value and overwrites the entry under key.
func Save[T any](ctx context.Context, store Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding cache entry %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("error writing cache entry %s: %w", key, err)
	}
	return nil
}

// Clear drops the given keys, or both state entries when none are given.
func Clear(ctx context.Context, store Store, keys ...string) error {
	if len(keys) == 0 {
		keys = []string{MerchantStateKey, PaymentStateKey}
	}
	for _, key := range keys {
		if err := store.Delete(ctx, key); err != nil {
			return fmt.Errorf("error clearing cache entry %s: %w", key, err)
		}
	}
	return nil
}
