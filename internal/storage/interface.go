package storage

import (
	"context"
)

// Store persists rendered charts and their plans
type Store interface {
	// Close releases the underlying client
	Close() error

	// Save writes data under key, replacing any previous content
	Save(ctx context.Context, key string, data []byte) error

	// Get reads the object stored under key
	Get(ctx context.Context, key string) ([]byte, error)

	// Exists reports whether key holds an object
	Exists(ctx context.Context, key string) (bool, error)

	// List returns keys under prefix, newest first, at most limit when limit > 0
	List(ctx context.Context, prefix string, limit int) ([]string, error)

	// Location returns a human readable address for key
	Location(key string) string
}
