// Package kv is the local key-value store the card document is persisted in.
// Values are opaque text blobs; callers own their encoding.
package kv

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("kv: key not found")

// Store is a small persistent map of named blobs.
type Store interface {
	// Get returns ErrNotFound when key has never been set.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

const sqliteFileName = "studycards.sqlite"

// Open returns the store for backend rooted at dir.
func Open(ctx context.Context, backend, dir string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return NewFileStore(dir)
	case BackendSQLite:
		return OpenSQLite(ctx, filepath.Join(dir, sqliteFileName))
	default:
		return nil, fmt.Errorf("kv: unknown backend %q", backend)
	}
}

func checkKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("kv: invalid key %q", key)
	}
	return nil
}
