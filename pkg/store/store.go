// Package store persists daybook state as text values in a key-value store.
package store

import (
	"errors"
	"fmt"
	"strings"
)

// Keys under which daybook keeps its state. The three collections are stored
// independently so a malformed value only loses its own collection.
const (
	KeyNotes  = "notes"
	KeyTasks  = "tasks"
	KeyHabits = "habits"
	KeyTheme  = "theme"
	KeyPIN    = "pin"
)

// ErrNotFound is returned by Read when nothing is stored under a key.
var ErrNotFound = errors.New("store: key not found")

// Storage defines the persistence contract. Writes are synchronous: once
// Write returns nil a subsequent Read observes the value.
type Storage interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
	Erase(key string) error
	Keys() ([]string, error)
	Close() error
}

// Backend names a Storage implementation.
type Backend string

const (
	BackendDiskv  Backend = "diskv"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Options selects and locates a backend.
type Options struct {
	Backend Backend
	Path    string
}

// Open creates the Storage described by opts.
func Open(opts Options) (Storage, error) {
	switch Backend(strings.ToLower(string(opts.Backend))) {
	case "", BackendDiskv:
		return NewDiskv(opts.Path)
	case BackendSQLite:
		return NewSQLite(opts.Path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", opts.Backend)
	}
}
