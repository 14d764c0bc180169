package blacklist

import (
	"context"
	"fmt"
)

// Store answers whether a password is an entry of a blacklist.
// Implementations compare exactly and case-sensitively and wrap
// ErrUnavailable when the source cannot be read.
type Store interface {
	Contains(ctx context.Context, password string) (bool, error)
}

// Backend names a Store implementation.
type Backend string

const (
	// BackendFile reads the list file on every query.
	BackendFile Backend = "file"

	// BackendMemory loads the list file once into memory.
	BackendMemory Backend = "memory"

	// BackendIndex queries the SQLite index.
	BackendIndex Backend = "index"
)

// ParseBackend validates a backend name. The empty string selects BackendFile.
func ParseBackend(name string) (Backend, error) {
	switch Backend(name) {
	case "", BackendFile:
		return BackendFile, nil
	case BackendMemory:
		return BackendMemory, nil
	case BackendIndex:
		return BackendIndex, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// NewStore creates the Store for backend. path is the list file used by the
// file and memory backends; indexDir is the directory of the SQLite index.
func NewStore(backend Backend, path, indexDir string) (Store, error) {
	switch backend {
	case "", BackendFile:
		return NewFileStore(path), nil
	case BackendMemory:
		return NewMemoryStore(path), nil
	case BackendIndex:
		return NewIndexStore(indexDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, string(backend))
	}
}
