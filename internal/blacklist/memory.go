package blacklist

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/nao1215/passcheck/internal/listfile"
)

// MemoryStore loads the list file on the first query and serves every later
// query from an in-memory set. A failed load is remembered and returned from
// every call, unless it failed because the caller's context ended; the next
// caller then loads again.
type MemoryStore struct {
	path string

	mu      sync.Mutex
	loaded  bool
	entries map[string]struct{}
	err     error
}

// NewMemoryStore creates a MemoryStore for the list at path.
func NewMemoryStore(path string) *MemoryStore {
	return &MemoryStore{path: path}
}

// Contains implements Store. It is safe for concurrent use.
func (s *MemoryStore) Contains(ctx context.Context, password string) (bool, error) {
	entries, err := s.set(ctx)
	if err != nil {
		return false, err
	}
	_, ok := entries[password]
	return ok, nil
}

// set returns the loaded entries, loading them if needed.
// Concurrent first callers wait for a single load.
func (s *MemoryStore) set(ctx context.Context) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.entries, s.err
	}

	entries, err := s.load(ctx)
	if err != nil && ctx.Err() != nil {
		return nil, err
	}
	s.entries, s.err, s.loaded = entries, err, true
	return entries, err
}

func (s *MemoryStore) load(ctx context.Context) (map[string]struct{}, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer f.Close()

	entries := make(map[string]struct{})
	r := listfile.NewReader(f)
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		if !r.Next() {
			break
		}
		entries[r.Entry()] = struct{}{}
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrUnavailable, s.path, err)
	}
	return entries, nil
}
