package blacklist

import (
	"context"
	"fmt"
	"sync"

	"github.com/nao1215/passcheck/internal/database"
)

// IndexStore looks passwords up in the SQLite index. The index is opened
// read-only on the first query; a missing index makes the store unavailable.
type IndexStore struct {
	dir string

	once sync.Once
	db   *database.BlacklistDB
	err  error
}

// NewIndexStore creates an IndexStore for the index in dir.
func NewIndexStore(dir string) *IndexStore {
	return &IndexStore{dir: dir}
}

// Contains implements Store.
func (s *IndexStore) Contains(ctx context.Context, password string) (bool, error) {
	s.once.Do(func() {
		s.db, s.err = database.Open(s.dir, database.ReadOnlyOptions())
		if s.err != nil {
			s.err = fmt.Errorf("%w: %w", ErrUnavailable, s.err)
		}
	})
	if s.err != nil {
		return false, s.err
	}

	found, err := s.db.Contains(ctx, password)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return found, nil
}

// Close releases the index connection if it was opened.
func (s *IndexStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
