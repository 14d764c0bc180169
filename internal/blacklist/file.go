package blacklist

import (
	"context"
	"fmt"
	"os"

	"github.com/nao1215/passcheck/internal/listfile"
)

// FileStore looks passwords up by scanning a list file.
// The file is opened and closed on every call, so edits to the file are
// visible immediately.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for the list at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Contains implements Store.
func (s *FileStore) Contains(ctx context.Context, password string) (bool, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer f.Close()

	r := listfile.NewReader(f)
	for {
		if err := ctx.Err(); err != nil {
			return false, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		if !r.Next() {
			break
		}
		if r.Entry() == password {
			return true, nil
		}
	}
	if err := r.Err(); err != nil {
		return false, fmt.Errorf("%w: failed to read %s: %w", ErrUnavailable, s.path, err)
	}
	return false, nil
}
