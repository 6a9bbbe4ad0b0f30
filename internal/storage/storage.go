package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// AferoStore implements Store on an afero filesystem. The CLI passes the OS
// filesystem; tests pass afero.NewMemMapFs.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// Save writes reader to path, creating parent directories. The content goes
// to a temporary file in the same directory first, so an interrupted write
// never leaves a truncated file at path.
func (s *AferoStore) Save(ctx context.Context, path string, reader io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("storage: creating %s: %w", dir, err)
	}
	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, fmt.Errorf("storage: %w", err)
	}
	n, err := io.Copy(tmp, reader)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = s.fs.Remove(tmp.Name())
		return 0, fmt.Errorf("storage: writing %s: %w", path, err)
	}
	if err := s.fs.Rename(tmp.Name(), path); err != nil {
		_ = s.fs.Remove(tmp.Name())
		return 0, fmt.Errorf("storage: %w", err)
	}
	return n, nil
}

// Delete removes the file at path.
func (s *AferoStore) Delete(ctx context.Context, path string) error {
	return s.fs.Remove(path)
}

// Open opens the file at path for reading.
func (s *AferoStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.fs.OpenFile(path, os.O_RDONLY, 0)
}
