package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Local implements FileStore on the local filesystem.
type Local struct {
	baseDir string
}

// NewLocal creates a local store. Relative paths resolve against baseDir, or the
// working directory when baseDir is empty.
func NewLocal(baseDir string) *Local {
	return &Local{baseDir: baseDir}
}

func (s *Local) resolve(path string) string {
	if s.baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.baseDir, path)
}

// ReadFile reads the whole file at path.
func (s *Local) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FileError{Op: "read", Path: path, Cause: err}
	}

	data, err := os.ReadFile(s.resolve(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound("read", path, err)
		}
		return nil, &FileError{Op: "read", Path: path, Cause: err}
	}
	return data, nil
}

// WriteFile writes data to path, creating parent directories as needed.
func (s *Local) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return &FileError{Op: "write", Path: path, Cause: err}
	}

	fullPath := s.resolve(path)
	if dir := filepath.Dir(fullPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &FileError{Op: "write", Path: path, Cause: err}
		}
	}

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return &FileError{Op: "write", Path: path, Cause: err}
	}
	return nil
}
