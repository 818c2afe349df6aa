// Package storage provides the file read/write collaborators used to load, save
// and export resume documents. Paths are either local filesystem paths or
// s3://bucket/key URIs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// FileStore reads and writes whole files by path.
type FileStore interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte) error
}

// ErrNotFound is wrapped by FileError when the path does not exist.
var ErrNotFound = errors.New("file not found")

// FileError represents an I/O failure on a path
type FileError struct {
	Op    string // "read" or "write"
	Path  string
	Cause error
}

func (e *FileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("file %s error: %s: %v", e.Op, e.Path, e.Cause)
	}
	return fmt.Sprintf("file %s error: %s", e.Op, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Cause
}

// NotFound reports whether the failure was a missing file.
func (e *FileError) NotFound() bool {
	return errors.Is(e.Cause, ErrNotFound)
}

// IsNotFound reports whether err is a FileError for a missing file.
func IsNotFound(err error) bool {
	var fileErr *FileError
	return errors.As(err, &fileErr) && fileErr.NotFound()
}

func notFound(op, path string, cause error) *FileError {
	return &FileError{Op: op, Path: path, Cause: errors.Join(ErrNotFound, cause)}
}

// S3Scheme prefixes object store paths.
const S3Scheme = "s3://"

// IsS3Path reports whether path is an s3:// URI.
func IsS3Path(path string) bool {
	return strings.HasPrefix(path, S3Scheme)
}

// ParseS3URI splits s3://bucket/key into bucket and key.
func ParseS3URI(uri string) (bucket, key string, err error) {
	if !IsS3Path(uri) {
		return "", "", fmt.Errorf("not an s3 uri: %s", uri)
	}
	rest := strings.TrimPrefix(uri, S3Scheme)
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || strings.Trim(key, "/") == "" {
		return "", "", fmt.Errorf("s3 uri must have bucket and key: %s", uri)
	}
	return bucket, strings.TrimPrefix(key, "/"), nil
}

// Router dispatches s3:// paths to S3 and everything else to Local.
type Router struct {
	Local FileStore
	S3    FileStore
}

// NewRouter returns a router over the local filesystem. s3 may be nil, in which
// case s3:// paths fail.
func NewRouter(s3 FileStore) *Router {
	return &Router{Local: NewLocal(""), S3: s3}
}

func (r *Router) pick(op, path string) (FileStore, error) {
	if IsS3Path(path) {
		if r.S3 == nil {
			return nil, &FileError{Op: op, Path: path, Cause: errors.New("s3 storage is not configured")}
		}
		return r.S3, nil
	}
	return r.Local, nil
}

// ReadFile reads path from the matching store.
func (r *Router) ReadFile(ctx context.Context, path string) ([]byte, error) {
	store, err := r.pick("read", path)
	if err != nil {
		return nil, err
	}
	return store.ReadFile(ctx, path)
}

// WriteFile writes path to the matching store.
func (r *Router) WriteFile(ctx context.Context, path string, data []byte) error {
	store, err := r.pick("write", path)
	if err != nil {
		return err
	}
	return store.WriteFile(ctx, path, data)
}
