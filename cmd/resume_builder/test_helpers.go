package main

import (
	"os"
	"path/filepath"
	"testing"
)

// builtBinary locates the compiled CLI used by the end-to-end command tests.
func builtBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("end-to-end CLI tests need the built binary; not run with -short")
	}

	path := filepath.Join("..", "..", "bin", "resume_builder")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("no CLI binary at %s (go build -o bin/resume_builder ./cmd/resume_builder)", path)
	}
	return path
}
