// ABOUTME: File store for the JSON documents under the app data directory
// ABOUTME: Resolves paths, reads optional files, and overwrites via temp+rename
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	// WordsFile holds the vocabulary list.
	WordsFile = "words.json"

	// DatesFile holds the per-day activity counters.
	DatesFile = "date.json"
)

// Files resolves and accesses documents under a single data directory.
type Files struct {
	dataDir string
}

// NewFiles returns a file store rooted at dataDir.
func NewFiles(dataDir string) *Files {
	return &Files{dataDir: dataDir}
}

// DataDir returns the root directory.
func (f *Files) DataDir() string {
	return f.dataDir
}

// Path returns the path of a logical file name under the data directory.
func (f *Files) Path(name string) string {
	return filepath.Join(f.dataDir, name)
}

// Read returns the file contents, or ok=false when the file does not exist.
func (f *Files) Read(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is built from the configured data directory
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to read file: %w", ErrIO, err)
	}
	return data, true, nil
}

// Write replaces the file at path with data, creating missing parent
// directories. The data lands in a temporary sibling first and is renamed
// over the target, so readers never see a partial document.
func (f *Files) Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return fmt.Errorf("%w: failed to create directory: %w", ErrIO, err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil { //nolint:gosec // User data file, not a secret
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: failed to write file: %w", ErrIO, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: failed to write file: %w", ErrIO, err)
	}

	return nil
}
