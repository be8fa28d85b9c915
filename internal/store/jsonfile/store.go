// Package jsonfile persists the clipboard store as a single JSON document.
package jsonfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hay-kot/clipstash/internal/core/clip"
)

// File is the on-disk home of a Store. It is owned by a single process; there
// is no cross-process locking.
type File struct {
	path string
}

// New creates a File handle for the given path. Nothing is read or created
// until Load or Save is called.
func New(path string) *File {
	return &File{path: path}
}

// Path returns the data file location.
func (f *File) Path() string {
	return f.path
}

// Exists reports whether the data file is present. Callers use it to decide
// between Load and starting with an empty Store.
func (f *File) Exists() (bool, error) {
	_, err := os.Stat(f.path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w: %w", f.path, clip.ErrIO, err)
	}
}

// Load reads and parses the data file. A zero-length file yields an empty
// Store. Returns clip.ErrCorruptData when the content has the wrong shape.
func (f *File) Load() (*clip.Store, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w: %w", clip.ErrIO, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return clip.NewStore(), nil
	}

	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return s, nil
}

// Save writes s to disk atomically.
// Uses write-to-temp-then-rename so a reader never observes a partial file.
func (f *File) Save(s *clip.Store) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w: %w", clip.ErrIO, err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write temp file: %w: %w", clip.ErrIO, err)
	}

	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp) // best effort cleanup
		return fmt.Errorf("rename temp file: %w: %w", clip.ErrIO, err)
	}

	return nil
}
