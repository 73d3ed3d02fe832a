package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/etnz/moneypool"
)

// FileStore keeps the group as an indented JSON file.
type FileStore struct {
	path   string
	format pool.Format
}

// NewFileStore returns a store for the document at path.
func NewFileStore(path string, format pool.Format) *FileStore {
	return &FileStore{path: path, format: format}
}

// Path returns the document path.
func (s *FileStore) Path() string { return s.path }

// Load decodes the document. It returns an error wrapping ErrNotFound when
// the file does not exist.
func (s *FileStore) Load(ctx context.Context) (*pool.Group, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: no file %q", ErrNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("open group file: %w", err)
	}
	defer f.Close()

	g, err := pool.DecodeGroup(f, s.format)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", s.path, err)
	}
	slog.DebugContext(ctx, "group loaded", "path", s.path, "members", g.NumberOfMembers())
	return g, nil
}

// Save writes the document next to its destination then renames it, so that
// a failed write never leaves a truncated document behind.
func (s *FileStore) Save(ctx context.Context, g *pool.Group) error {
	var buf bytes.Buffer
	if err := pool.EncodeGroup(&buf, g, s.format); err != nil {
		return fmt.Errorf("encode group: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temporary file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %q: %w", s.path, err)
	}
	slog.DebugContext(ctx, "group saved", "path", s.path, "bytes", buf.Len())
	return nil
}

func (s *FileStore) Close() error { return nil }
