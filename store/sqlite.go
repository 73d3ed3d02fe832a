package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/etnz/moneypool"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps groups in a SQLite database, one row per group holding
// its whole JSON document. Several groups can share a database; each store
// value works on the group named by its key.
type SQLiteStore struct {
	db     *sql.DB
	key    string
	format pool.Format
}

// NewSQLiteStore opens (or creates) the database at dbPath and migrates it.
func NewSQLiteStore(dbPath, key string, format pool.Format) (*SQLiteStore, error) {
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("a group key is required")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteStore{db: db, key: key, format: format}, nil
}

// Key returns the key of the group this store works on.
func (s *SQLiteStore) Key() string { return s.key }

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load decodes the document stored under the store key.
func (s *SQLiteStore) Load(ctx context.Context) (*pool.Group, error) {
	var document string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM groups WHERE key = ?`, s.key).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no group %q", ErrNotFound, s.key)
	}
	if err != nil {
		return nil, fmt.Errorf("select group %q: %w", s.key, err)
	}
	g, err := pool.DecodeGroup(strings.NewReader(document), s.format)
	if err != nil {
		return nil, fmt.Errorf("decode group %q: %w", s.key, err)
	}
	slog.DebugContext(ctx, "group loaded", "key", s.key, "members", g.NumberOfMembers())
	return g, nil
}

// Save inserts or replaces the document stored under the store key.
func (s *SQLiteStore) Save(ctx context.Context, g *pool.Group) error {
	var buf bytes.Buffer
	if err := pool.EncodeGroup(&buf, g, s.format); err != nil {
		return fmt.Errorf("encode group: %w", err)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO groups (key, name, document, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			name = excluded.name,
			document = excluded.document,
			updated_at = excluded.updated_at`,
		s.key, g.Name(), buf.String(), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save group %q: %w", s.key, err)
	}
	slog.DebugContext(ctx, "group saved", "key", s.key, "bytes", buf.Len())
	return nil
}

// Keys lists the groups stored in the database, sorted.
func (s *SQLiteStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM groups ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan group key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
