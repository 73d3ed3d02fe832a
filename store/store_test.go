package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/moneypool"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// newGroup builds a small group with a purchase and a transfer.
func newGroup(t *testing.T) *pool.Group {
	t.Helper()
	g, err := pool.NewGroup("Weekend", "Cabin trip", pool.EUR)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.SetExchangeRate(pool.CHF, decimal.RequireFromString("0.95")); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Alice", "Bob"} {
		if _, err := g.AddMember(name); err != nil {
			t.Fatal(err)
		}
	}
	date, _ := pool.DefaultFormat.ParseStamp("14.03.2025")
	if _, err := g.AddPurchase("Groceries", "Alice", []string{"Alice", "Bob"}, decimal.RequireFromString("57.3"), pool.CHF, date); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddTransfer("Refund", "Bob", "Alice", decimal.NewFromInt(10), pool.EUR, date); err != nil {
		t.Fatal(err)
	}
	return g
}

// encoded returns the canonical document of g.
func encoded(t *testing.T, g *pool.Group) string {
	t.Helper()
	var buf bytes.Buffer
	if err := pool.EncodeGroup(&buf, g, pool.DefaultFormat); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func testStore(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.Load(ctx)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() on an empty store got error %v, want ErrNotFound", err)
	}

	g := newGroup(t)
	if err := s.Save(ctx, g); err != nil {
		t.Fatalf("Save() returned an unexpected error: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if diff := cmp.Diff(encoded(t, g), encoded(t, got)); diff != "" {
		t.Errorf("loaded group mismatch (-want +got):\n%s", diff)
	}

	// Save replaces the previous document.
	if _, err := got.AddMember("Carol"); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, got); err != nil {
		t.Fatalf("second Save() returned an unexpected error: %v", err)
	}
	again, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"Alice", "Bob", "Carol"}, again.MemberNames()); diff != "" {
		t.Errorf("MemberNames() after second save mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pool.json")
	s := NewFileStore(path, pool.DefaultFormat)
	defer s.Close()

	testStore(t, s)

	// No temporary file is left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d files next to the document, want 1", len(entries))
	}
}

func TestFileStore_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.json")
	if err := os.WriteFile(path, []byte(`{"name": "x"}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileStore(path, pool.DefaultFormat).Load(context.Background())

	var ferr *pool.FormatError
	if !errors.As(err, &ferr) {
		t.Errorf("Load() of a corrupted file got error %v, want a *pool.FormatError", err)
	}
}

func TestSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "psplit.db")
	s, err := NewSQLiteStore(dbPath, "weekend", pool.DefaultFormat)
	if err != nil {
		t.Fatalf("NewSQLiteStore() returned an unexpected error: %v", err)
	}
	defer s.Close()

	testStore(t, s)

	// A second group in the same database, reopened to run the migrations again.
	other, err := NewSQLiteStore(dbPath, "office", pool.DefaultFormat)
	if err != nil {
		t.Fatalf("NewSQLiteStore() on an existing database returned an unexpected error: %v", err)
	}
	defer other.Close()
	if err := other.Save(context.Background(), newGroup(t)); err != nil {
		t.Fatal(err)
	}

	keys, err := s.Keys(context.Background())
	if err != nil {
		t.Fatalf("Keys() returned an unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"office", "weekend"}, keys); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if s.Key() != "weekend" || other.Key() != "office" {
		t.Errorf("Key() got %q and %q, want weekend and office", s.Key(), other.Key())
	}
}

func TestNewSQLiteStore_RequiresKey(t *testing.T) {
	if _, err := NewSQLiteStore(filepath.Join(t.TempDir(), "x.db"), " ", pool.DefaultFormat); err == nil {
		t.Error("NewSQLiteStore() with a blank key expected an error, got nil")
	}
}
