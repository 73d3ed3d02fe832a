// Package cmd implements the psplit command line application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/etnz/moneypool"
	"github.com/etnz/moneypool/logging"
	"github.com/etnz/moneypool/store"
)

// Environment variables providing the defaults of the global flags. They can
// also be set in a .env file.
const (
	EnvFile     = "PSPLIT_FILE"
	EnvStore    = "PSPLIT_STORE"
	EnvDB       = "PSPLIT_DB"
	EnvGroup    = "PSPLIT_GROUP"
	EnvLogLevel = "LOG_LEVEL"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var groupFile = flag.String("f", "", "Path to the group document (JSON). Defaults to $"+EnvFile+" or pool.json")
var storeKind = flag.String("store", "", "Storage backend: file or sqlite. Defaults to $"+EnvStore+" or file")
var dbPath = flag.String("db", "", "Path to the SQLite database. Defaults to $"+EnvDB+" or psplit.db")
var groupKey = flag.String("g", "", "Group key in the SQLite database. Defaults to $"+EnvGroup+" or default")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "Enable debug logs")

// where commands read and write, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// format is how stamps are written in documents.
var format = pool.DefaultFormat

// setting returns the flag value, then the environment value, then def.
func setting(flagValue *string, env, def string) string {
	if *flagValue != "" {
		return *flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// GroupFile returns the path of the group document.
func GroupFile() string { return setting(groupFile, EnvFile, "pool.json") }

// StoreKind returns the selected storage backend.
func StoreKind() string { return setting(storeKind, EnvStore, "file") }

// DBPath returns the path of the SQLite database.
func DBPath() string { return setting(dbPath, EnvDB, "psplit.db") }

// GroupKey returns the key of the group in the SQLite database.
func GroupKey() string { return setting(groupKey, EnvGroup, "default") }

// SetupLogging installs the default logger once flags are parsed.
func SetupLogging() {
	if *Verbose {
		logging.SetupWithLevel(slog.LevelDebug)
		return
	}
	logging.Setup()
}

// OpenStore opens the configured store.
func OpenStore() (store.Store, error) {
	switch kind := StoreKind(); kind {
	case "file":
		return store.NewFileStore(GroupFile(), format), nil
	case "sqlite":
		return store.NewSQLiteStore(DBPath(), GroupKey(), format)
	default:
		return nil, fmt.Errorf("unknown store %q, want file or sqlite", kind)
	}
}

// LoadGroup opens the store and loads its group. The caller must close the
// returned store.
func LoadGroup(ctx context.Context) (store.Store, *pool.Group, error) {
	s, err := OpenStore()
	if err != nil {
		return nil, nil, err
	}
	g, err := s.Load(ctx)
	if errors.Is(err, store.ErrNotFound) {
		s.Close()
		return nil, nil, fmt.Errorf("%w (run 'psplit init' first)", err)
	}
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	return s, g, nil
}

// update loads the group, applies change and saves the group back when
// change succeeds.
func update(ctx context.Context, change func(g *pool.Group) error) error {
	s, g, err := LoadGroup(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := change(g); err != nil {
		return err
	}
	if err := s.Save(ctx, g); err != nil {
		return fmt.Errorf("save group: %w", err)
	}
	slog.DebugContext(ctx, "group updated", "name", g.Name())
	return nil
}
