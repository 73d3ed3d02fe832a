// Package store persists groups as whole documents.
//
// A store never merges: Save replaces the stored document with the current
// state of the group and Load rebuilds the group from it.
package store

import (
	"context"
	"errors"

	"github.com/etnz/moneypool"
)

// ErrNotFound is returned by Load when nothing was saved yet.
var ErrNotFound = errors.New("group not found")

// Store loads and saves one group.
type Store interface {
	Load(ctx context.Context) (*pool.Group, error)
	Save(ctx context.Context, g *pool.Group) error
	Close() error
}
