// Package stockpile provides the public API for the Stockpile inventory store.
// It exposes the store and backend factories while keeping implementation
// details internal.
package stockpile

import (
	"fmt"

	"github.com/mesh-intelligence/stockpile/internal/inventory"
	"github.com/mesh-intelligence/stockpile/internal/storage/jsonfile"
	"github.com/mesh-intelligence/stockpile/internal/storage/sqlite"
	"github.com/mesh-intelligence/stockpile/pkg/types"
)

// Version is the Stockpile release version.
const Version = "0.1.0"

// Option configures an inventory created by New.
type Option = inventory.Option

// Store options.
var (
	WithLogger  = inventory.WithLogger
	WithBackend = inventory.WithBackend
	WithClock   = inventory.WithClock
)

// New creates an empty inventory persisted through the JSON backend unless
// WithBackend says otherwise.
//
// Example:
//
//	inv := stockpile.New()
//	if err := inv.Load("inventory.json"); err != nil && !types.IsWarning(err) {
//	    return err
//	}
//	_ = inv.Add("apple", 10, nil)
//	return inv.Save("inventory.json")
func New(opts ...Option) types.Inventory {
	return inventory.New(opts...)
}

// NewBackend returns the persistence backend registered under name.
// Returns ErrBackendUnknown for names other than "json" and "sqlite".
func NewBackend(name string) (types.Backend, error) {
	switch name {
	case types.BackendJSON:
		return jsonfile.New(), nil
	case types.BackendSQLite:
		return sqlite.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, name)
	}
}
