package types

import "io"

// Inventory defines the operations over a single item -> quantity mapping.
// Implementations are not safe for concurrent use; one caller owns a store.
type Inventory interface {
	// Add increases the quantity of item. A negative quantity returns
	// ErrInvalidQuantity. An empty item is ignored without error. When log
	// is non-nil a timestamped "Added <n> of <item>" entry is appended.
	Add(item string, quantity int, log LogSink) error

	// AddValue is Add for loosely typed input such as decoded scripts.
	// A non-string item returns ErrInvalidItem; a quantity that is not a
	// non-negative integer returns ErrInvalidQuantity.
	AddValue(item, quantity any, log LogSink) error

	// Remove subtracts quantity from item and deletes the item once the
	// result is zero or below. Returns ErrItemNotFound if item is absent.
	Remove(item string, quantity int) error

	// RemoveValue is Remove for loosely typed input. A quantity that is not
	// an integral number returns ErrInvalidQuantityType.
	RemoveValue(item, quantity any) error

	// Quantity returns the stored quantity of item, or 0 when absent.
	Quantity(item string) int

	// LowItems returns, in insertion order, every item whose quantity is
	// strictly below threshold.
	LowItems(threshold int) []string

	// Items returns an ordered snapshot of the stock.
	Items() []Item

	// Len returns the number of stored items.
	Len() int

	// Load replaces the stock with the contents of path. A missing file
	// empties the store and returns ErrFileNotFound (a warning); malformed
	// content returns ErrMalformed and leaves the store unchanged.
	Load(path string) error

	// Save writes the stock to path, overwriting existing content.
	// Returns ErrWrite on failure; the in-memory stock is never affected.
	Save(path string) error

	// Report writes the bordered human-readable stock report to w.
	Report(w io.Writer) error
}

// Backend reads and writes an ordered stock snapshot at a path.
// Load returns ErrFileNotFound, ErrMalformed or ErrRead (wrapped);
// Save returns ErrWrite (wrapped).
type Backend interface {
	Load(path string) ([]Item, error)
	Save(path string, items []Item) error
}
