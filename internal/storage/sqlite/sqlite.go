// Package sqlite persists stock in a single-table SQLite database file.
// It offers the same contract as the JSON backend: a missing file is
// ErrFileNotFound, an unreadable database is ErrMalformed, and a failed write
// is ErrWrite.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/stockpile/pkg/types"
)

// Schema DDL for the stock table. Position keeps insertion order.
const (
	createStock = `CREATE TABLE IF NOT EXISTS stock (
    item TEXT PRIMARY KEY,
    quantity INTEGER NOT NULL CHECK (quantity >= 0),
    position INTEGER NOT NULL
);`

	selectStock = `SELECT item, quantity FROM stock ORDER BY position`
	deleteStock = `DELETE FROM stock`
	insertStock = `INSERT INTO stock (item, quantity, position) VALUES (?, ?, ?)`
)

// fileHeader starts every SQLite 3 database file.
const fileHeader = "SQLite format 3\x00"

// Backend implements types.Backend on SQLite files.
type Backend struct{}

// New returns a SQLite file backend.
func New() *Backend {
	return &Backend{}
}

// Load reads every row of the stock table in insertion order.
func (b *Backend) Load(path string) ([]types.Item, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, types.ErrFileNotFound
		}
		return nil, fmt.Errorf("%w: %v", types.ErrRead, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrRead, err)
	}
	defer db.Close()

	rows, err := db.Query(selectStock)
	if err != nil {
		// Not a database, or a database without a stock table.
		return nil, fmt.Errorf("%w: %v", types.ErrMalformed, err)
	}
	defer rows.Close()

	var items []types.Item
	for rows.Next() {
		var it types.Item
		if err := rows.Scan(&it.Name, &it.Quantity); err != nil {
			return nil, fmt.Errorf("%w: scanning stock row: %v", types.ErrMalformed, err)
		}
		if it.Quantity < 0 {
			return nil, fmt.Errorf("%w: item %q: quantity %d is negative", types.ErrMalformed, it.Name, it.Quantity)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMalformed, err)
	}
	return items, nil
}

// Save replaces the contents of the stock table with items in a single
// transaction, creating the file and schema if needed. An existing file that
// is not a SQLite database is left untouched and reported as ErrMalformed.
func (b *Backend) Save(path string, items []types.Item) error {
	if err := checkHeader(path); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrWrite, err)
	}
	defer db.Close()

	if err := replaceStock(db, items); err != nil {
		return fmt.Errorf("%w: %v", types.ErrWrite, err)
	}
	return nil
}

// checkHeader accepts a missing or empty file, or one that starts with the
// SQLite header.
func checkHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %v", types.ErrWrite, err)
	}
	defer f.Close()

	buf := make([]byte, len(fileHeader))
	n, err := io.ReadFull(f, buf)
	if n == 0 && errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", types.ErrWrite, err)
	}
	if string(buf[:n]) != fileHeader {
		return fmt.Errorf("%w: %s is not a SQLite database", types.ErrMalformed, path)
	}
	return nil
}

func replaceStock(db *sql.DB, items []types.Item) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(createStock); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	if _, err := tx.Exec(deleteStock); err != nil {
		return fmt.Errorf("clearing stock: %w", err)
	}

	stmt, err := tx.Prepare(insertStock)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, it := range items {
		if _, err := stmt.Exec(it.Name, it.Quantity, i); err != nil {
			return fmt.Errorf("inserting %q: %w", it.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}
