// Package jsonfile persists stock as a single JSON object of item -> quantity.
// Key order is preserved on read and write; writes are atomic.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/mesh-intelligence/stockpile/pkg/types"
)

// Backend implements types.Backend for JSON object files.
type Backend struct{}

// New returns a JSON file backend.
func New() *Backend {
	return &Backend{}
}

// Load reads path and decodes it as an ordered JSON object of item names to
// non-negative integers. A duplicated key keeps its first position and its
// last value.
func (b *Backend) Load(path string) ([]types.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, types.ErrFileNotFound
		}
		return nil, fmt.Errorf("%w: %v", types.ErrRead, err)
	}
	items, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMalformed, err)
	}
	return items, nil
}

// Save encodes items as a 2-space indented JSON object and writes it to path
// using the temp-file, fsync, rename pattern.
func (b *Backend) Save(path string, items []types.Item) error {
	data, err := encode(items)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrWrite, err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %v", types.ErrWrite, err)
	}
	return nil
}

func decode(data []byte) ([]types.Item, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	var items []types.Item
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an item name, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("item %q: %w", name, err)
		}
		qty, err := strconv.Atoi(string(raw))
		if err != nil {
			return nil, fmt.Errorf("item %q: quantity %s is not an integer", name, raw)
		}
		if qty < 0 {
			return nil, fmt.Errorf("item %q: quantity %d is negative", name, qty)
		}

		if i, seen := index[name]; seen {
			items[i].Quantity = qty
			continue
		}
		index[name] = len(items)
		items = append(items, types.Item{Name: name, Quantity: qty})
	}

	// Closing brace, then nothing but whitespace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON object")
	}
	return items, nil
}

func encode(items []types.Item) ([]byte, error) {
	if len(items) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, it := range items {
		key, err := marshalString(it.Name)
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.WriteString(strconv.Itoa(it.Quantity))
		if i < len(items)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

// marshalString encodes s as a JSON string without HTML escaping.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
