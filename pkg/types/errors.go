package types

import (
	"errors"
	"strconv"
	"strings"
)

// Operation errors. Every store operation wraps one of these in an *Error.
var (
	ErrInvalidItem         = errors.New("item name must be a string")
	ErrInvalidQuantity     = errors.New("quantity must be a non-negative integer")
	ErrInvalidOperation    = errors.New("unknown operation")
	ErrItemNotFound        = errors.New("item not found in inventory")
	ErrInvalidQuantityType = errors.New("invalid quantity type")
	ErrFileNotFound        = errors.New("file not found, starting with empty inventory")
	ErrMalformed           = errors.New("malformed inventory data")
	ErrRead                = errors.New("reading inventory data")
	ErrWrite               = errors.New("saving inventory data")
)

// Kind classifies an operation error.
type Kind string

// Error kinds.
const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindQuantityType Kind = "invalid_quantity_type"
	KindFileNotFound Kind = "file_not_found"
	KindParse        Kind = "parse"
	KindIO           Kind = "io"
)

// sentinelKinds maps each sentinel to its kind. Order matters only in that
// each sentinel appears once.
var sentinelKinds = []struct {
	err  error
	kind Kind
}{
	{ErrInvalidItem, KindValidation},
	{ErrInvalidQuantity, KindValidation},
	{ErrInvalidOperation, KindValidation},
	{ErrItemNotFound, KindNotFound},
	{ErrInvalidQuantityType, KindQuantityType},
	{ErrFileNotFound, KindFileNotFound},
	{ErrMalformed, KindParse},
	{ErrRead, KindIO},
	{ErrWrite, KindIO},
}

// Error is the structured failure returned by store operations. It names the
// operation, the item or path involved, and wraps a sentinel from this
// package so callers can use errors.Is.
type Error struct {
	Kind Kind
	Op   string // add, remove, load, save
	Item string // set for item operations
	Path string // set for persistence operations
	Err  error
}

// NewError builds an *Error whose Kind is derived from the sentinel wrapped
// by err.
func NewError(op string, err error) *Error {
	return &Error{Kind: kindOfSentinel(err), Op: op, Err: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Item != "" {
		b.WriteString(" ")
		b.WriteString(strconv.Quote(e.Item))
	}
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or "" if err carries no known sentinel.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Kind != "" {
		return e.Kind
	}
	return kindOfSentinel(err)
}

// IsWarning reports whether err is non-fatal and only worth a warning.
func IsWarning(err error) bool {
	return KindOf(err) == KindFileNotFound
}

func kindOfSentinel(err error) Kind {
	for _, sk := range sentinelKinds {
		if errors.Is(err, sk.err) {
			return sk.kind
		}
	}
	return ""
}
