// Package inventory implements the Stockpile inventory store: an ordered
// mapping from item names to non-negative quantities with add, remove, query,
// persistence and reporting operations.
//
// A Store is owned by a single caller and is not safe for concurrent use.
package inventory

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockpile/internal/storage/jsonfile"
	"github.com/mesh-intelligence/stockpile/pkg/types"
)

// DefaultLowThreshold is the LowItems threshold used by callers that have no
// configured value.
const DefaultLowThreshold = types.DefaultLowThreshold

// logTimeLayout formats the timestamp prefix of add log entries.
const logTimeLayout = "2006-01-02 15:04:05.000000"

// Store holds the stock. The zero value is not usable; call New.
type Store struct {
	stock map[string]int
	order []string // insertion order of the keys in stock

	backend types.Backend
	logger  *zap.Logger
	now     func() time.Time
}

var _ types.Inventory = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug and warning output.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBackend sets the persistence backend used by Load and Save.
// The default is the JSON file backend.
func WithBackend(b types.Backend) Option {
	return func(s *Store) {
		if b != nil {
			s.backend = b
		}
	}
}

// WithClock sets the time source for add log entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		stock:   make(map[string]int),
		backend: jsonfile.New(),
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add increases the quantity of item by quantity.
func (s *Store) Add(item string, quantity int, log types.LogSink) error {
	if quantity < 0 {
		err := types.NewError("add", fmt.Errorf("%w, got %d", types.ErrInvalidQuantity, quantity))
		err.Item = item
		return err
	}
	if item == "" {
		return nil
	}
	if quantity > math.MaxInt-s.stock[item] {
		err := types.NewError("add", fmt.Errorf("%w, %d overflows the stock of %d", types.ErrInvalidQuantity, quantity, s.stock[item]))
		err.Item = item
		return err
	}

	total := s.stock[item] + quantity
	if total > 0 {
		s.set(item, total)
	}
	if log != nil {
		log.Append(fmt.Sprintf("%s: Added %d of %s", s.now().Format(logTimeLayout), quantity, item))
	}
	s.logger.Debug("added stock",
		zap.String("item", item),
		zap.Int("quantity", quantity),
		zap.Int("total", total))
	return nil
}

// AddValue validates loosely typed input and then behaves like Add. The
// quantity must be an integer value; floats are rejected even when integral.
func (s *Store) AddValue(item, quantity any, log types.LogSink) error {
	name, ok := item.(string)
	if !ok {
		err := types.NewError("add", fmt.Errorf("%w, got %T", types.ErrInvalidItem, item))
		err.Item = fmt.Sprint(item)
		return err
	}
	n, ok := toStrictInt(quantity)
	if !ok || n < 0 {
		err := types.NewError("add", fmt.Errorf("%w, got %v", types.ErrInvalidQuantity, quantity))
		err.Item = name
		return err
	}
	return s.Add(name, n, log)
}

// Remove subtracts quantity from item, deleting the item when nothing is
// left. Removing more than is held is allowed.
func (s *Store) Remove(item string, quantity int) error {
	current, ok := s.stock[item]
	if !ok {
		err := types.NewError("remove", types.ErrItemNotFound)
		err.Item = item
		return err
	}
	if quantity < 0 && current > math.MaxInt+quantity {
		err := types.NewError("remove", fmt.Errorf("%w, removing %d overflows the stock of %d", types.ErrInvalidQuantity, quantity, current))
		err.Item = item
		return err
	}

	left := current - quantity
	if left <= 0 {
		s.delete(item)
		s.logger.Debug("removed item", zap.String("item", item), zap.Int("quantity", quantity))
		return nil
	}
	s.stock[item] = left
	s.logger.Debug("removed stock",
		zap.String("item", item),
		zap.Int("quantity", quantity),
		zap.Int("total", left))
	return nil
}

// RemoveValue behaves like Remove for loosely typed input. The item is
// looked up before the quantity is checked.
func (s *Store) RemoveValue(item, quantity any) error {
	name, ok := item.(string)
	if !ok || !s.has(name) {
		err := types.NewError("remove", types.ErrItemNotFound)
		err.Item = fmt.Sprint(item)
		return err
	}
	n, ok := toInt(quantity)
	if !ok {
		err := types.NewError("remove", fmt.Errorf("%w: %v", types.ErrInvalidQuantityType, quantity))
		err.Item = name
		return err
	}
	return s.Remove(name, n)
}

// Quantity returns the stored quantity of item, or 0.
func (s *Store) Quantity(item string) int {
	return s.stock[item]
}

// LowItems returns the items whose quantity is below threshold.
func (s *Store) LowItems(threshold int) []string {
	var low []string
	for _, item := range s.order {
		if s.stock[item] < threshold {
			low = append(low, item)
		}
	}
	return low
}

// Items returns the stock in insertion order.
func (s *Store) Items() []types.Item {
	items := make([]types.Item, 0, len(s.order))
	for _, item := range s.order {
		items = append(items, types.Item{Name: item, Quantity: s.stock[item]})
	}
	return items
}

// Len returns the number of items held.
func (s *Store) Len() int {
	return len(s.order)
}

// Load replaces the stock with the contents of path. A missing file leaves
// the store empty; any other failure leaves it untouched.
func (s *Store) Load(path string) error {
	items, err := s.backend.Load(path)
	if err != nil {
		if errors.Is(err, types.ErrFileNotFound) {
			s.reset()
			s.logger.Warn("inventory file not found, starting with empty inventory", zap.String("path", path))
		}
		e := types.NewError("load", err)
		e.Path = path
		return e
	}

	s.reset()
	for _, it := range items {
		if it.Name == "" || it.Quantity <= 0 {
			continue
		}
		s.set(it.Name, it.Quantity)
	}
	s.logger.Debug("loaded inventory", zap.String("path", path), zap.Int("items", s.Len()))
	return nil
}

// Save writes the stock to path.
func (s *Store) Save(path string) error {
	if err := s.backend.Save(path, s.Items()); err != nil {
		e := types.NewError("save", err)
		e.Path = path
		return e
	}
	s.logger.Debug("saved inventory", zap.String("path", path), zap.Int("items", s.Len()))
	return nil
}

func (s *Store) has(item string) bool {
	_, ok := s.stock[item]
	return ok
}

func (s *Store) set(item string, quantity int) {
	if !s.has(item) {
		s.order = append(s.order, item)
	}
	s.stock[item] = quantity
}

func (s *Store) delete(item string) {
	delete(s.stock, item)
	for i, name := range s.order {
		if name == item {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

func (s *Store) reset() {
	s.stock = make(map[string]int)
	s.order = nil
}
