package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockpile/internal/inventory"
	"github.com/mesh-intelligence/stockpile/pkg/stockpile"
	"github.com/mesh-intelligence/stockpile/pkg/types"
)

// newStore returns an empty store wired to the configured backend and the
// invocation logger.
func (a *app) newStore() (*inventory.Store, error) {
	backend, err := stockpile.NewBackend(a.cfg.Backend)
	if err != nil {
		return nil, userError(err)
	}
	return inventory.New(inventory.WithBackend(backend), inventory.WithLogger(a.logger)), nil
}

// openStore returns a store loaded from the configured data file. A missing
// file yields an empty store; the store logs the warning itself.
func (a *app) openStore() (*inventory.Store, error) {
	s, err := a.newStore()
	if err != nil {
		return nil, err
	}
	if err := s.Load(a.cfg.DataFile); err != nil && !types.IsWarning(err) {
		return nil, sysError(err)
	}
	return s, nil
}

// saveStore writes the store back to the configured data file.
func (a *app) saveStore(s *inventory.Store) error {
	if err := s.Save(a.cfg.DataFile); err != nil {
		return sysError(err)
	}
	return nil
}

// reportError logs a non-fatal operation error at a level matching its kind.
func (a *app) reportError(msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("kind", string(types.KindOf(err))), zap.Error(err))
	if types.IsWarning(err) {
		a.logger.Warn(msg, fields...)
		return
	}
	a.logger.Error(msg, fields...)
}

// reportResults logs every failed result and returns how many failed.
func (a *app) reportResults(results []inventory.Result) int {
	failed := inventory.Failed(results)
	for _, r := range failed {
		a.reportError("operation rejected", r.Err,
			zap.Int("step", r.Index+1),
			zap.String("op", r.Op.Op))
	}
	return len(failed)
}

// logEntries emits add log entries at debug level.
func (a *app) logEntries(log types.Log) {
	for _, entry := range log {
		a.logger.Debug(entry)
	}
}

// parseQuantity converts a command-line add quantity. Failures carry the same
// validation kind as the store's own check.
func parseQuantity(op, item, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		e := types.NewError(op, fmt.Errorf("%w, got %q", types.ErrInvalidQuantity, arg))
		e.Item = item
		return 0, e
	}
	return n, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal JSON: %w", err))
	}
	fmt.Fprintln(w, string(out))
	return nil
}
