package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stockpile/pkg/types"
)

// Operation names accepted in scripts.
const (
	OpAdd    = "add"
	OpRemove = "remove"
)

// Operation is one scripted add or remove. Item and Quantity are left
// untyped so that badly typed scripts reach the store's validation.
type Operation struct {
	Op       string `json:"op" yaml:"op"`
	Item     any    `json:"item" yaml:"item"`
	Quantity any    `json:"quantity" yaml:"quantity"`
}

// Result records the outcome of one applied Operation.
type Result struct {
	Index int
	Op    Operation
	Err   error
}

// DemoScript is the fixed demonstration sequence. Two of its operations are
// rejected by validation.
var DemoScript = []Operation{
	{Op: OpAdd, Item: "apple", Quantity: 10},
	{Op: OpAdd, Item: "orange", Quantity: 15},
	{Op: OpAdd, Item: "banana", Quantity: 8},
	{Op: OpAdd, Item: "banana", Quantity: -2},
	{Op: OpAdd, Item: 123, Quantity: 10},
	{Op: OpRemove, Item: "apple", Quantity: 3},
	{Op: OpRemove, Item: "orange", Quantity: 1},
}

// Apply runs ops in order and returns one Result per operation. A failing
// operation never stops the ones after it.
func (s *Store) Apply(ops []Operation, log types.LogSink) []Result {
	results := make([]Result, 0, len(ops))
	for i, op := range ops {
		results = append(results, Result{Index: i, Op: op, Err: s.apply(op, log)})
	}
	return results
}

func (s *Store) apply(op Operation, log types.LogSink) error {
	switch strings.ToLower(op.Op) {
	case OpAdd:
		return s.AddValue(op.Item, op.Quantity, log)
	case OpRemove:
		return s.RemoveValue(op.Item, op.Quantity)
	default:
		err := types.NewError("apply", fmt.Errorf("%w %q", types.ErrInvalidOperation, op.Op))
		err.Item = fmt.Sprint(op.Item)
		return err
	}
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// ParseScript decodes a list of operations. YAML is used when format is
// "yaml" or "yml"; anything else is decoded as JSON.
func ParseScript(data []byte, format string) ([]Operation, error) {
	var ops []Operation
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &ops); err != nil {
			return nil, fmt.Errorf("decoding YAML script: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&ops); err != nil {
			return nil, fmt.Errorf("decoding JSON script: %w", err)
		}
	}
	return ops, nil
}

// ReadScript reads and decodes the script at path, choosing the format from
// the file extension.
func ReadScript(path string) ([]Operation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	return ParseScript(data, format)
}
