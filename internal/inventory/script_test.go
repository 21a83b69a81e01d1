package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockpile/pkg/types"
)

func TestApplyDemoScript(t *testing.T) {
	s := New(WithClock(fixedClock))
	var log types.Log

	results := s.Apply(DemoScript, &log)
	require.Len(t, results, len(DemoScript))

	failed := Failed(results)
	require.Len(t, failed, 2)
	assert.Equal(t, 3, failed[0].Index)
	assert.ErrorIs(t, failed[0].Err, types.ErrInvalidQuantity)
	assert.Equal(t, 4, failed[1].Index)
	assert.ErrorIs(t, failed[1].Err, types.ErrInvalidItem)

	assert.Equal(t, []types.Item{
		{Name: "apple", Quantity: 7},
		{Name: "orange", Quantity: 14},
		{Name: "banana", Quantity: 8},
	}, s.Items())
	assert.Equal(t, 7, s.Quantity("apple"))
	assert.Empty(t, s.LowItems(DefaultLowThreshold))
	assert.Len(t, log, 3)
}

func TestApplyUnknownOperation(t *testing.T) {
	s := New()
	results := s.Apply([]Operation{
		{Op: "restock", Item: "apple", Quantity: 1},
		{Op: "ADD", Item: "apple", Quantity: 2},
	}, nil)

	assert.ErrorIs(t, results[0].Err, types.ErrInvalidOperation)
	assert.Equal(t, types.KindValidation, types.KindOf(results[0].Err))
	assert.NoError(t, results[1].Err)
	assert.Equal(t, 2, s.Quantity("apple"))
}

func TestParseScriptJSON(t *testing.T) {
	data := []byte(`[
		{"op": "add", "item": "apple", "quantity": 10},
		{"op": "add", "item": 123, "quantity": 10},
		{"op": "add", "item": "pear", "quantity": 2.5},
		{"op": "remove", "item": "apple", "quantity": "three"},
		{"op": "remove", "item": "apple", "quantity": 4}
	]`)

	ops, err := ParseScript(data, "json")
	require.NoError(t, err)
	require.Len(t, ops, 5)

	s := New()
	results := s.Apply(ops, nil)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, types.ErrInvalidItem)
	assert.ErrorIs(t, results[2].Err, types.ErrInvalidQuantity)
	assert.ErrorIs(t, results[3].Err, types.ErrInvalidQuantityType)
	assert.NoError(t, results[4].Err)
	assert.Equal(t, []types.Item{{Name: "apple", Quantity: 6}}, s.Items())
}

func TestParseScriptYAML(t *testing.T) {
	data := []byte(`
- op: add
  item: apple
  quantity: 3
- op: add
  item: banana
  quantity: -2
- op: remove
  item: kiwi
  quantity: 1
- op: add
  item: apple
  quantity: 10.0
- op: remove
  item: apple
  quantity: 1.0
`)

	ops, err := ParseScript(data, "yml")
	require.NoError(t, err)

	s := New()
	results := s.Apply(ops, nil)
	require.Len(t, results, 5)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, types.ErrInvalidQuantity)
	assert.ErrorIs(t, results[2].Err, types.ErrItemNotFound)
	assert.ErrorIs(t, results[3].Err, types.ErrInvalidQuantity)
	assert.NoError(t, results[4].Err)
	assert.Equal(t, 2, s.Quantity("apple"))
}

func TestParseScriptInvalid(t *testing.T) {
	_, err := ParseScript([]byte(`{"op": "add"}`), "json")
	assert.Error(t, err)

	_, err = ParseScript([]byte("- op: [unterminated"), "yaml")
	assert.Error(t, err)
}

func TestReadScriptPicksFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "ops.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- {op: add, item: fig, quantity: 2}\n"), 0o644))

	ops, err := ReadScript(yamlPath)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "fig", ops[0].Item)

	_, err = ReadScript(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
