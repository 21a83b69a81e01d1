package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockpile/pkg/types"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPreservesKeyOrder(t *testing.T) {
	path := writeFile(t, `{"orange": 14, "apple": 7, "banana": 8}`)

	items, err := New().Load(path)
	require.NoError(t, err)

	want := []types.Item{
		{Name: "orange", Quantity: 14},
		{Name: "apple", Quantity: 7},
		{Name: "banana", Quantity: 8},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAcceptsAnyLayout(t *testing.T) {
	path := writeFile(t, "\n{\n\t\"apple\"   :3,\"pear\":0}\n\n")

	items, err := New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, []types.Item{{Name: "apple", Quantity: 3}, {Name: "pear", Quantity: 0}}, items)
}

func TestLoadDuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	path := writeFile(t, `{"apple": 1, "pear": 2, "apple": 9}`)

	items, err := New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, []types.Item{{Name: "apple", Quantity: 9}, {Name: "pear", Quantity: 2}}, items)
}

func TestLoadEmptyObject(t *testing.T) {
	items, err := New().Load(writeFile(t, "{}"))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New().Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, types.ErrFileNotFound)
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"truncated", `{"apple": 3`},
		{"not json", "apple=3"},
		{"array", `[1, 2]`},
		{"null", "null"},
		{"string quantity", `{"apple": "3"}`},
		{"fractional quantity", `{"apple": 2.5}`},
		{"negative quantity", `{"apple": -1}`},
		{"nested value", `{"apple": {"qty": 3}}`},
		{"trailing data", `{"apple": 3} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Load(writeFile(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrMalformed)
		})
	}
}

func TestLoadDirectoryIsReadError(t *testing.T) {
	_, err := New().Load(t.TempDir())
	assert.ErrorIs(t, err, types.ErrRead)
}

func TestSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	items := []types.Item{
		{Name: "apple", Quantity: 7},
		{Name: "orange", Quantity: 14},
		{Name: "<b>&co", Quantity: 1},
	}

	require.NoError(t, New().Save(path, items))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"apple\": 7,\n  \"orange\": 14,\n  \"<b>&co\": 1\n}", string(data))
}

func TestSaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	require.NoError(t, New().Save(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestSaveOverwritesAndRoundTrips(t *testing.T) {
	path := writeFile(t, `{"stale": 100}`)
	items := []types.Item{
		{Name: "zucchini", Quantity: 2},
		{Name: "apple \"green\"", Quantity: 12},
		{Name: "épice", Quantity: 4},
	}

	b := New()
	require.NoError(t, b.Save(path, items))

	got, err := b.Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(items, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestSaveToMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "inventory.json")
	err := New().Save(path, []types.Item{{Name: "apple", Quantity: 1}})
	assert.ErrorIs(t, err, types.ErrWrite)
}
