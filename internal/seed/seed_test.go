package seed

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/faraway/internal/model"
)

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trip.json")
	content := `[
  {"id": 1, "description": "Passports", "quantity": 2},
  {"id": 2, "description": "Socks", "quantity": 12, "packed": true},
  {"id": 5, "description": "Charger"}
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	items, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []model.Item{
		{ID: 1, Description: "Passports", Quantity: 2},
		{ID: 2, Description: "Socks", Quantity: 12, Packed: true},
		{ID: 5, Description: "Charger", Quantity: 1},
	}, items)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trip.yml")
	content := `
- id: 3
  description: Tent
  quantity: 1
- id: 4
  description: Towel
  packed: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	items, err := Load(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Towel", items[1].Description)
	require.Equal(t, 1, items[1].Quantity)
	require.True(t, items[1].Packed)
}

func TestDecodeAssignsMissingIDs(t *testing.T) {
	content := `
- description: Towel
- id: 7
  description: Tent
- description: Socks
- id: 7
  description: Stove
`
	items, err := Decode(strings.NewReader(content), FormatYAML)
	require.NoError(t, err)
	require.Len(t, items, 4)
	require.Equal(t, int64(8), items[0].ID)
	require.Equal(t, int64(7), items[1].ID)
	require.Equal(t, int64(9), items[2].ID)
	require.Equal(t, int64(7), items[3].ID, "repeated explicit ids are left for the store to resolve")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load("list.toml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDecodeRejectsInvalidItems(t *testing.T) {
	_, err := Decode(strings.NewReader(`[{"id":1,"description":"  "}]`), FormatJSON)
	require.ErrorIs(t, err, ErrInvalidItem)

	_, err = Decode(strings.NewReader(`[{"id":1,"description":"Socks","quantity":-2}]`), FormatJSON)
	require.ErrorIs(t, err, ErrInvalidItem)

	_, err = Decode(strings.NewReader(`{not json`), FormatJSON)
	require.Error(t, err)
}

func TestDecodeEmptyYAML(t *testing.T) {
	items, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestEncodeDecodeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, model.StarterItems(), FormatJSON))
	require.Contains(t, buf.String(), `"description": "Passports"`)

	items, err := Decode(&buf, FormatJSON)
	require.NoError(t, err)
	require.Equal(t, model.StarterItems(), items)
}

func TestEncodeYAMLAndNil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, model.StarterItems()[:1], FormatYAML))
	require.Contains(t, buf.String(), "description: Passports")

	buf.Reset()
	require.NoError(t, Encode(&buf, nil, FormatJSON))
	require.Equal(t, "[]\n", buf.String())

	require.ErrorIs(t, Encode(&buf, nil, Format("csv")), ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": FormatJSON, ".JSON": FormatJSON, "yml": FormatYAML, ".yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got, in)
	}
}
