// Package seed reads the initial list a session starts with and writes a
// list back out for `ls --format`. Files are only ever read; nothing here
// persists session state.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/faraway/internal/model"
)

// Format names a supported encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnknownFormat = errors.New("unknown format")
	ErrInvalidItem   = errors.New("invalid item")
)

// ParseFormat maps a flag value or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Load reads an item list from path, picking the codec from its extension.
func Load(path string) ([]model.Item, error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer fh.Close()
	items, err := Decode(fh, f)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return items, nil
}

// Decode reads and validates an item list. A missing quantity becomes 1
// and a missing packed flag is false. Entries without a positive id get
// one above the largest id in the list, in file order.
func Decode(r io.Reader, f Format) ([]model.Item, error) {
	var items []model.Item
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&items); err != nil {
			return nil, fmt.Errorf("json decode: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&items); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("yaml decode: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	var maxID int64
	for i := range items {
		if items[i].ID > maxID {
			maxID = items[i].ID
		}
		items[i].Description = strings.TrimSpace(items[i].Description)
		if items[i].Description == "" {
			return nil, fmt.Errorf("%w: entry %d has no description", ErrInvalidItem, i+1)
		}
		if items[i].Quantity == 0 {
			items[i].Quantity = 1
		}
		if items[i].Quantity < 0 {
			return nil, fmt.Errorf("%w: entry %d has quantity %d", ErrInvalidItem, i+1, items[i].Quantity)
		}
	}
	for i := range items {
		if items[i].ID < 1 {
			maxID++
			items[i].ID = maxID
		}
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Encode writes items in the given format.
func Encode(w io.Writer, items []model.Item, f Format) error {
	if items == nil {
		items = []model.Item{}
	}
	switch f {
	case FormatJSON:
		b, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
