// Package form turns a line typed by the user into an entry for the store.
// It is the only place a description is validated.
package form

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// DefaultMaxQuantity matches the 1..20 picker of the add form.
const DefaultMaxQuantity = 20

var ErrEmptyDescription = errors.New("description cannot be empty")

// Entry is a validated add request.
type Entry struct {
	Description string
	Quantity    int
}

// Parse reads "[quantity] description". A missing quantity means 1; any
// quantity is clamped into [1, maxQuantity]. maxQuantity < 1 means no upper bound.
func Parse(line string, maxQuantity int) (Entry, error) {
	line = strings.TrimSpace(line)
	qty := 1
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		if n, err := strconv.Atoi(line[:i]); err == nil {
			qty = n
			line = strings.TrimSpace(line[i:])
		}
	} else if _, err := strconv.Atoi(line); err == nil {
		// a bare number is a quantity with nothing to pack
		line = ""
	}
	if line == "" {
		return Entry{}, ErrEmptyDescription
	}
	return Entry{Description: line, Quantity: Clamp(qty, maxQuantity)}, nil
}

// Clamp bounds a quantity to [1, maxQuantity].
func Clamp(qty, maxQuantity int) int {
	if qty < 1 {
		return 1
	}
	if maxQuantity >= 1 && qty > maxQuantity {
		return maxQuantity
	}
	return qty
}
