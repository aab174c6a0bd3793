package model

import (
	"errors"
	"fmt"
	"strings"
)

// SortMode selects how a view orders the list. It never changes the
// canonical (input) order.
type SortMode string

const (
	SortInput       SortMode = "input"
	SortDescription SortMode = "description"
	SortPacked      SortMode = "packed"
)

var ErrUnknownSortMode = errors.New("unknown sort mode")

// SortModes lists every mode in cycling order.
func SortModes() []SortMode {
	return []SortMode{SortInput, SortDescription, SortPacked}
}

// ParseSortMode accepts any casing and surrounding space.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case SortInput:
		return SortInput, nil
	case SortDescription:
		return SortDescription, nil
	case SortPacked:
		return SortPacked, nil
	}
	return "", fmt.Errorf("%w: %q (want input, description or packed)", ErrUnknownSortMode, s)
}

// Next returns the mode after m, wrapping around. Unknown modes go back to input.
func (m SortMode) Next() SortMode {
	switch m {
	case SortInput:
		return SortDescription
	case SortDescription:
		return SortPacked
	default:
		return SortInput
	}
}

func (m SortMode) Label() string {
	switch m {
	case SortDescription:
		return "Sort by description"
	case SortPacked:
		return "Sort by packed status"
	default:
		return "Sort by input order"
	}
}
