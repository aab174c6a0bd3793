package form

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		max  int
		want Entry
	}{
		{"plain", "Sunscreen", 20, Entry{"Sunscreen", 1}},
		{"with quantity", "3 Sunscreen", 20, Entry{"Sunscreen", 3}},
		{"multi word", "  2 travel  adapter ", 20, Entry{"travel  adapter", 2}},
		{"clamped high", "99 Socks", 20, Entry{"Socks", 20}},
		{"clamped low", "0 Socks", 20, Entry{"Socks", 1}},
		{"negative", "-3 Socks", 20, Entry{"Socks", 1}},
		{"unbounded", "99 Socks", 0, Entry{"Socks", 99}},
		{"number inside", "Book 2", 20, Entry{"Book 2", 1}},
		{"tab separated", "3\tSunscreen", 20, Entry{"Sunscreen", 3}},
		{"mixed whitespace", "4 \t  Tent pegs", 20, Entry{"Tent pegs", 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line, tt.max)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	for _, line := range []string{"", "   ", "4", "4   ", "4\t"} {
		if _, err := Parse(line, DefaultMaxQuantity); !errors.Is(err, ErrEmptyDescription) {
			t.Errorf("Parse(%q): expected ErrEmptyDescription, got %v", line, err)
		}
	}
}
