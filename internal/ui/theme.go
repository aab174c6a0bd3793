package ui

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrUnknownTheme = errors.New("unknown theme")

// Frame is the set of glyphs a Panel is drawn with.
type Frame struct {
	TL, TR, BL, BR, H, V string
}

var (
	squareFrame = Frame{"┌", "┐", "└", "┘", "─", "│"}
	roundFrame  = Frame{"╭", "╮", "╰", "╯", "─", "│"}
	asciiFrame  = Frame{"+", "+", "+", "+", "-", "|"}
)

// Theme is what the plain renderers draw a packing list with.
type Theme struct {
	Heading, Muted, Accent Style
	Quantity               Style
	Open, Packed           Style // checkbox color by state
	PackedText             Style // description of a packed item
	OpenBox, PackedBox     string
	BarFull, BarEmpty      string
	Frame                  Frame
}

var themes = map[string]Theme{
	"classic": {
		Heading: "1", Muted: "90", Accent: "34", Quantity: "34",
		Open: "90", Packed: "32", PackedText: "9",
		OpenBox: "☐", PackedBox: "☑",
		BarFull: "█", BarEmpty: "░",
		Frame: squareFrame,
	},
	"neon": {
		Heading: "1;95", Muted: "90", Accent: "96", Quantity: "93",
		Open: "93", Packed: "92", PackedText: "2;9",
		OpenBox: "○", PackedBox: "●",
		BarFull: "▰", BarEmpty: "▱",
		Frame: roundFrame,
	},
	// mono carries no Styles at all, so it renders plain even on a terminal.
	"mono": {
		OpenBox: "[ ]", PackedBox: "[x]",
		BarFull: "#", BarEmpty: ".",
		Frame: asciiFrame,
	},
}

var current = themes["classic"]

// ThemeNames lists the selectable themes, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// SetTheme selects a theme by name; an empty name means classic.
func SetTheme(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "classic"
	}
	t, ok := themes[name]
	if !ok {
		return fmt.Errorf("%w: %q (want %s)", ErrUnknownTheme, name, strings.Join(ThemeNames(), ", "))
	}
	current = t
	return nil
}

func Current() Theme { return current }
