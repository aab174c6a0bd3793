package ui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/faraway/internal/model"
	"github.com/idilsaglam/faraway/internal/view"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

// visibleWidth counts terminal cells, ignoring color codes.
func visibleWidth(s string) int { return runewidth.StringWidth(stripANSI(s)) }

// Truncate cuts s to at most width cells, ending in "…" when shortened.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// ProgressBar renders the packed share of st. An empty list draws an empty bar.
func ProgressBar(st view.Stats, width int) string {
	t := Current()
	if width < 5 {
		width = 5
	}
	ratio, ok := st.Ratio()
	if !ok {
		return strings.Repeat(t.BarEmpty, width) + "    -"
	}
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	pct, _ := st.Percent()
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %3.0f%%", bar, pct)
}

// Row renders one item line: "<id>. <box> <qty> <description>".
func Row(it model.Item, maxDesc int) string {
	t := Current()
	box := t.Open.Render(t.OpenBox)
	text := Truncate(it.Description, maxDesc)
	if it.Packed {
		box = t.Packed.Render(t.PackedBox)
		text = t.PackedText.Render(text)
	}
	return fmt.Sprintf("%s %s %s %s",
		t.Muted.Render(fmt.Sprintf("%3d.", it.ID)), box, t.Quantity.Render(fmt.Sprintf("%2d", it.Quantity)), text)
}

// Panel draws a framed box using the current theme.
func Panel(w io.Writer, lines []string) {
	f := Current().Frame
	maxw := 0
	for _, ln := range lines {
		if vw := visibleWidth(ln); vw > maxw {
			maxw = vw
		}
	}
	pad := func(s string) string {
		if vis := visibleWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(w, f.TL+strings.Repeat(f.H, maxw+2)+f.TR)
	for _, ln := range lines {
		fmt.Fprintln(w, f.V+" "+pad(ln)+" "+f.V)
	}
	fmt.Fprintln(w, f.BL+strings.Repeat(f.H, maxw+2)+f.BR)
}
