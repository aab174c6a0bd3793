package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ColorMode decides when Styles emit ANSI codes.
type ColorMode int

const (
	ColorAuto ColorMode = iota // only when stdout is a terminal
	ColorAlways
	ColorNever
)

var colorMode = ColorAuto

func SetColorMode(m ColorMode) { colorMode = m }

// Style is a list of SGR parameters such as "1;32". The empty Style is plain.
type Style string

const (
	styleOK   Style = "32"
	styleFail Style = "1;31"
)

func (s Style) Render(text string) string {
	if s == "" || !colorEnabled() {
		return text
	}
	return "\033[" + string(s) + "m" + text + "\033[0m"
}

func colorEnabled() bool {
	switch colorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func OK(msg string)   { OKTo(os.Stdout, msg) }
func Fail(msg string) { FailTo(os.Stderr, msg) }

func OKTo(w io.Writer, msg string)   { fmt.Fprintln(w, styleOK.Render("✔ "+msg)) }
func FailTo(w io.Writer, msg string) { fmt.Fprintln(w, styleFail.Render("✖ "+msg)) }
