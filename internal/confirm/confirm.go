// Package confirm provides the yes/no gate the input surfaces put in front
// of destructive actions such as clearing the list.
package confirm

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Func asks a yes/no question and blocks until it is answered.
type Func func(prompt string) (bool, error)

// Always returns a Func that answers without asking (--yes, tests).
func Always(answer bool) Func {
	return func(string) (bool, error) { return answer, nil }
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Prompt asks on the terminal with a huh confirm form. Without a TTY it
// falls back to huh's accessible (plain line) mode.
func Prompt(prompt string) (bool, error) {
	return ask(prompt, os.Stdin, os.Stdout, !isTerminal())
}

func ask(prompt string, in io.Reader, out io.Writer, accessible bool) (bool, error) {
	answer := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Yes, delete").
				Negative("No").
				Value(&answer),
		),
	).WithTheme(huh.ThemeCharm()).
		WithInput(in).
		WithOutput(out).
		WithAccessible(accessible)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirm: %w", err)
	}
	return answer, nil
}
