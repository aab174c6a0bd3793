package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/idilsaglam/faraway/internal/confirm"
	"github.com/idilsaglam/faraway/internal/form"
	"github.com/idilsaglam/faraway/internal/model"
	"github.com/idilsaglam/faraway/internal/seed"
	"github.com/idilsaglam/faraway/internal/store"
	"github.com/idilsaglam/faraway/internal/tui"
	"github.com/idilsaglam/faraway/internal/ui"
	"github.com/idilsaglam/faraway/internal/view"
)

// Options tune behavior from config and root flags.
type Options struct {
	Seed        string         // JSON/YAML initial list
	Starter     bool           // open with the starter items when no seed is given
	Sort        model.SortMode // initial sort mode
	MaxQuantity int            // add clamps quantities to [1, MaxQuantity]
	Format      string         // ls output: "" (panel), json, yaml
	Confirm     confirm.Func   // gate for clear; nil means ask on the terminal

	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

func (o *Options) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Confirm == nil {
		o.Confirm = confirm.Prompt
	}
	if o.Sort == "" {
		o.Sort = model.SortInput
	}
	if o.MaxQuantity < 1 {
		o.MaxQuantity = form.DefaultMaxQuantity
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Stderr)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "ui":
		return doUI(opt)

	case "ls":
		if len(a) > 1 {
			ui.FailTo(opt.Stderr, "usage: faraway ls [input|description|packed]")
			return 2
		}
		if len(a) == 1 {
			mode, err := model.ParseSortMode(a[0])
			if err != nil {
				ui.FailTo(opt.Stderr, "ls: "+err.Error())
				return 2
			}
			opt.Sort = mode
		}
		return doList(opt)

	case "stats":
		return doStats(opt)

	case "shell":
		return doShell(opt)
	}

	ui.FailTo(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `faraway - what do you need for your trip?

Usage:
  faraway [flags] <subcommand> [args]

Subcommands:
  ui                 Interactive packing list
  ls [sort]          Print the list (sort: input, description, packed)
  stats              Print the packing summary
  shell              Line-by-line session on stdin (type "help" inside)

Flags:
  -seed <file>       Start from a JSON or YAML item list
  -empty             Start with an empty list instead of the starter items
  -sort <mode>       Initial sort mode
  -format json|yaml  Machine-readable ls output
  -yes               Do not ask before clearing the list
  -theme <name>      classic, neon or mono
  -no-color          Plain output
  -debug             Debug logging to stderr

Examples:
  faraway ui
  faraway -seed trip.yaml ls description
  echo "add 3 Sunscreen" | faraway shell
`)
}

// newStore builds the session's list from the seed, the starter items or nothing.
func newStore(opt Options) (*store.Store, error) {
	if opt.Seed != "" {
		items, err := seed.Load(opt.Seed)
		if err != nil {
			return nil, err
		}
		return store.New(items...), nil
	}
	if opt.Starter {
		return store.New(model.StarterItems()...), nil
	}
	return store.New(), nil
}

// -------------- subcommand impls ----------------

func doUI(opt Options) int {
	s, err := newStore(opt)
	if err != nil {
		ui.FailTo(opt.Stderr, "load: "+err.Error())
		return 1
	}
	if err := tui.Run(s, tui.Options{Sort: opt.Sort, MaxQuantity: opt.MaxQuantity}); err != nil {
		ui.FailTo(opt.Stderr, "tui: "+err.Error())
		return 1
	}
	fmt.Fprintln(opt.Stdout, view.Summary(view.Compute(s.Items())))
	return 0
}

func doList(opt Options) int {
	s, err := newStore(opt)
	if err != nil {
		ui.FailTo(opt.Stderr, "load: "+err.Error())
		return 1
	}
	items := view.Project(s.Items(), opt.Sort)

	if opt.Format != "" {
		f, err := seed.ParseFormat(opt.Format)
		if err != nil {
			ui.FailTo(opt.Stderr, "ls: "+err.Error())
			return 2
		}
		if err := seed.Encode(opt.Stdout, items, f); err != nil {
			ui.FailTo(opt.Stderr, "ls: "+err.Error())
			return 1
		}
		return 0
	}

	st := view.Compute(items)
	t := ui.Current()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s",
		t.Heading.Render("Far away"),
		t.Packed.Render(t.PackedBox), st.Packed,
		t.Open.Render(t.OpenBox), st.Total-st.Packed,
		t.Accent.Render(opt.Sort.Label()),
	)

	lines := []string{header, t.Muted.Render(ui.ProgressBar(st, 28)), ""}
	lines = append(lines, rows(items)...)
	lines = append(lines, "", t.Muted.Render(view.Summary(st)))
	ui.Panel(opt.Stdout, lines)
	return 0
}

func doStats(opt Options) int {
	s, err := newStore(opt)
	if err != nil {
		ui.FailTo(opt.Stderr, "load: "+err.Error())
		return 1
	}
	fmt.Fprintln(opt.Stdout, view.Summary(view.Compute(s.Items())))
	return 0
}

func doShell(opt Options) int {
	s, err := newStore(opt)
	if err != nil {
		ui.FailTo(opt.Stderr, "load: "+err.Error())
		return 1
	}
	sh := NewShell(s, opt)
	if f, ok := opt.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		sh.Prompt = "faraway> "
	}
	if err := sh.Run(opt.Stdin); err != nil {
		ui.FailTo(opt.Stderr, "shell: "+err.Error())
		return 1
	}
	return 0
}

// -------------- rendering helpers --------------

const maxDescWidth = 60

func rows(items []model.Item) []string {
	if len(items) == 0 {
		return []string{ui.Current().Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, ui.Row(it, maxDescWidth))
	}
	return out
}
