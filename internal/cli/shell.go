package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/faraway/internal/confirm"
	"github.com/idilsaglam/faraway/internal/form"
	"github.com/idilsaglam/faraway/internal/model"
	"github.com/idilsaglam/faraway/internal/store"
	"github.com/idilsaglam/faraway/internal/ui"
	"github.com/idilsaglam/faraway/internal/view"
)

const clearQuestion = "Are you sure you want to delete all items in the list?"

// Shell is a line-oriented input surface over a store. Every command that
// changes the list is followed by a fresh projection where it matters.
type Shell struct {
	Prompt string

	store   *store.Store
	sort    model.SortMode
	maxQty  int
	confirm confirm.Func
	out     io.Writer
}

// NewShell wires a shell to s using opt for output, sorting and confirmation.
func NewShell(s *store.Store, opt Options) *Shell {
	opt.defaults()
	return &Shell{
		store:   s,
		sort:    opt.Sort,
		maxQty:  opt.MaxQuantity,
		confirm: opt.Confirm,
		out:     opt.Stdout,
	}
}

// Run executes commands from in until EOF or quit.
func (sh *Shell) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		if sh.Prompt != "" {
			fmt.Fprint(sh.out, sh.Prompt)
		}
		if !sc.Scan() {
			break
		}
		if quit := sh.Exec(sc.Text()); quit {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read: %w", err)
	}
	return nil
}

// Exec runs a single command line and reports whether the session should end.
func (sh *Shell) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd := strings.ToLower(fields[0])
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))

	switch cmd {
	case "quit", "exit", "q":
		return true

	case "help", "?":
		sh.help()

	case "add":
		e, err := form.Parse(rest, sh.maxQty)
		if err != nil {
			ui.FailTo(sh.out, "add: "+err.Error())
			return false
		}
		it := sh.store.Add(e.Description, e.Quantity)
		ui.OKTo(sh.out, fmt.Sprintf("added #%d %d %s", it.ID, it.Quantity, it.Description))

	case "rm", "del", "delete":
		id, ok := sh.parseID(cmd, fields)
		if !ok {
			return false
		}
		found := sh.noteMissing(id)
		sh.store.Delete(id)
		if found {
			ui.OKTo(sh.out, "removed")
		}

	case "toggle", "pack", "t":
		id, ok := sh.parseID(cmd, fields)
		if !ok {
			return false
		}
		found := sh.noteMissing(id)
		sh.store.Toggle(id)
		if found {
			ui.OKTo(sh.out, "toggled")
		}

	case "sort":
		if len(fields) != 2 {
			ui.FailTo(sh.out, "usage: sort <input|description|packed>")
			return false
		}
		mode, err := model.ParseSortMode(fields[1])
		if err != nil {
			ui.FailTo(sh.out, "sort: "+err.Error())
			return false
		}
		sh.sort = mode
		sh.list()

	case "ls", "list":
		sh.list()

	case "stats":
		fmt.Fprintln(sh.out, view.Summary(view.Compute(sh.store.Items())))

	case "clear":
		yes, err := sh.confirm(clearQuestion)
		if err != nil {
			ui.FailTo(sh.out, "clear: "+err.Error())
			return false
		}
		if !yes {
			fmt.Fprintln(sh.out, ui.Current().Muted.Render("kept the list"))
			return false
		}
		sh.store.Clear()
		ui.OKTo(sh.out, "cleared")

	default:
		ui.FailTo(sh.out, "unknown command: "+fields[0]+` (try "help")`)
	}
	return false
}

func (sh *Shell) parseID(cmd string, fields []string) (int64, bool) {
	if len(fields) != 2 {
		ui.FailTo(sh.out, "usage: "+cmd+" <id>")
		return 0, false
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		ui.FailTo(sh.out, cmd+": not a number: "+fields[1])
		return 0, false
	}
	return id, true
}

// noteMissing mentions an id the store will ignore and reports whether the
// id is present.
func (sh *Shell) noteMissing(id int64) bool {
	if _, ok := sh.store.Get(id); ok {
		return true
	}
	fmt.Fprintln(sh.out, ui.Current().Muted.Render(fmt.Sprintf("no item #%d (run `ls` to see ids)", id)))
	return false
}

func (sh *Shell) list() {
	items := view.Project(sh.store.Items(), sh.sort)
	fmt.Fprintln(sh.out, ui.Current().Accent.Render(sh.sort.Label()))
	for _, ln := range rows(items) {
		fmt.Fprintln(sh.out, ln)
	}
	fmt.Fprintln(sh.out, view.Summary(view.Compute(items)))
}

func (sh *Shell) help() {
	fmt.Fprint(sh.out, `Commands:
  add [qty] <description>   Add an item (qty 1-`+strconv.Itoa(sh.maxQty)+`, default 1)
  toggle <id>               Mark an item packed/unpacked
  rm <id>                   Remove an item
  sort <mode>               input, description or packed
  ls                        Show the list
  stats                     Show the summary
  clear                     Delete every item (asks first)
  quit                      Leave
`)
}
