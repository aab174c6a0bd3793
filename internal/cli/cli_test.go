package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/faraway/internal/confirm"
	"github.com/idilsaglam/faraway/internal/model"
	"github.com/idilsaglam/faraway/internal/store"
	"github.com/idilsaglam/faraway/internal/ui"
	"github.com/idilsaglam/faraway/internal/view"
)

func init() {
	ui.SetColorMode(ui.ColorNever)
}

type harness struct {
	out, err bytes.Buffer
}

func (h *harness) opts(stdin string) Options {
	return Options{
		Starter: true,
		Confirm: confirm.Always(true),
		Stdin:   strings.NewReader(stdin),
		Stdout:  &h.out,
		Stderr:  &h.err,
	}
}

func TestRunUsage(t *testing.T) {
	var h harness
	require.Equal(t, 2, Run(nil, h.opts("")))
	require.Contains(t, h.err.String(), "Subcommands:")

	h = harness{}
	require.Equal(t, 2, Run([]string{"pack"}, h.opts("")))
	require.Contains(t, h.err.String(), "unknown subcommand: pack")

	h = harness{}
	require.Equal(t, 0, Run([]string{"help"}, h.opts("")))
	require.Contains(t, h.out.String(), "faraway ui")
}

func TestRunStats(t *testing.T) {
	var h harness
	require.Equal(t, 0, Run([]string{"stats"}, h.opts("")))
	require.Equal(t, "You have 2 items on your list, and you already packed 0 (0%)\n", h.out.String())

	h = harness{}
	opt := h.opts("")
	opt.Starter = false
	require.Equal(t, 0, Run([]string{"stats"}, opt))
	require.Equal(t, view.MsgEmpty+"\n", h.out.String())
}

func TestRunListSorted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trip.yaml")
	content := "- {id: 1, description: Towel}\n- {id: 2, description: Tent, packed: true}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var h harness
	opt := h.opts("")
	opt.Seed = path
	require.Equal(t, 0, Run([]string{"ls", "description"}, opt))

	out := h.out.String()
	require.Contains(t, out, "Sort by description")
	require.Less(t, strings.Index(out, "Tent"), strings.Index(out, "Towel"))
	require.Contains(t, out, "You have 2 items on your list, and you already packed 1 (50%)")
}

func TestRunSeedWithoutIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.yaml")
	content := "- {description: Towel}\n- {description: Tent}\n- {description: Socks, packed: true}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var h harness
	opt := h.opts("ls\nadd Hat\n")
	opt.Seed = path
	require.Equal(t, 0, Run([]string{"shell"}, opt))

	out := h.out.String()
	require.Contains(t, out, "You have 3 items on your list, and you already packed 1 (33.33%)")
	require.Contains(t, out, "Towel")
	require.Contains(t, out, "Tent")
	require.Contains(t, out, "added #4 1 Hat")
}

func TestRunListFormat(t *testing.T) {
	var h harness
	opt := h.opts("")
	opt.Format = "json"
	require.Equal(t, 0, Run([]string{"ls", "packed"}, opt))
	require.Contains(t, h.out.String(), `"description": "Passports"`)

	h = harness{}
	opt = h.opts("")
	opt.Format = "xml"
	require.Equal(t, 2, Run([]string{"ls"}, opt))

	h = harness{}
	require.Equal(t, 2, Run([]string{"ls", "weight"}, h.opts("")))
}

func TestRunBadSeed(t *testing.T) {
	var h harness
	opt := h.opts("")
	opt.Seed = filepath.Join(t.TempDir(), "missing.json")
	require.Equal(t, 1, Run([]string{"stats"}, opt))
	require.Contains(t, h.err.String(), "load:")
}

func TestShellScenario(t *testing.T) {
	var h harness
	script := strings.Join([]string{
		"toggle 1",
		"stats",
		"add 3 Sunscreen",
		"clear",
		"stats",
		"add Hat",
		"quit",
		"add ignored",
	}, "\n")
	require.Equal(t, 0, Run([]string{"shell"}, h.opts(script)))

	out := h.out.String()
	require.Contains(t, out, "You have 2 items on your list, and you already packed 1 (50%)")
	require.Contains(t, out, "added #3 3 Sunscreen")
	require.Contains(t, out, "cleared")
	require.Contains(t, out, view.MsgEmpty)
	require.Contains(t, out, "added #4 1 Hat", "ids are not reused after clear")
	require.NotContains(t, out, "ignored")
}

func TestShellClearDeclined(t *testing.T) {
	var out bytes.Buffer
	s := store.New(model.StarterItems()...)
	sh := NewShell(s, Options{Stdout: &out, Confirm: confirm.Always(false)})

	sh.Exec("clear")
	require.Equal(t, 2, s.Len())
	require.Contains(t, out.String(), "kept the list")

	sh.confirm = func(string) (bool, error) { return false, errors.New("no tty") }
	sh.Exec("clear")
	require.Equal(t, 2, s.Len())
	require.Contains(t, out.String(), "clear: no tty")
}

func TestShellMissingIDsAreNoOps(t *testing.T) {
	var out bytes.Buffer
	s := store.New(model.StarterItems()...)
	sh := NewShell(s, Options{Stdout: &out})

	before := s.Items()
	sh.Exec("rm 42")
	sh.Exec("toggle 42")
	require.Equal(t, before, s.Items())
	require.Contains(t, out.String(), "no item #42")
	require.NotContains(t, out.String(), "removed")
	require.NotContains(t, out.String(), "toggled")

	out.Reset()
	sh.Exec("toggle 1")
	sh.Exec("rm 2")
	require.Equal(t, "✔ toggled\n✔ removed\n", out.String())

	out.Reset()
	sh.Exec("rm x")
	require.Contains(t, out.String(), "rm: not a number: x")
}

func TestShellSortDoesNotReorderStore(t *testing.T) {
	var out bytes.Buffer
	s := store.New(
		model.Item{ID: 1, Description: "Towel", Quantity: 1},
		model.Item{ID: 2, Description: "Tent", Quantity: 1},
	)
	sh := NewShell(s, Options{Stdout: &out})

	sh.Exec("sort description")
	listed := out.String()
	require.Less(t, strings.Index(listed, "Tent"), strings.Index(listed, "Towel"))
	require.Equal(t, "Towel", s.Items()[0].Description)

	out.Reset()
	sh.Exec("sort input")
	listed = out.String()
	require.Less(t, strings.Index(listed, "Towel"), strings.Index(listed, "Tent"))
}

func TestShellAddValidation(t *testing.T) {
	var out bytes.Buffer
	s := store.New()
	sh := NewShell(s, Options{Stdout: &out, MaxQuantity: 20})

	sh.Exec("add")
	sh.Exec("add 5")
	require.Zero(t, s.Len())
	require.Contains(t, out.String(), "description cannot be empty")

	sh.Exec("add 50 Socks")
	it, ok := s.Get(1)
	require.True(t, ok)
	require.Equal(t, 20, it.Quantity)

	out.Reset()
	sh.Exec("dance")
	require.Contains(t, out.String(), "unknown command: dance")
}
