// Package tui is the interactive packing list. It drives the store through
// key presses and re-projects the list after every change.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/idilsaglam/faraway/internal/debug"
	"github.com/idilsaglam/faraway/internal/form"
	"github.com/idilsaglam/faraway/internal/model"
	"github.com/idilsaglam/faraway/internal/store"
	"github.com/idilsaglam/faraway/internal/view"
)

const clearPrompt = "Are you sure you want to delete all items in the list? (y/n)"

// Options tune the interactive session.
type Options struct {
	Sort        model.SortMode
	MaxQuantity int
}

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	item model.Item
}

func (i listItem) Title() string {
	return fmt.Sprintf("%d %s", i.item.Quantity, i.item.Description)
}
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Description }

// itemDelegate renders one item per line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := mutedStyle.Render(boxUnchecked)
	text := it.Title()
	if it.item.Packed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

// Model is the Bubble Tea model of the packing list.
type Model struct {
	store  *store.Store
	sort   model.SortMode
	maxQty int

	list   list.Model
	footer string
	status string

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	// Clear confirmation
	confirming bool

	copy func(string) error
}

// New builds the model over s. s stays the only place items change.
func New(s *store.Store, opt Options) Model {
	if opt.MaxQuantity < 1 {
		opt.MaxQuantity = form.DefaultMaxQuantity
	}
	if opt.Sort == "" {
		opt.Sort = model.SortInput
	}

	w, h := TerminalSize()
	l := list.New(nil, itemDelegate{}, w-4, h-5)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	bindings := []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pack")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return bindings }
	l.AdditionalFullHelpKeys = func() []key.Binding { return bindings }

	m := Model{
		store:  s,
		sort:   opt.Sort,
		maxQty: opt.MaxQuantity,
		list:   l,
		copy:   clipboard.WriteAll,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = fmt.Sprintf("[1-%d] Item...", opt.MaxQuantity)
	m.ti.CharLimit = 200

	m.refresh(0)
	return m
}

// Run starts the program on the alt screen and blocks until the user quits.
func Run(s *store.Store, opt Options) error {
	p := tea.NewProgram(New(s, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// refresh re-projects the store and keeps the cursor on keepID when it is
// still listed.
func (m *Model) refresh(keepID int64) tea.Cmd {
	items := view.Project(m.store.Items(), m.sort)
	li := make([]list.Item, 0, len(items))
	sel := -1
	for i, it := range items {
		li = append(li, listItem{it})
		if it.ID == keepID {
			sel = i
		}
	}
	cmd := m.list.SetItems(li)
	if sel >= 0 {
		m.list.Select(sel)
	}

	st := view.Compute(items)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s",
		titleStyle.Render("Far away"),
		successStyle.Render("✔"), st.Packed,
		pendingStyle.Render("•"), st.Total-st.Packed,
		accentStyle.Render(m.sort.Label()),
	)
	m.footer = view.Summary(st)
	return cmd
}

func (m Model) selected() (model.Item, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return li.item, true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(ws.Width-4, m.listHeight(ws.Height))
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}
	if m.confirming {
		if x, ok := msg.(tea.KeyMsg); ok {
			m.confirming = false
			if x.String() == "y" || x.String() == "Y" {
				m.store.Clear()
				m.status = "list cleared"
				return m, m.refresh(0)
			}
			m.status = "kept the list"
		}
		return m, nil
	}

	// Let the filter input own the keyboard while it is open.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if x, ok := msg.(tea.KeyMsg); ok {
		m.status = ""
		switch x.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if it, ok := m.selected(); ok {
				m.store.Toggle(it.ID)
				return m, m.refresh(it.ID)
			}
			return m, nil
		case "d":
			if it, ok := m.selected(); ok {
				m.store.Delete(it.ID)
				m.status = "removed " + it.Description
				cmd := m.refresh(0)
				if n := len(m.list.Items()); n > 0 && m.list.Index() >= n {
					m.list.Select(n - 1)
				}
				return m, cmd
			}
			return m, nil
		case "a":
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			return m, m.ti.Focus()
		case "s":
			m.sort = m.sort.Next()
			keep := int64(0)
			if it, ok := m.selected(); ok {
				keep = it.ID
			}
			debug.Log("tui: sort=%s", m.sort)
			return m, m.refresh(keep)
		case "c":
			if m.store.Len() == 0 {
				m.status = "nothing to clear"
				return m, nil
			}
			m.confirming = true
			return m, nil
		case "y":
			if err := m.copy(checklist(view.Project(m.store.Items(), m.sort))); err != nil {
				m.status = "copy failed: " + err.Error()
			} else {
				m.status = "copied list to clipboard"
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			e, err := form.Parse(m.ti.Value(), m.maxQty)
			if err != nil {
				m.addErr = err.Error()
				return m, nil
			}
			it := m.store.Add(e.Description, e.Quantity)
			m.adding = false
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Blur()
			return m, m.refresh(it.ID)
		case "esc":
			m.adding = false
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) listHeight(h int) int {
	// border, footer and status lines
	h -= 5
	if m.adding || m.confirming {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.footer))

	switch {
	case m.adding:
		title := "What do you need for your trip?"
		if m.addErr != "" {
			title += " " + errorStyle.Render(m.addErr)
		}
		b.WriteString("\n" + barString(title+"\n"+m.ti.View(), false))
	case m.confirming:
		b.WriteString("\n" + barString(errorStyle.Render(clearPrompt), true))
	}
	if m.status != "" {
		b.WriteString("\n" + mutedStyle.Render(m.status))
	}
	return panelString(b.String())
}

// checklist renders items as a markdown task list.
func checklist(items []model.Item) string {
	var b strings.Builder
	for _, it := range items {
		mark := " "
		if it.Packed {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %d %s\n", mark, it.Quantity, it.Description)
	}
	return b.String()
}

// TerminalSize reports the size of stdout, defaulting to 80x24.
func TerminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
