// Package teaui hosts the Bubble Tea program for the task list.
package teaui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/todo/pkg/glyph"
	"tableflip.dev/todo/pkg/logging"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tui/components/editor"
	helpview "tableflip.dev/todo/pkg/tui/components/help"
	"tableflip.dev/todo/pkg/tui/keys"
	"tableflip.dev/todo/pkg/tui/overlay"
	"tableflip.dev/todo/pkg/tui/theme"
)

const (
	rowActions  = "[x] Complete  [e] Edit  [d] Delete"
	minRowWidth = 8
)

// Options configure a Model. Zero values pick the defaults.
type Options struct {
	Theme     *theme.Theme
	Keys      *keys.KeyMap
	Logger    *slog.Logger
	HelpStyle string
}

// Model renders the store and forwards key presses to it. Apart from the
// pending row cursor and overlay visibility it keeps no state: lists,
// draft and active tab are read from the store on every render.
type Model struct {
	store  *store.Store
	logger *slog.Logger

	theme theme.Theme
	keys  keys.KeyMap

	editor    *editor.Model
	helpBar   help.Model
	helpView  *helpview.Model
	helpStyle string
	showHelp  bool

	cursor int
	status string

	width  int
	height int
}

// New creates a UI model over st.
func New(st *store.Store, opts Options) *Model {
	if st == nil {
		st = store.New()
	}
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	km := keys.Default()
	if opts.Keys != nil {
		km = *opts.Keys
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	hb := help.New()
	hb.Styles.ShortKey = th.Footer.Help.Bold(true)
	hb.Styles.ShortDesc = th.Footer.Help

	return &Model{
		store:     st,
		logger:    logger,
		theme:     th,
		keys:      km,
		editor:    editor.New(th, km),
		helpBar:   hb,
		helpStyle: opts.HelpStyle,
		status:    "a add, x complete, ? help",
	}
}

// Init opens the editor if the store was handed over with it open.
func (m *Model) Init() tea.Cmd {
	if m.store.EditorOpen() {
		_, editing := m.store.EditingIndex()
		return m.editor.Open(m.store.Draft(), editing)
	}
	return nil
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applySizes()
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.store.EditorOpen():
			return m, m.updateEditor(msg)
		case m.showHelp:
			return m, m.updateHelp(msg)
		default:
			return m, m.updateList(msg)
		}
	}

	if m.store.EditorOpen() {
		return m, m.editor.Update(msg)
	}
	return m, nil
}

func (m *Model) updateEditor(msg tea.KeyMsg) tea.Cmd {
	var open tea.Cmd
	if !m.editor.IsOpen() {
		// The store's editor was opened outside the key loop.
		_, editing := m.store.EditingIndex()
		open = m.editor.Open(m.store.Draft(), editing)
	}
	switch {
	case key.Matches(msg, m.keys.Submit):
		_, editing := m.store.EditingIndex()
		m.store.SetDraft(m.editor.Value())
		out := m.store.Submit()
		m.editor.Close()
		m.logger.Info("editor submitted", "outcome", out.String(), "pending", m.store.PendingLen())
		switch out {
		case store.OutcomeAdded:
			m.status = "Added"
		case store.OutcomeReplaced:
			m.status = "Edited"
		default:
			if editing {
				m.status = "Edit discarded: task name is empty"
			} else {
				m.status = "Nothing added: task name is empty"
			}
		}
		m.clampCursor()
		return nil
	case key.Matches(msg, m.keys.Cancel):
		_, editing := m.store.EditingIndex()
		m.store.CloseEditor()
		m.editor.Close()
		m.logger.Debug("editor cancelled")
		if editing {
			m.status = "Edit cancelled"
		} else {
			m.status = "Add cancelled"
		}
		return nil
	}
	cmd := m.editor.Update(msg)
	m.store.SetDraft(m.editor.Value())
	return tea.Batch(open, cmd)
}

func (m *Model) updateHelp(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Help, m.keys.Cancel, m.keys.Quit) {
		m.showHelp = false
		return nil
	}
	if m.helpView != nil {
		return m.helpView.Update(msg)
	}
	return nil
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.openHelp()
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(m.store.ActiveTab().Next())
	case key.Matches(msg, m.keys.PendingTab):
		m.switchTab(task.Pending)
	case key.Matches(msg, m.keys.CompletedTab):
		m.switchTab(task.Completed)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.store.PendingLen()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.store.OpenEditor()
		m.logger.Debug("editor opened")
		return m.editor.Open(m.store.Draft(), false)
	case key.Matches(msg, m.keys.Edit):
		i, ok := m.selected()
		if !ok {
			return nil
		}
		if err := m.store.EditTask(i); err != nil {
			m.fail(err)
			return nil
		}
		m.logger.Debug("editor opened", "index", i)
		return m.editor.Open(m.store.Draft(), true)
	case key.Matches(msg, m.keys.Complete):
		i, ok := m.selected()
		if !ok {
			return nil
		}
		name := m.store.Pending()[i].Name
		if err := m.store.CompleteTask(i); err != nil {
			m.fail(err)
			return nil
		}
		m.logger.Info("task completed", "index", i, "completed", m.store.CompletedLen())
		m.status = fmt.Sprintf("Completed %q", oneLine(name))
		m.clampCursor()
	case key.Matches(msg, m.keys.Delete):
		i, ok := m.selected()
		if !ok {
			return nil
		}
		name := m.store.Pending()[i].Name
		if err := m.store.DeleteTask(i); err != nil {
			m.fail(err)
			return nil
		}
		m.logger.Info("task deleted", "index", i, "pending", m.store.PendingLen())
		m.status = fmt.Sprintf("Deleted %q", oneLine(name))
		m.clampCursor()
	}
	return nil
}

// selected returns the pending index under the cursor. Row actions only
// apply on the pending tab.
func (m *Model) selected() (int, bool) {
	if m.store.ActiveTab() != task.Pending || m.store.PendingLen() == 0 {
		return 0, false
	}
	m.clampCursor()
	return m.cursor, true
}

func (m *Model) switchTab(t task.Tab) {
	m.store.SwitchTab(t)
	m.logger.Debug("tab switched", "tab", t.String())
}

func (m *Model) clampCursor() {
	if n := m.store.PendingLen(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) fail(err error) {
	m.logger.Error("store rejected action", "err", err)
	m.status = "ERR: " + err.Error()
}

func (m *Model) openHelp() {
	w, h := m.overlaySize()
	if m.helpView == nil {
		m.helpView = helpview.New(w, h, m.helpStyle)
	} else {
		m.helpView.SetSize(w, h)
	}
	m.showHelp = true
}

func (m *Model) overlaySize() (int, int) {
	w, h := m.width-4, m.height-4
	if w <= 0 {
		w = 72
	}
	if h <= 0 {
		h = 20
	}
	return w, h
}

// applySizes recalculates component sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.editor.SetWidth(m.width)
	m.helpBar.Width = m.width
	if m.helpView != nil {
		m.helpView.SetSize(m.overlaySize())
	}
}

// View renders the tabs, the active list and any overlay.
func (m *Model) View() string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Modal.Button.Render("+ Add ("+m.keys.Add.Help().Key+")"),
		m.renderTabs(),
	)

	body := m.renderPending()
	if m.store.ActiveTab() == task.Completed {
		body = m.renderCompleted()
	}
	switch {
	case m.store.EditorOpen():
		body = m.place(body, m.editor.View())
	case m.showHelp && m.helpView != nil:
		body = m.place(body, m.helpView.View())
	}

	bindings := m.keys.ShortHelp()
	if m.store.EditorOpen() {
		bindings = m.keys.EditorHelp()
	}
	footer := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Footer.Status.Render(m.fit(m.status, 0)),
		m.helpBar.ShortHelpView(bindings),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

func (m *Model) renderTabs() string {
	tabs := []task.Tab{task.Pending, task.Completed}
	cells := make([]string, 0, len(tabs)*2)
	for i, t := range tabs {
		label := fmt.Sprintf("%s (%d)", t.Title(), m.count(t))
		style := m.theme.Tabs.Inactive
		if t == m.store.ActiveTab() {
			style = m.theme.Tabs.Active
		}
		if i > 0 {
			cells = append(cells, m.theme.Tabs.Gap.Render(""))
		}
		cells = append(cells, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cells...)
}

func (m *Model) count(t task.Tab) int {
	if t == task.Completed {
		return m.store.CompletedLen()
	}
	return m.store.PendingLen()
}

func (m *Model) renderPending() string {
	pending := m.store.Pending()
	if len(pending) == 0 {
		return m.theme.List.Empty.Render("No tasks yet. Press " + m.keys.Add.Help().Key + " to add one.")
	}
	m.clampCursor()
	mark := glyph.For(task.Pending).Symbol
	rows := make([]string, 0, len(pending))
	for i, t := range pending {
		prefix := "  "
		style := m.theme.List.Row
		if i == m.cursor {
			prefix = glyph.Cursor.Symbol + " "
			style = m.theme.List.Selected
		}
		name := m.fit(oneLine(t.Name), len(prefix)+len(mark)+1+len(rowActions)+2)
		rows = append(rows, style.Render(prefix+mark+" "+name)+"  "+m.theme.List.Actions.Render(rowActions))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderCompleted() string {
	completed := m.store.Completed()
	if len(completed) == 0 {
		return m.theme.List.Empty.Render("Nothing completed yet.")
	}
	mark := glyph.For(task.Completed).Symbol
	rows := make([]string, 0, len(completed))
	for _, t := range completed {
		name := m.fit(oneLine(t.Name), 2+len(mark)+1)
		rows = append(rows, "  "+m.theme.List.Completed.Render(mark+" "+name))
	}
	return strings.Join(rows, "\n")
}

// fit truncates name so a row with reserved columns of chrome fits the
// terminal.
func (m *Model) fit(name string, reserved int) string {
	if m.width == 0 {
		return name
	}
	w := m.width - reserved
	if w < minRowWidth {
		w = minRowWidth
	}
	return truncate.StringWithTail(name, uint(w), "…")
}

// place draws fg centered over the list area, with the list dimmed behind
// it.
func (m *Model) place(bg, fg string) string {
	if m.width == 0 || m.height == 0 {
		return fg
	}
	h := m.height - 8
	if fh := lipgloss.Height(fg); h < fh {
		h = fh
	}
	return overlay.Compose(bg, m.width, h, fg, overlay.Centered, m.theme.Modal.Backdrop)
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// Run launches the program over st and blocks until it exits.
func Run(st *store.Store, opts Options, programOpts ...tea.ProgramOption) error {
	p := tea.NewProgram(New(st, opts), programOpts...)
	_, err := p.Run()
	return err
}
