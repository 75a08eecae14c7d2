// Package editor renders the modal used to add and edit tasks.
package editor

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/todo/pkg/tui/keys"
	"tableflip.dev/todo/pkg/tui/theme"
)

const (
	defaultWidth  = 40
	defaultHeight = 5
)

// Model wraps a textarea bound to the store's draft. It holds no task
// state of its own: the owner copies Value into the store after every
// update and decides what submit and cancel mean.
type Model struct {
	input   textarea.Model
	editing bool
	open    bool

	width int

	theme theme.Theme
	keys  keys.KeyMap
}

// New constructs a closed editor.
func New(th theme.Theme, km keys.KeyMap) *Model {
	ta := textarea.New()
	ta.Placeholder = "Enter texts here..."
	ta.ShowLineNumbers = false
	// Names are free text: no length or line cap.
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(defaultWidth)
	ta.SetHeight(defaultHeight)

	return &Model{
		input: ta,
		width: defaultWidth,
		theme: th,
		keys:  km,
	}
}

// Open shows the editor with draft loaded. editing selects the "Edit Task"
// label over "Add Task".
func (m *Model) Open(draft string, editing bool) tea.Cmd {
	m.open = true
	m.editing = editing
	m.input.SetValue(draft)
	return m.input.Focus()
}

// Close hides the editor and clears its text.
func (m *Model) Close() {
	m.open = false
	m.editing = false
	m.input.Reset()
	m.input.Blur()
}

// IsOpen reports whether the editor is visible.
func (m *Model) IsOpen() bool { return m.open }

// Value is the current text.
func (m *Model) Value() string { return m.input.Value() }

// SetWidth fits the text area to the available width.
func (m *Model) SetWidth(width int) {
	w := width - m.theme.Modal.Frame.GetHorizontalFrameSize() - 4
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	m.width = w
	m.input.SetWidth(w)
}

// SubmitLabel is the text of the submit button.
func (m *Model) SubmitLabel() string {
	if m.editing {
		return "Edit Task"
	}
	return "Add Task"
}

// Update forwards input to the text area.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// View renders the framed modal, or "" when closed.
func (m *Model) View() string {
	if !m.open {
		return ""
	}
	title := m.theme.Modal.Title.Render(m.SubmitLabel())
	submit := m.theme.Modal.PrimaryButton.Render(m.SubmitLabel() + " (" + m.keys.Submit.Help().Key + ")")
	cancel := m.theme.Modal.Button.Render("Cancel (" + m.keys.Cancel.Help().Key + ")")
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, submit, " ", cancel)

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", m.input.View(), "", buttons)
	return m.theme.Modal.Frame.Render(body)
}
