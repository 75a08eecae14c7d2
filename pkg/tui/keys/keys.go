// Package keys defines the key bindings of the task list UI.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding. It satisfies help.KeyMap.
type KeyMap struct {
	NextTab      key.Binding
	PendingTab   key.Binding
	CompletedTab key.Binding
	Up           key.Binding
	Down         key.Binding
	Add          key.Binding
	Edit         key.Binding
	Complete     key.Binding
	Delete       key.Binding
	Help         key.Binding
	Quit         key.Binding

	Submit key.Binding
	Cancel key.Binding
}

// Default returns the standard bindings.
func Default() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch tab"),
		),
		PendingTab: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "to-do list"),
		),
		CompletedTab: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "completed"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Complete: key.NewBinding(
			key.WithKeys("x", "c"),
			key.WithHelp("x", "complete"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp is shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Add, k.Edit, k.Complete, k.Delete, k.Help, k.Quit}
}

// FullHelp groups every list binding by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PendingTab, k.CompletedTab},
		{k.Up, k.Down},
		{k.Add, k.Edit, k.Complete, k.Delete},
		{k.Help, k.Quit},
	}
}

// EditorHelp is shown in the footer while the editor is open.
func (k KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

// All returns every binding for legends.
func (k KeyMap) All() []key.Binding {
	out := make([]key.Binding, 0, 13)
	for _, col := range k.FullHelp() {
		out = append(out, col...)
	}
	return append(out, k.EditorHelp()...)
}
