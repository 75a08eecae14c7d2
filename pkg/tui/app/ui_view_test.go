package teaui

import (
	"os"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/termenv"

	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
	"tableflip.dev/todo/pkg/tui/overlay"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

var specialKeys = map[string]tea.KeyType{
	"tab":       tea.KeyTab,
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"ctrl+s":    tea.KeyCtrlS,
	"backspace": tea.KeyBackspace,
	"ctrl+c":    tea.KeyCtrlC,
}

func keyMsg(k string) tea.KeyMsg {
	if t, ok := specialKeys[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m *Model, keys ...string) tea.Cmd {
	t.Helper()
	var last tea.Cmd
	for _, k := range keys {
		_, last = m.Update(keyMsg(k))
	}
	return last
}

func typeText(t *testing.T, m *Model, text string) {
	t.Helper()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func addTask(t *testing.T, m *Model, name string) {
	t.Helper()
	press(t, m, "a")
	typeText(t, m, name)
	press(t, m, "ctrl+s")
}

func names(list []task.Task) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.Name
	}
	return out
}

func newSized(st *store.Store) *Model {
	m := New(st, Options{HelpStyle: "notty"})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func TestAddThroughEditor(t *testing.T) {
	st := store.New()
	m := newSized(st)

	press(t, m, "a")
	if !st.EditorOpen() {
		t.Fatalf("a should open the editor")
	}
	view := overlay.Plain(m.View())
	if !strings.Contains(view, "Add Task") {
		t.Fatalf("editor should be labelled Add Task; view=%q", view)
	}

	typeText(t, m, "Buy milk")
	if st.Draft() != "Buy milk" {
		t.Fatalf("draft not bound to the text area: %q", st.Draft())
	}

	press(t, m, "ctrl+s")
	if st.EditorOpen() {
		t.Fatalf("submit should close the editor")
	}
	if got := names(st.Pending()); !reflect.DeepEqual(got, []string{"Buy milk"}) {
		t.Fatalf("pending = %v", got)
	}
	view = overlay.Plain(m.View())
	if !strings.Contains(view, "Buy milk") {
		t.Fatalf("pending list should show the task; view=%q", view)
	}
	if !strings.Contains(view, "Added") {
		t.Fatalf("status should report the add; view=%q", view)
	}
}

func TestSubmitBlankIsIgnored(t *testing.T) {
	st := store.New()
	m := newSized(st)

	press(t, m, "a")
	typeText(t, m, "   ")
	press(t, m, "ctrl+s")

	if st.EditorOpen() {
		t.Fatalf("editor should close even when the draft is blank")
	}
	if st.PendingLen() != 0 {
		t.Fatalf("blank draft should not be added")
	}
	if !strings.Contains(overlay.Plain(m.View()), "Nothing added") {
		t.Fatalf("status should explain the discard")
	}
}

func TestCancelLeavesLists(t *testing.T) {
	st := store.New()
	m := newSized(st)
	addTask(t, m, "keep")

	press(t, m, "e")
	typeText(t, m, " changed")
	press(t, m, "esc")

	if st.EditorOpen() || st.Draft() != "" {
		t.Fatalf("cancel should close and clear the editor")
	}
	if got := names(st.Pending()); !reflect.DeepEqual(got, []string{"keep"}) {
		t.Fatalf("pending = %v", got)
	}
}

func TestEditSelectedRow(t *testing.T) {
	st := store.New()
	m := newSized(st)
	addTask(t, m, "Draft")

	press(t, m, "e")
	if i, ok := st.EditingIndex(); !ok || i != 0 {
		t.Fatalf("EditingIndex() = %d, %v", i, ok)
	}
	if !strings.Contains(overlay.Plain(m.View()), "Edit Task") {
		t.Fatalf("editor should be labelled Edit Task")
	}
	if st.Draft() != "Draft" {
		t.Fatalf("draft should be loaded from the task, got %q", st.Draft())
	}

	for range "Draft" {
		press(t, m, "backspace")
	}
	if st.Draft() != "" {
		t.Fatalf("backspace should clear the draft, got %q", st.Draft())
	}
	typeText(t, m, "Final")
	press(t, m, "ctrl+s")

	if got := names(st.Pending()); !reflect.DeepEqual(got, []string{"Final"}) {
		t.Fatalf("pending = %v", got)
	}
	if st.CompletedLen() != 0 {
		t.Fatalf("completed should be empty")
	}
}

func TestCompleteAndTabs(t *testing.T) {
	st := store.New()
	m := newSized(st)
	addTask(t, m, "Buy milk")
	addTask(t, m, "Walk dog")

	press(t, m, "x")
	if got := names(st.Pending()); !reflect.DeepEqual(got, []string{"Walk dog"}) {
		t.Fatalf("pending = %v", got)
	}
	if got := names(st.Completed()); !reflect.DeepEqual(got, []string{"Buy milk"}) {
		t.Fatalf("completed = %v", got)
	}

	view := overlay.Plain(m.View())
	if strings.Contains(view, "Buy milk") && !strings.Contains(view, `Completed "Buy milk"`) {
		t.Fatalf("pending tab should not list completed tasks; view=%q", view)
	}

	press(t, m, "tab")
	if st.ActiveTab() != task.Completed {
		t.Fatalf("tab should switch to completed")
	}
	view = overlay.Plain(m.View())
	if !strings.Contains(view, "✘ Buy milk") {
		t.Fatalf("completed tab should list the task; view=%q", view)
	}

	// Row actions are inert on the read-only completed tab.
	press(t, m, "x", "d", "e")
	if st.PendingLen() != 1 || st.CompletedLen() != 1 || st.EditorOpen() {
		t.Fatalf("completed tab must be read-only: %+v", st.Snapshot())
	}

	press(t, m, "1")
	if st.ActiveTab() != task.Pending {
		t.Fatalf("1 should select the pending tab")
	}
}

func TestCursorAndDelete(t *testing.T) {
	st := store.New()
	m := newSized(st)
	for _, n := range []string{"a", "b", "c"} {
		addTask(t, m, n)
	}

	press(t, m, "j", "j", "j")
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want clamped at 2", m.cursor)
	}
	press(t, m, "k")
	press(t, m, "d")
	if got := names(st.Pending()); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("pending = %v", got)
	}
	if st.CompletedLen() != 0 {
		t.Fatalf("delete must not complete")
	}

	press(t, m, "down", "d")
	if m.cursor != 0 {
		t.Fatalf("cursor should clamp after deleting the last row, got %d", m.cursor)
	}
	if got := names(st.Pending()); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("pending = %v", got)
	}
}

func TestActionsOnEmptyListAreNoops(t *testing.T) {
	st := store.New()
	m := newSized(st)
	press(t, m, "x", "d", "e")
	if st.EditorOpen() || st.PendingLen() != 0 {
		t.Fatalf("actions on an empty list should do nothing")
	}
	if !strings.Contains(overlay.Plain(m.View()), "No tasks yet") {
		t.Fatalf("empty state missing")
	}
}

func TestKeysTypeIntoEditor(t *testing.T) {
	st := store.New()
	m := newSized(st)
	press(t, m, "a", "q")
	if !st.EditorOpen() {
		t.Fatalf("q should type into the editor, not leave it")
	}
	if st.Draft() != "q" {
		t.Fatalf("draft = %q", st.Draft())
	}
}

func TestQuit(t *testing.T) {
	m := newSized(store.New())
	cmd := press(t, m, "q")
	if cmd == nil {
		t.Fatalf("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newSized(store.New())
	press(t, m, "?")
	if !m.showHelp {
		t.Fatalf("? should open help")
	}
	if !strings.Contains(overlay.Plain(m.View()), "Keys") {
		t.Fatalf("help overlay should render")
	}
	press(t, m, "esc")
	if m.showHelp {
		t.Fatalf("esc should close help")
	}
}

func TestInitOpensEditorFromStore(t *testing.T) {
	st := store.New()
	st.OpenEditor()
	st.SetDraft("half typed")
	m := New(st, Options{})
	m.Init()
	if !m.editor.IsOpen() || m.editor.Value() != "half typed" {
		t.Fatalf("Init should mirror the store's open editor")
	}
}

func TestLongNamesTruncate(t *testing.T) {
	st := store.New()
	m := newSized(st)
	addTask(t, m, strings.Repeat("x", 300))
	for _, line := range strings.Split(overlay.Plain(m.View()), "\n") {
		if w := ansi.PrintableRuneWidth(line); w > 100 {
			t.Fatalf("line wider than terminal (%d): %q", w, line)
		}
	}
}

func TestEditorOverlaysList(t *testing.T) {
	st := store.New()
	m := newSized(st)
	addTask(t, m, "Buy milk")

	press(t, m, "a")
	view := overlay.Plain(m.View())
	if !strings.Contains(view, "Add Task") {
		t.Fatalf("editor missing; view=%q", view)
	}
	if !strings.Contains(view, "Buy milk") {
		t.Fatalf("list should stay visible behind the editor; view=%q", view)
	}
	for _, line := range strings.Split(view, "\n") {
		if w := ansi.PrintableRuneWidth(line); w > 100 {
			t.Fatalf("line wider than terminal (%d): %q", w, line)
		}
	}
}

func TestLongNamesAreNotCapped(t *testing.T) {
	st := store.New()
	m := newSized(st)
	name := strings.Repeat("x", 1500)
	addTask(t, m, name)

	pending := st.Pending()
	if len(pending) != 1 {
		t.Fatalf("pending = %d", len(pending))
	}
	if got := len(pending[0].Name); got != len(name) {
		t.Fatalf("stored name has %d runes, want %d", got, len(name))
	}
}

func TestEditorOpenedOutsideKeyLoop(t *testing.T) {
	st := store.New()
	m := newSized(st)
	st.OpenEditor()
	st.SetDraft("half ")

	typeText(t, m, "done")
	if st.Draft() != "half done" {
		t.Fatalf("draft = %q", st.Draft())
	}
	press(t, m, "ctrl+s")
	if got := names(st.Pending()); !reflect.DeepEqual(got, []string{"half done"}) {
		t.Fatalf("pending = %v", got)
	}
}
