// Package store holds the in-memory task lists and editor state, and owns
// every transition between them.
//
// A Store is not safe for concurrent use. Tasks are addressed by their
// position in the pending list, so callers must derive indices from the
// state they last observed and must not interleave mutations from several
// actors without their own serialization (see pkg/app).
package store

import (
	"errors"
	"fmt"

	"tableflip.dev/todo/pkg/task"
)

// ErrIndexOutOfRange is returned by index based operations when the index
// does not address an element of the pending list. State is left unchanged.
var ErrIndexOutOfRange = errors.New("store: index out of range")

// Outcome reports what Submit did with the draft.
type Outcome int

const (
	// OutcomeDiscarded means the draft was blank (or its target vanished)
	// and no list changed.
	OutcomeDiscarded Outcome = iota
	// OutcomeAdded means the draft was appended to the pending list.
	OutcomeAdded
	// OutcomeReplaced means the draft replaced the task being edited.
	OutcomeReplaced
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeReplaced:
		return "replaced"
	default:
		return "discarded"
	}
}

// State is a point in time copy of the store.
type State struct {
	Pending    []task.Task `json:"pending" yaml:"pending"`
	Completed  []task.Task `json:"completed" yaml:"completed"`
	EditorOpen bool        `json:"editorOpen" yaml:"editorOpen"`
	Draft      string      `json:"draft" yaml:"draft"`
	// EditingIndex is meaningful only when Editing is true.
	EditingIndex int      `json:"editingIndex" yaml:"editingIndex"`
	Editing      bool     `json:"editing" yaml:"editing"`
	ActiveTab    task.Tab `json:"activeTab" yaml:"activeTab"`
}

// Store is the task list state machine.
type Store struct {
	pending   []task.Task
	completed []task.Task

	editorOpen bool
	draft      string
	editing    bool
	editIndex  int

	tab task.Tab
}

// New returns an empty store with the editor closed on the pending tab.
func New() *Store {
	return &Store{
		pending:   []task.Task{},
		completed: []task.Task{},
		tab:       task.Pending,
	}
}

// OpenEditor opens the editor to add a new task. The draft is left as it
// is.
func (s *Store) OpenEditor() {
	s.editorOpen = true
	s.editing = false
	s.editIndex = 0
}

// OpenEditorAt opens the editor on pending[i] and loads its name into the
// draft.
func (s *Store) OpenEditorAt(i int) error {
	if err := s.checkPending(i); err != nil {
		return err
	}
	s.editorOpen = true
	s.editing = true
	s.editIndex = i
	s.draft = s.pending[i].Name
	return nil
}

// EditTask is OpenEditorAt under the name the view uses for its per-row
// action.
func (s *Store) EditTask(i int) error {
	return s.OpenEditorAt(i)
}

// CloseEditor closes the editor and forgets the draft and editing target.
func (s *Store) CloseEditor() {
	s.editorOpen = false
	s.editing = false
	s.editIndex = 0
	s.draft = ""
}

// SetDraft replaces the draft verbatim.
func (s *Store) SetDraft(text string) {
	s.draft = text
}

// Submit closes the editor and commits the draft. A blank draft is
// dropped. The stored name is the raw draft; trimming only decides
// blankness.
func (s *Store) Submit() Outcome {
	draft, editing, i := s.draft, s.editing, s.editIndex
	s.CloseEditor()

	if task.IsBlank(draft) {
		return OutcomeDiscarded
	}
	if editing {
		if i < 0 || i >= len(s.pending) {
			return OutcomeDiscarded
		}
		s.pending[i] = task.New(draft)
		return OutcomeReplaced
	}
	s.pending = append(s.pending, task.New(draft))
	return OutcomeAdded
}

// CompleteTask moves pending[i] to the end of the completed list.
func (s *Store) CompleteTask(i int) error {
	if err := s.checkPending(i); err != nil {
		return err
	}
	done := s.pending[i]
	s.pending = removeAt(s.pending, i)
	s.completed = append(s.completed, done)
	return nil
}

// DeleteTask drops pending[i].
func (s *Store) DeleteTask(i int) error {
	if err := s.checkPending(i); err != nil {
		return err
	}
	s.pending = removeAt(s.pending, i)
	return nil
}

// SwitchTab changes the visible tab. The lists are not touched.
func (s *Store) SwitchTab(t task.Tab) {
	s.tab = t
}

// Pending returns a copy of the pending list.
func (s *Store) Pending() []task.Task {
	return clone(s.pending)
}

// Completed returns a copy of the completed list.
func (s *Store) Completed() []task.Task {
	return clone(s.completed)
}

// PendingLen is len(Pending()) without the copy.
func (s *Store) PendingLen() int { return len(s.pending) }

// CompletedLen is len(Completed()) without the copy.
func (s *Store) CompletedLen() int { return len(s.completed) }

// EditorOpen reports whether the editor is visible.
func (s *Store) EditorOpen() bool { return s.editorOpen }

// Draft returns the text being composed.
func (s *Store) Draft() string { return s.draft }

// EditingIndex returns the pending index being edited, and false when the
// editor is adding a new task.
func (s *Store) EditingIndex() (int, bool) {
	return s.editIndex, s.editing
}

// ActiveTab returns the visible tab.
func (s *Store) ActiveTab() task.Tab { return s.tab }

// Snapshot copies the full state.
func (s *Store) Snapshot() State {
	return State{
		Pending:      s.Pending(),
		Completed:    s.Completed(),
		EditorOpen:   s.editorOpen,
		Draft:        s.draft,
		EditingIndex: s.editIndex,
		Editing:      s.editing,
		ActiveTab:    s.tab,
	}
}

func (s *Store) checkPending(i int) error {
	if i < 0 || i >= len(s.pending) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(s.pending))
	}
	return nil
}

func removeAt(list []task.Task, i int) []task.Task {
	out := make([]task.Task, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

func clone(list []task.Task) []task.Task {
	out := make([]task.Task, len(list))
	copy(out, list)
	return out
}
