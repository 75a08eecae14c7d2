package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"tableflip.dev/todo/pkg/logging"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
)

// Service provides the task operations shared by the command front ends.
// It serializes access to one Store so callers that are not driven by a
// single event loop (the MCP server, for one) can share it. Indices are
// still positional: a caller that acts on an index it read before another
// caller's mutation acts on whatever now sits there.
type Service struct {
	Store  *store.Store
	Logger *slog.Logger

	mu sync.Mutex
}

// ErrEmptyName is returned by Add and Edit when the name is blank. The
// store treats this as a silent no-op; the service reports it.
var ErrEmptyName = errors.New("app: task name is empty")

// New returns a Service over a fresh store.
func New(logger *slog.Logger) *Service {
	return &Service{Store: store.New(), Logger: logger}
}

// Log returns the service logger, never nil.
func (s *Service) Log() *slog.Logger {
	if s.Logger == nil {
		return logging.Discard()
	}
	return s.Logger
}

func (s *Service) store() *store.Store {
	if s.Store == nil {
		s.Store = store.New()
	}
	return s.Store
}

// Add appends a task named name to the pending list.
func (s *Service) Add(ctx context.Context, name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.store()
	st.OpenEditor()
	st.SetDraft(name)
	if st.Submit() != store.OutcomeAdded {
		s.Log().DebugContext(ctx, "add discarded", "name", name)
		return -1, ErrEmptyName
	}
	i := st.PendingLen() - 1
	s.Log().InfoContext(ctx, "task added", "index", i, "pending", st.PendingLen())
	return i, nil
}

// Edit renames pending[i].
func (s *Service) Edit(ctx context.Context, i int, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.store()
	if err := st.EditTask(i); err != nil {
		return err
	}
	st.SetDraft(name)
	if st.Submit() != store.OutcomeReplaced {
		s.Log().DebugContext(ctx, "edit discarded", "index", i)
		return ErrEmptyName
	}
	s.Log().InfoContext(ctx, "task edited", "index", i)
	return nil
}

// Complete moves pending[i] to the completed list. It returns the task and
// its index in the completed list.
func (s *Service) Complete(ctx context.Context, i int) (task.Task, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.store()
	pending := st.Pending()
	if err := st.CompleteTask(i); err != nil {
		return task.Task{}, -1, err
	}
	at := st.CompletedLen() - 1
	s.Log().InfoContext(ctx, "task completed", "index", i, "completed", st.CompletedLen())
	return pending[i], at, nil
}

// Delete drops pending[i] and returns it.
func (s *Service) Delete(ctx context.Context, i int) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.store()
	pending := st.Pending()
	if err := st.DeleteTask(i); err != nil {
		return task.Task{}, err
	}
	s.Log().InfoContext(ctx, "task deleted", "index", i, "pending", st.PendingLen())
	return pending[i], nil
}

// SwitchTab changes the active tab.
func (s *Service) SwitchTab(ctx context.Context, t task.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store().SwitchTab(t)
	s.Log().DebugContext(ctx, "tab switched", "tab", t.String())
}

// OpenEditor opens the editor to add a task.
func (s *Service) OpenEditor(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store().OpenEditor()
	s.Log().DebugContext(ctx, "editor opened")
}

// OpenEditorAt opens the editor on pending[i].
func (s *Service) OpenEditorAt(ctx context.Context, i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store().OpenEditorAt(i); err != nil {
		return err
	}
	s.Log().DebugContext(ctx, "editor opened", "index", i)
	return nil
}

// SetDraft replaces the draft.
func (s *Service) SetDraft(_ context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store().SetDraft(text)
}

// Submit commits the draft.
func (s *Service) Submit(ctx context.Context) store.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.store().Submit()
	s.Log().InfoContext(ctx, "editor submitted", "outcome", out.String())
	return out
}

// CloseEditor cancels the editor.
func (s *Service) CloseEditor(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store().CloseEditor()
	s.Log().DebugContext(ctx, "editor closed")
}

// Snapshot returns a copy of the store state.
func (s *Service) Snapshot() store.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store().Snapshot()
}
