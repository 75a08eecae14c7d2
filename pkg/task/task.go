// Package task defines the values held by the task store.
package task

import (
	"fmt"
	"strings"
)

// Task is a single to-do item. It has no identity beyond its position in
// the list that owns it.
type Task struct {
	Name string `json:"name" yaml:"name"`
}

// New returns a Task named name. The name is stored verbatim.
func New(name string) Task {
	return Task{Name: name}
}

func (t Task) String() string {
	return t.Name
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Tab selects which list the view shows.
type Tab int

const (
	Pending Tab = iota
	Completed
)

func (t Tab) String() string {
	switch t {
	case Pending:
		return "pending"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("tab(%d)", int(t))
	}
}

// Title is the label used on the tab button.
func (t Tab) Title() string {
	switch t {
	case Completed:
		return "Completed"
	default:
		return "To-Do List"
	}
}

// Next returns the other tab.
func (t Tab) Next() Tab {
	if t == Pending {
		return Completed
	}
	return Pending
}

// ParseTab accepts the tab names used by config files and commands.
func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pending", "todo", "to-do":
		return Pending, nil
	case "completed", "complete", "done":
		return Completed, nil
	default:
		return Pending, fmt.Errorf("unknown tab %q", s)
	}
}
