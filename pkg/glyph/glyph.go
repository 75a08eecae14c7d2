// Package glyph holds the symbols used to mark tasks in printed and
// rendered lists.
package glyph

import "tableflip.dev/todo/pkg/task"

// Glyph pairs a symbol with its meaning for the key legend.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

var (
	Pending   = Glyph{Key: "+", Symbol: "●", Meaning: "task"}
	Completed = Glyph{Key: "x", Symbol: "✘", Meaning: "task completed"}
	Cursor    = Glyph{Key: ">", Symbol: "›", Meaning: "selected row"}
)

// For returns the glyph used for rows on tab t.
func For(t task.Tab) Glyph {
	if t == task.Completed {
		return Completed
	}
	return Pending
}

// Defaults lists the glyphs in legend order.
func Defaults() []Glyph {
	return []Glyph{Pending, Completed, Cursor}
}
