// Package key provides CLI helpers to display the glyph and key legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todo/pkg/glyph"
	"tableflip.dev/todo/pkg/tui/keys"
)

// Key prints the glyph legend and the UI key bindings.
type Key struct {
	Keys keys.KeyMap
	Out  io.Writer
}

// Do renders both legends.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	km := k.Keys
	if len(km.Add.Keys()) == 0 {
		km = keys.Default()
	}

	_, _ = fmt.Fprintln(out, "")
	k.Glyphs(ctx, out, glyph.Defaults())
	_, _ = fmt.Fprintln(out, "")
	k.Bindings(ctx, out, km.All())
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Glyphs renders the glyph table.
func (k *Key) Glyphs(_ context.Context, out io.Writer, glyphs []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Glyph"), bold.Sprint("Meaning"))
	for _, g := range glyphs {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}

// Bindings renders one row per key binding.
func (k *Key) Bindings(_ context.Context, out io.Writer, bindings []key.Binding) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Action"))
	for _, b := range bindings {
		h := b.Help()
		tbl.AddRow(h.Key, h.Desc)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}
