// Package ui launches the interactive to-do list.
package ui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/config"
	"tableflip.dev/todo/pkg/store"
	teaui "tableflip.dev/todo/pkg/tui/app"
	"tableflip.dev/todo/pkg/tui/keys"
	"tableflip.dev/todo/pkg/tui/theme"
)

// UI runs the Bubble Tea program over a session's store.
type UI struct {
	Service *app.Service
	Config  *config.Config

	// In and Out override the terminal, mostly for tests.
	In  io.Reader
	Out io.Writer
}

// Do blocks until the user quits or ctx is cancelled.
func (u *UI) Do(ctx context.Context) error {
	svc := u.Service
	if svc == nil {
		svc = app.New(nil)
	}
	cfg := u.Config
	if cfg == nil {
		cfg = config.Default()
	}

	th := theme.New(cfg.Accent)
	km := keys.Default()

	if svc.Store == nil {
		svc.Store = store.New()
	}
	st := svc.Store
	st.SwitchTab(cfg.StartTab)

	opts := u.programOptions(ctx, cfg)
	svc.Log().InfoContext(ctx, "ui starting", "tab", cfg.StartTab.String(), "alt_screen", cfg.AltScreen)

	err := teaui.Run(st, teaui.Options{
		Theme:  &th,
		Keys:   &km,
		Logger: svc.Log(),
	}, opts...)
	if err != nil {
		svc.Log().ErrorContext(ctx, "ui exited", "error", err)
		return err
	}
	snap := st.Snapshot()
	svc.Log().InfoContext(ctx, "ui exited", "pending", len(snap.Pending), "completed", len(snap.Completed))
	return nil
}

func (u *UI) programOptions(ctx context.Context, cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if u.In != nil {
		opts = append(opts, tea.WithInput(u.In))
	}
	if u.Out != nil {
		opts = append(opts, tea.WithOutput(u.Out))
	}
	return opts
}
