// Package shell is an interactive line prompt over the command interpreter.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/script"
)

const prompt = "todo> "

// Shell reads commands until EOF or quit.
type Shell struct {
	Service *app.Service
	Out     io.Writer

	interp *script.Interpreter
}

func (s *Shell) out() io.Writer {
	if s.Out == nil {
		return color.Output
	}
	return s.Out
}

func (s *Shell) interpreter() *script.Interpreter {
	if s.interp == nil {
		if s.Service == nil {
			s.Service = app.New(nil)
		}
		s.interp = script.New(s.Service)
	}
	return s.interp
}

// Do runs the prompt on the terminal.
func (s *Shell) Do(ctx context.Context) error {
	bold := color.New(color.Bold).SprintFunc()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          bold(prompt),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return fmt.Errorf("initializing readline: %w", err)
	}
	defer rl.Close()

	_, _ = fmt.Fprintln(s.out(), "Type help for commands, quit to leave.")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		if s.Handle(ctx, line) {
			return nil
		}
	}
}

// Handle runs one line and prints its outcome. It reports whether the
// shell should exit.
func (s *Shell) Handle(ctx context.Context, line string) bool {
	in := s.interpreter()
	res, err := in.Exec(ctx, line)
	if errors.Is(err, script.ErrQuit) {
		return true
	}
	if err != nil {
		_, _ = color.New(color.FgRed).Fprintf(s.out(), "error: %v\n", err)
		s.Service.Log().DebugContext(ctx, "shell command failed", "line", strings.TrimSpace(line), "error", err)
		return false
	}
	if res.List {
		pp := printers.PrettyPrint{ShowIndex: true, Out: s.out()}
		pp.State(in.Snapshot())
		return false
	}
	if res.Message != "" {
		_, _ = fmt.Fprintln(s.out(), res.Message)
	}
	return false
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("add"),
		readline.PcItem("edit"),
		readline.PcItem("complete"),
		readline.PcItem("delete"),
		readline.PcItem("tab",
			readline.PcItem("pending"),
			readline.PcItem("completed"),
		),
		readline.PcItem("open"),
		readline.PcItem("draft"),
		readline.PcItem("submit"),
		readline.PcItem("cancel"),
		readline.PcItem("list"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}
