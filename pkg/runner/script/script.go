// Package script interprets line-oriented task commands against a session.
//
// Each line is a verb followed by its arguments:
//
//	add Buy milk
//	edit 0 Buy oat milk
//	complete 0
//	delete 1
//	tab completed
//	open [index]
//	draft some text
//	submit
//	cancel
//	list
//
// Blank lines and lines starting with # are ignored. Indices are zero-based
// positions in the pending list.
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
)

// ErrQuit is returned by Exec for quit and exit.
var ErrQuit = errors.New("script: quit")

// ErrUnknownVerb is returned for lines that start with an unrecognized verb.
var ErrUnknownVerb = errors.New("script: unknown command")

// Result describes what a single line did.
type Result struct {
	Verb    string
	Message string
	// List is set when the command asked to print the lists.
	List bool
}

// Interpreter applies commands to one session.
type Interpreter struct {
	Service *app.Service

	// ContinueOnError keeps Run going after a failed line.
	ContinueOnError bool
	// OnResult is called after every successful line.
	OnResult func(Result)
	// OnError is called for failed lines when ContinueOnError is set.
	OnError func(line int, err error)
}

// New returns an interpreter over svc.
func New(svc *app.Service) *Interpreter {
	return &Interpreter{Service: svc}
}

func (in *Interpreter) svc() *app.Service {
	if in.Service == nil {
		in.Service = app.New(nil)
	}
	return in.Service
}

// Exec runs one line.
func (in *Interpreter) Exec(ctx context.Context, line string) (Result, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Result{}, nil
	}
	// Text after the single space that ends the verb is kept verbatim.
	verb, rest, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
	verb = strings.ToLower(strings.TrimSpace(verb))
	arg := strings.TrimSpace(rest)

	svc := in.svc()
	res := Result{Verb: verb}

	switch verb {
	case "add":
		i, err := svc.Add(ctx, rest)
		if err != nil {
			return res, err
		}
		res.Message = fmt.Sprintf("added %d: %s", i, rest)

	case "edit":
		i, name, err := indexAndText(rest)
		if err != nil {
			return res, err
		}
		if err := svc.Edit(ctx, i, name); err != nil {
			return res, err
		}
		res.Message = fmt.Sprintf("edited %d: %s", i, name)

	case "complete", "done":
		i, err := index(rest)
		if err != nil {
			return res, err
		}
		t, _, err := svc.Complete(ctx, i)
		if err != nil {
			return res, err
		}
		res.Message = fmt.Sprintf("completed: %s", t)

	case "delete", "rm":
		i, err := index(rest)
		if err != nil {
			return res, err
		}
		t, err := svc.Delete(ctx, i)
		if err != nil {
			return res, err
		}
		res.Message = fmt.Sprintf("deleted: %s", t)

	case "tab":
		var t task.Tab
		if arg == "" {
			t = svc.Snapshot().ActiveTab.Next()
		} else {
			var err error
			if t, err = task.ParseTab(arg); err != nil {
				return res, err
			}
		}
		svc.SwitchTab(ctx, t)
		res.Message = "tab: " + t.Title()

	case "open":
		if arg == "" {
			svc.OpenEditor(ctx)
			res.Message = "editor open: add"
			break
		}
		i, err := index(rest)
		if err != nil {
			return res, err
		}
		if err := svc.OpenEditorAt(ctx, i); err != nil {
			return res, err
		}
		res.Message = fmt.Sprintf("editor open: edit %d", i)

	case "draft":
		svc.SetDraft(ctx, rest)
		res.Message = "draft: " + rest

	case "submit":
		out := svc.Submit(ctx)
		res.Message = "submit: " + out.String()

	case "cancel", "close":
		svc.CloseEditor(ctx)
		res.Message = "editor closed"

	case "list", "ls":
		res.List = true

	case "help":
		res.Message = Usage

	case "quit", "exit":
		return res, ErrQuit

	default:
		return res, fmt.Errorf("%w %q", ErrUnknownVerb, verb)
	}
	return res, nil
}

// Run executes every line of r. It stops at the first failing line unless
// ContinueOnError is set, and stops without error on quit.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := in.Exec(ctx, scanner.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			if !in.ContinueOnError {
				return fmt.Errorf("line %d: %w", n, err)
			}
			if in.OnError != nil {
				in.OnError(n, err)
			}
			continue
		}
		if res.Verb != "" && in.OnResult != nil {
			in.OnResult(res)
		}
	}
	return scanner.Err()
}

// Snapshot returns the session state.
func (in *Interpreter) Snapshot() store.State {
	return in.svc().Snapshot()
}

// Usage lists the verbs.
const Usage = `commands:
  add <name>            add a pending task
  edit <i> <name>       rename pending task i
  complete <i>          move pending task i to completed
  delete <i>            drop pending task i
  tab [pending|completed]
  open [i]              open the editor to add, or to edit task i
  draft <text>          replace the editor draft
  submit                commit the draft
  cancel                close the editor without saving
  list                  print both lists
  quit`

func index(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("expected a task index, got %q", s)
	}
	return i, nil
}

// indexAndText splits "<index> <text>". The text after the separating
// space is returned verbatim.
func indexAndText(s string) (int, string, error) {
	head, tail, _ := strings.Cut(strings.TrimLeft(s, " \t"), " ")
	i, err := index(head)
	if err != nil {
		return 0, "", err
	}
	return i, tail, nil
}
