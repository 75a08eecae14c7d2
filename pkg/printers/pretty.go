package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todo/pkg/glyph"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/task"
)

// PrettyPrint writes task lists for humans.
type PrettyPrint struct {
	ShowIndex bool
	Out       io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

// Tasks prints one row per task, marked with the glyph for tab.
func (pp *PrettyPrint) Tasks(tab task.Tab, tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = " "
	tbl.Wrap = true
	tbl.MaxColWidth = 80

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	mark := glyph.For(tab).Symbol
	for i, t := range tasks {
		name := strings.ReplaceAll(t.Name, "\n", " ")
		if pp.ShowIndex {
			tbl.AddRow(y.Sprint(strconv.Itoa(i)), mark, name)
		} else {
			tbl.AddRow(mark, name)
		}
	}
	if pp.ShowIndex {
		tbl.RightAlign(0)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// State prints both lists.
func (pp *PrettyPrint) State(st store.State) {
	pp.TitleWithCount(task.Pending.Title(), len(st.Pending))
	pp.Tasks(task.Pending, st.Pending...)
	pp.TitleWithCount(task.Completed.Title(), len(st.Completed))
	pp.Tasks(task.Completed, st.Completed...)
}
