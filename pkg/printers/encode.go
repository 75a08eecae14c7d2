package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/todo/pkg/store"
)

// Format selects how a state is written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts table, json or yaml. Empty means table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Lists is the machine readable view of a state.
type Lists struct {
	Pending   []string `json:"pending" yaml:"pending"`
	Completed []string `json:"completed" yaml:"completed"`
}

// ListsOf extracts the task names of st.
func ListsOf(st store.State) Lists {
	l := Lists{
		Pending:   make([]string, 0, len(st.Pending)),
		Completed: make([]string, 0, len(st.Completed)),
	}
	for _, t := range st.Pending {
		l.Pending = append(l.Pending, t.Name)
	}
	for _, t := range st.Completed {
		l.Completed = append(l.Completed, t.Name)
	}
	return l
}

// Write renders st to w in format f.
func Write(w io.Writer, st store.State, f Format) error {
	switch f {
	case "", FormatTable:
		pp := PrettyPrint{ShowIndex: true, Out: w}
		pp.State(st)
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ListsOf(st))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ListsOf(st)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (expected table, json or yaml)", f)
	}
}
