package options

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// InteractiveOptions decides whether the bare command opens the UI or
// reads a script from stdin.
type InteractiveOptions struct {
	Interactive bool
}

func InteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		`Open the user interface even when stdin is not a terminal.`)
}

// Resolve reports whether to run interactively: forced by the flag, or
// when both stdin and stdout are terminals.
func (o *InteractiveOptions) Resolve(in, out *os.File) bool {
	if o.Interactive {
		return true
	}
	return isTerminal(in) && isTerminal(out)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
