package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/printers"
)

// OutputOptions selects how final state and errors are printed.
type OutputOptions struct {
	Output string

	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().StringVarP(&po.Output, "output", "o", string(printers.FormatTable),
		"Output format. One of 'table', 'json' or 'yaml'.")
}

// Format validates the --output value.
func (o *OutputOptions) Format() (printers.Format, error) {
	return printers.ParseFormat(o.Output)
}

func (o *OutputOptions) out() io.Writer {
	if o.Out == nil {
		return color.Output
	}
	return o.Out
}

// HandleError prints err as a JSON object when JSON output is selected and
// swallows it. Otherwise err is returned unchanged.
func (o *OutputOptions) HandleError(err error) error {
	if o.Output == string(printers.FormatJSON) && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(o.out(), string(b))
		return nil
	}
	return err
}
