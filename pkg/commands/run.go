package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/runner/script"
)

type scriptOptions struct {
	KeepGoing bool
	Quiet     bool
}

func addRun(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	so := scriptOptions{}

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "apply task commands from a file or stdin and print the lists",
		Example: `
todo run plan.todo
printf 'add Buy milk\nadd Walk dog\ncomplete 0\n' | todo run -o yaml
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, oo, so, args)
		},
	}
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVarP(&so.KeepGoing, "keep-going", "k", false, "Report failing lines and continue.")
	cmd.Flags().BoolVarP(&so.Quiet, "quiet", "q", false, "Only print the final lists.")

	topLevel.AddCommand(cmd)
}

func runScript(cmd *cobra.Command, oo *options.OutputOptions, so scriptOptions, args []string) error {
	oo.Out = cmd.OutOrStdout()
	format, err := oo.Format()
	if err != nil {
		return err
	}

	src, closeSrc, err := openScript(cmd, args)
	if err != nil {
		return oo.HandleError(err)
	}
	defer closeSrc()

	s, err := options.OpenSession(cmd.Context())
	if err != nil {
		return oo.HandleError(err)
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	in := script.New(s.Service)
	in.ContinueOnError = so.KeepGoing
	in.OnError = func(line int, err error) {
		_, _ = color.New(color.FgRed).Fprintf(errOut, "line %d: %v\n", line, err)
	}
	if !so.Quiet && format == printers.FormatTable {
		in.OnResult = func(r script.Result) {
			if r.Message != "" {
				_, _ = fmt.Fprintln(out, r.Message)
			}
		}
	}

	if err := in.Run(cmd.Context(), src); err != nil {
		return oo.HandleError(err)
	}
	if format == printers.FormatTable {
		_, _ = fmt.Fprintln(out)
	}
	return printers.Write(out, in.Snapshot(), format)
}

func openScript(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
