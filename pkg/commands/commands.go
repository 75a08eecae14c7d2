package commands

import (
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/todo/pkg/commands/options"
)

func New() *cobra.Command {
	interactive := &options.InteractiveOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "todo",
		Short: base.Wrap80("A two-tab to-do list for the terminal. Without a subcommand it opens the user interface, or runs commands from stdin when stdin is not a terminal."),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive.Resolve(os.Stdin, os.Stdout) {
				return runUI(cmd)
			}
			return runScript(cmd, oo, scriptOptions{}, nil)
		},
	}
	options.InteractiveArgs(cmd, interactive)
	options.AddOutputArg(cmd, oo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addRun(topLevel)
	addShell(topLevel)
	addMCP(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
