package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/shell"
)

func addShell(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "edit the list from an interactive prompt",
		Example: `
todo shell
todo> add Buy milk
todo> list
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := options.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			sh := shell.Shell{Service: s.Service, Out: cmd.OutOrStdout()}
			return sh.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
