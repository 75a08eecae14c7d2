package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/commands/options"
	"tableflip.dev/todo/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server on stdio",
		Long: `Launch an MCP server over stdin/stdout that exposes the task lists as
resources and add, edit, complete, delete and list as tools. The lists live
only as long as the server process.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := options.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			runner := mcp.Runner{
				Service: s.Service,
				Name:    "todo",
				Version: version,
			}
			return runner.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
