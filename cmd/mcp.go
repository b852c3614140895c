package cmd

import (
	"github.com/spf13/cobra"

	"github.com/joescharf/folio/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio)",
	Long: `Start a Model Context Protocol server on stdio.

Exposes the catalog as tools (folio_list_projects, folio_get_project,
folio_list_categories, folio_delete_project) so MCP clients can browse
and administer it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := getClient()
		if err != nil {
			return err
		}
		return mcp.NewServer(c).ServeStdio(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
