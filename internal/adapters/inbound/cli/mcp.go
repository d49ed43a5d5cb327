package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/solaudit/solaudit/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the solaudit MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the solaudit MCP server (stdio)",
		Long:  "Start the solaudit MCP server using stdio transport, exposing contract scanning to AI coding assistants.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = "."
			}
			s := mcpadapter.NewSolauditMCPServer(dir)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&dir, "path", "", "Working directory for config lookup (defaults to current directory)")

	return cmd
}
