package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewSolauditMCPServer creates an MCP server with all solaudit tools and
// resources registered. dir is the working directory used for config lookup
// and for resolving relative contract paths.
func NewSolauditMCPServer(dir string) *server.MCPServer {
	s := server.NewMCPServer(
		"solaudit",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, dir)
	registerResources(s)

	return s
}
