package mcp

import (
	"context"
	"encoding/json"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/solaudit/solaudit/internal/domain/scoring"
)

// registerResources registers all solaudit MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	// solaudit://checklist - the advisory review checklist
	s.AddResource(
		mcplib.NewResource(
			"solaudit://checklist",
			"Review Checklist",
			mcplib.WithResourceDescription("Pre-deployment security review checklist"),
			mcplib.WithMIMEType("application/json"),
		),
		handleChecklistResource(),
	)
}

func handleChecklistResource() server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(scoring.Checklist(), "", "  ")
		if err != nil {
			return nil, err
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
