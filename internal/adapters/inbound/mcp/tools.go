package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/solaudit/solaudit/internal/adapters/outbound/config"
	"github.com/solaudit/solaudit/internal/application"
	"github.com/solaudit/solaudit/internal/domain/scoring"
)

// registerTools registers all solaudit MCP tools on the given server.
func registerTools(s *server.MCPServer, dir string) {
	// 1. solaudit_scan_file
	s.AddTool(
		mcplib.NewTool("solaudit_scan_file",
			mcplib.WithDescription("Scan a Solidity contract file and return the full audit report as JSON"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the .sol file, relative to the working directory"),
			),
		),
		handleScanFile(dir),
	)

	// 2. solaudit_scan_source
	s.AddTool(
		mcplib.NewTool("solaudit_scan_source",
			mcplib.WithDescription("Scan raw Solidity source text and return the full audit report as JSON"),
			mcplib.WithString("source",
				mcplib.Required(),
				mcplib.Description("The Solidity source code to scan"),
			),
		),
		handleScanSource(dir),
	)

	// 3. solaudit_checklist
	s.AddTool(
		mcplib.NewTool("solaudit_checklist",
			mcplib.WithDescription("Return the pre-deployment security review checklist"),
		),
		handleChecklist(),
	)
}

func newAuditService() *application.AuditService {
	return application.NewAuditService(config.New())
}

func handleScanFile(dir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, file)
		}

		report, err := newAuditService().AuditFile(path)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleScanSource(dir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		source, err := request.RequireString("source")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := newAuditService().AuditSource(dir, source)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleChecklist() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return textResult("- " + strings.Join(scoring.Checklist(), "\n- ")), nil
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
