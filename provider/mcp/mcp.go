// Package mcp serves tool definitions over the Model Context Protocol.
package mcp

import (
	"context"
	"fmt"

	"github.com/casualjim/fmp/tool"
	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool describes def as an MCP tool with its JSON schema as input schema.
func Tool(def tool.Definition) (mcp.Tool, error) {
	raw, err := json.Marshal(def.Schema(false))
	if err != nil {
		return mcp.Tool{}, fmt.Errorf("failed to encode tool %s schema: %w", def.Name, err)
	}
	return mcp.NewToolWithRawSchema(def.Name, def.Description, raw), nil
}

// Handler calls def with the request arguments. Tool failures become error
// results, so the client sees them as tool output rather than protocol errors.
func Handler(def tool.Definition) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := json.Marshal(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(tool.ErrorText(err)), nil
		}
		out, err := def.Invoke(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(tool.ErrorText(err)), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

// Register adds every definition to s.
func Register(s *server.MCPServer, defs ...tool.Definition) error {
	for _, def := range defs {
		t, err := Tool(def)
		if err != nil {
			return err
		}
		s.AddTool(t, Handler(def))
	}
	return nil
}

// NewServer creates an MCP server exposing defs.
func NewServer(name, version string, defs ...tool.Definition) (*server.MCPServer, error) {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	if err := Register(s, defs...); err != nil {
		return nil, err
	}
	return s, nil
}
