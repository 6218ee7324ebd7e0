// ABOUTME: MCP server implementation for wordbook
// ABOUTME: Exposes the word and date commands to AI assistants over stdio
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/wordbook/internal/app"
)

// Version is reported to MCP clients.
const Version = "0.1.0"

// Server wraps the MCP server with wordbook-specific functionality.
type Server struct {
	mcpServer *mcp.Server
	app       *app.App
}

// NewServer creates a new wordbook MCP server over an opened App.
func NewServer(a *app.App) *Server {
	impl := &mcp.Implementation{
		Name:    "wordbook",
		Version: Version,
	}

	server := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		app:       a,
	}

	// Register components
	server.registerPrompts()
	server.registerTools()
	server.registerResources()

	return server
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}
