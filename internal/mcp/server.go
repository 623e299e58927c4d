// ABOUTME: MCP server setup for the baby log store.
// ABOUTME: Wraps MCP server with storage Repository and reporting timezone.
package mcp

import (
	"context"
	"time"

	"github.com/harperreed/babylog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	loc       *time.Location
}

// NewServer creates a new MCP server over the given storage. loc is the
// zone used to resolve "today" for timeframe tools.
func NewServer(repo storage.Repository, loc *time.Location) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "babylog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		loc:       loc,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
