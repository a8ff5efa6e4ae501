// Package server exposes Hyprland control-socket commands as MCP tools over
// stdio.
package server

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rbright/hyprmcp/internal/version"
)

const instructions = `This server bridges MCP clients to the Hyprland compositor's control
socket. Dedicated tools cover the common operations: workspace switching,
window and monitor queries, notifications, config keywords, and reloads.
Every reply is the compositor's response text, returned verbatim. For any
command without a dedicated tool, use dispatch, which passes its command
string to the compositor unmodified.`

// Sender performs one command exchange with the compositor.
type Sender interface {
	Command(ctx context.Context, command string) (string, error)
}

// Server routes MCP tool calls to the Hyprland control socket.
type Server struct {
	mcp     *mcp.Server
	sender  Sender
	logger  *slog.Logger
	catalog []ToolInfo
}

// New builds the MCP server with every tool registered against sender.
func New(sender Sender, logger *slog.Logger) *Server {
	s := &Server{sender: sender, logger: logger}

	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    "hyprmcp",
		Title:   "Hyprland Control",
		Version: version.Version,
	}, &mcp.ServerOptions{
		Instructions: instructions,
	})

	s.registerAll()
	return s
}

// Run serves MCP over stdio until the client disconnects or ctx ends.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// Catalog lists every registered tool in registration order.
func (s *Server) Catalog() []ToolInfo {
	out := make([]ToolInfo, len(s.catalog))
	copy(out, s.catalog)
	return out
}
