package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rbright/hyprmcp/internal/hypr"
)

// ToolInfo describes one registered tool for doctor and help output.
type ToolInfo struct {
	Name        string
	Description string
}

// registerAll wires every tool. The table is deliberately explicit: one call
// per tool, so the full surface is readable in one place and adding a tool
// means adding exactly one line.
func (s *Server) registerAll() {
	register[hypr.DispatchRequest](s, "dispatch",
		"Send a raw hyprctl command to Hyprland and return its reply verbatim. Escape hatch for anything the dedicated tools do not cover.")
	register[hypr.WorkspaceRequest](s, "workspace",
		"Switch focus to a numbered workspace (1-based).")
	register[hypr.ClientsRequest](s, "clients",
		"List every window Hyprland manages, with geometry, workspace, class, and title.")
	register[hypr.MonitorsRequest](s, "monitors",
		"List connected monitors and their modes. Set all to include disabled outputs.")
	register[hypr.WorkspacesRequest](s, "workspaces",
		"List all workspaces with their monitor assignment and window counts.")
	register[hypr.ActiveWindowRequest](s, "activewindow",
		"Describe the currently focused window.")
	register[hypr.NotifyRequest](s, "notify",
		"Show an on-screen notification inside Hyprland.")
	register[hypr.KeywordRequest](s, "keyword",
		"Set a config keyword for the running session without editing the config file.")
	register[hypr.GetOptionRequest](s, "getoption",
		"Read the current value of a Hyprland config option.")
	register[hypr.ReloadRequest](s, "reload",
		"Reload the Hyprland config. Set config_only to skip resetting monitor state.")
	register[hypr.KillRequest](s, "kill",
		"Enter kill mode: the next clicked window is terminated.")
	register[hypr.RollingLogRequest](s, "rollinglog",
		"Fetch a snapshot of Hyprland's recent log output.")
	register[hypr.VersionRequest](s, "version",
		"Report the Hyprland version and build flags.")
}

// register adds one tool whose input schema is derived from the request
// type R and whose handler builds, transmits, and returns the command.
func register[R hypr.Request](s *Server, name, description string) {
	s.catalog = append(s.catalog, ToolInfo{Name: name, Description: description})
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        name,
		Description: description,
	}, func(ctx context.Context, _ *mcp.CallToolRequest, args R) (*mcp.CallToolResult, any, error) {
		return s.invoke(ctx, name, args), nil, nil
	})
}

// invoke runs one tool call end to end. Validation and transport failures
// both surface as error results so the caller always sees text; protocol
// errors are reserved for transport breakage outside our control.
func (s *Server) invoke(ctx context.Context, name string, req hypr.Request) *mcp.CallToolResult {
	logger := s.logger.With("tool", name, "request_id", uuid.NewString())

	command, err := req.Build()
	if err != nil {
		logger.Warn("rejected tool call", "error", err)
		return errorResult(err.Error())
	}

	start := time.Now()
	reply, err := s.sender.Command(ctx, command)
	if err != nil {
		logger.Error("command exchange failed", "command", command, "error", err)
		return errorResult(err.Error())
	}

	logger.Info("command completed",
		"command", command,
		"duration_ms", time.Since(start).Milliseconds(),
		"reply_bytes", len(reply))
	return textResult(reply)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
