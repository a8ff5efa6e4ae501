package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rbright/hyprmcp/internal/cli"
	"github.com/rbright/hyprmcp/internal/config"
	"github.com/rbright/hyprmcp/internal/doctor"
	"github.com/rbright/hyprmcp/internal/ipc"
	"github.com/rbright/hyprmcp/internal/logging"
	"github.com/rbright/hyprmcp/internal/server"
	"github.com/rbright/hyprmcp/internal/version"
)

type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cli.HelpText("hyprmcp"))
		return 2
	}

	if parsed.ShowHelp {
		fmt.Fprint(r.Stdout, cli.HelpText("hyprmcp"))
		return 0
	}

	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	cfg, warnings := config.FromEnv()

	logRuntime, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: setup logging: %v\n", err)
		return 1
	}
	defer func() { _ = logRuntime.Close() }()

	logger := r.Logger
	if logger == nil {
		logger = logRuntime.Logger
	}

	for _, w := range warnings {
		fmt.Fprintf(r.Stderr, "warning: %s: %s\n", w.Variable, w.Message)
		logger.Warn("config warning", "variable", w.Variable, "message", w.Message)
	}

	logger.Info("command start",
		"command", parsed.Command,
		"log", logRuntime.Path,
	)

	switch parsed.Command {
	case cli.CommandDoctor:
		report := doctor.Run(ctx, cfg)
		fmt.Fprintln(r.Stdout, report.String())
		if report.OK() {
			return 0
		}
		return 1
	case cli.CommandTools:
		return r.commandTools(logger)
	case cli.CommandServe:
		return r.commandServe(ctx, cfg, logger)
	default:
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		return 2
	}
}

func (r Runner) commandTools(logger *slog.Logger) int {
	srv := server.New(nil, logger) // catalog only, nothing is invoked
	for _, tool := range srv.Catalog() {
		fmt.Fprintf(r.Stdout, "%-13s %s\n", tool.Name, tool.Description)
	}
	return 0
}

// commandServe resolves the control socket, then serves MCP on stdio until
// the client disconnects. A missing socket path is fatal here, before any
// tool call can happen.
func (r Runner) commandServe(ctx context.Context, cfg config.Config, logger *slog.Logger) int {
	socketPath, err := ipc.ControlSocketPath()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("socket resolution failed", "error", err.Error())
		return 1
	}

	client := ipc.NewClient(socketPath, cfg.Timeout)
	srv := server.New(client, logger)

	logger.Info("serving MCP over stdio",
		"socket", socketPath,
		"timeout", cfg.Timeout.String(),
		"tools", len(srv.Catalog()),
	)

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("server stopped", "error", err.Error())
		return 1
	}

	logger.Info("server shut down")
	return 0
}
