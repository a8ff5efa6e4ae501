// Package doctor runs runtime readiness diagnostics for the Hyprland session.
package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rbright/hyprmcp/internal/config"
	"github.com/rbright/hyprmcp/internal/hypr"
	"github.com/rbright/hyprmcp/internal/ipc"
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Pass    bool
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK returns true when all checks pass.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if !check.Pass {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		status := "OK"
		if !check.Pass {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("[%s] %s: %s\n", status, check.Name, check.Message))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Run executes environment, socket, and live-exchange checks.
func Run(ctx context.Context, cfg config.Config) Report {
	checks := []Check{}

	checks = append(checks, Check{
		Name:    "config",
		Pass:    true,
		Message: fmt.Sprintf("timeout=%s log_level=%s", cfg.Timeout, cfg.LogLevel),
	})

	checks = append(checks, checkEnv("XDG_RUNTIME_DIR",
		"runtime dir set", "XDG_RUNTIME_DIR is empty"))
	checks = append(checks, checkEnv("HYPRLAND_INSTANCE_SIGNATURE",
		"Hyprland session detected", "HYPRLAND_INSTANCE_SIGNATURE is empty"))

	path, err := ipc.ControlSocketPath()
	if err != nil {
		checks = append(checks, Check{Name: "socket", Pass: false, Message: err.Error()})
		return Report{Checks: checks}
	}

	checks = append(checks, checkSocket(path))
	checks = append(checks, checkCompositor(ctx, path, cfg.Timeout))

	return Report{Checks: checks}
}

// checkEnv validates that an environment variable is set and non-blank.
func checkEnv(name, okMsg, failMsg string) Check {
	if strings.TrimSpace(os.Getenv(name)) != "" {
		return Check{Name: name, Pass: true, Message: okMsg}
	}
	return Check{Name: name, Pass: false, Message: failMsg}
}

// checkSocket validates that the control socket exists and is a unix socket.
func checkSocket(path string) Check {
	info, err := os.Stat(path)
	if err != nil {
		return Check{Name: "socket", Pass: false, Message: fmt.Sprintf("stat %s: %v", path, err)}
	}
	if info.Mode()&os.ModeSocket == 0 {
		return Check{Name: "socket", Pass: false, Message: fmt.Sprintf("%s is not a unix socket", path)}
	}
	return Check{Name: "socket", Pass: true, Message: fmt.Sprintf("found at %s", path)}
}

// checkCompositor performs a live version exchange over the socket.
func checkCompositor(ctx context.Context, path string, timeout time.Duration) Check {
	command, err := hypr.VersionRequest{}.Build()
	if err != nil {
		return Check{Name: "compositor", Pass: false, Message: err.Error()}
	}

	reply, err := ipc.NewClient(path, timeout).Command(ctx, command)
	if err != nil {
		if ipc.IsUnreachable(err) {
			return Check{Name: "compositor", Pass: false, Message: "no compositor listening (is Hyprland running?)"}
		}
		return Check{Name: "compositor", Pass: false, Message: err.Error()}
	}

	line := reply
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return Check{Name: "compositor", Pass: true, Message: strings.TrimSpace(line)}
}
