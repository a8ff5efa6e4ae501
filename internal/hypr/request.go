// Package hypr models Hyprland control-socket commands as typed requests.
//
// Each request variant corresponds to one command the compositor understands
// and knows how to render itself as the exact line of text the socket
// expects. Build performs no I/O: validation and formatting are pure, so
// every variant can be checked against its wire form in isolation.
package hypr

import (
	"fmt"
	"strconv"
	"strings"
)

// Request is a single buildable control-socket command.
type Request interface {
	// Build renders the command string sent over the socket. A non-nil
	// error means the request failed validation and nothing should be
	// transmitted.
	Build() (string, error)
}

// compose joins the verb and any non-empty arguments with single spaces.
func compose(verb string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, verb)
	for _, arg := range args {
		if arg != "" {
			parts = append(parts, arg)
		}
	}
	return strings.Join(parts, " ")
}

// DispatchRequest forwards a raw command to the compositor unmodified.
type DispatchRequest struct {
	Command string `json:"command" jsonschema:"raw hyprctl command to send, e.g. 'dispatch exec kitty' or 'clients'"`
}

func (r DispatchRequest) Build() (string, error) {
	return r.Command, nil
}

// WorkspaceRequest switches focus to a numbered workspace.
type WorkspaceRequest struct {
	N int `json:"n" jsonschema:"workspace number to switch to, starting at 1"`
}

func (r WorkspaceRequest) Build() (string, error) {
	if r.N < 1 {
		return "", fmt.Errorf("workspace number must be 1 or greater, got %d", r.N)
	}
	return compose("dispatch", "workspace", strconv.Itoa(r.N)), nil
}
