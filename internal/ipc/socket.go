package ipc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ControlSocketPath resolves the Hyprland control socket for the current
// session. Hyprland binds it at
// $XDG_RUNTIME_DIR/hypr/$HYPRLAND_INSTANCE_SIGNATURE/.socket.sock.
func ControlSocketPath() (string, error) {
	runtimeDir := strings.TrimSpace(os.Getenv("XDG_RUNTIME_DIR"))
	if runtimeDir == "" {
		return "", errors.New("XDG_RUNTIME_DIR is not set")
	}
	signature := strings.TrimSpace(os.Getenv("HYPRLAND_INSTANCE_SIGNATURE"))
	if signature == "" {
		return "", errors.New("HYPRLAND_INSTANCE_SIGNATURE is not set (is Hyprland running?)")
	}
	return filepath.Join(runtimeDir, "hypr", signature, ".socket.sock"), nil
}
