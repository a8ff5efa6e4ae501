package ipc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestControlSocketPath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "abc123_4567")

	path, err := ControlSocketPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/run/user/1000", "hypr", "abc123_4567", ".socket.sock"), path)
}

func TestControlSocketPathRequiresRuntimeDir(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "abc123_4567")

	_, err := ControlSocketPath()
	require.Error(t, err)
	require.Contains(t, err.Error(), "XDG_RUNTIME_DIR")
}

func TestControlSocketPathRequiresInstanceSignature(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	_, err := ControlSocketPath()
	require.Error(t, err)
	require.Contains(t, err.Error(), "HYPRLAND_INSTANCE_SIGNATURE")
}
