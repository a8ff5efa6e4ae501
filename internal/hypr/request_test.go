package hypr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatchPassesCommandThroughUnmodified(t *testing.T) {
	tests := []struct {
		name    string
		command string
	}{
		{name: "dispatcher", command: "dispatch exec kitty"},
		{name: "query verb", command: "clients"},
		{name: "leading spaces kept", command: "  dispatch  workspace  3"},
		{name: "quotes kept", command: `notify 1 500 rgb(ff0000) "already quoted"`},
		{name: "empty", command: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DispatchRequest{Command: tt.command}.Build()
			require.NoError(t, err)
			require.Equal(t, tt.command, got)
		})
	}
}

func TestWorkspaceBuildsDispatchForm(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{name: "first workspace", n: 1, want: "dispatch workspace 1"},
		{name: "double digits", n: 42, want: "dispatch workspace 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WorkspaceRequest{N: tt.n}.Build()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestWorkspaceRejectsNumbersBelowOne(t *testing.T) {
	for _, n := range []int{0, -1, -42} {
		got, err := WorkspaceRequest{N: n}.Build()
		require.Error(t, err)
		require.Empty(t, got)
		require.Contains(t, err.Error(), "workspace number")
	}
}

func TestMonitorsOmitsFlagWhenAllUnset(t *testing.T) {
	got, err := MonitorsRequest{}.Build()
	require.NoError(t, err)
	require.Equal(t, "monitors", got)

	got, err = MonitorsRequest{All: true}.Build()
	require.NoError(t, err)
	require.Equal(t, "monitors all", got)
}

func TestReloadOmitsFlagWhenConfigOnlyUnset(t *testing.T) {
	got, err := ReloadRequest{}.Build()
	require.NoError(t, err)
	require.Equal(t, "reload", got)

	got, err = ReloadRequest{ConfigOnly: true}.Build()
	require.NoError(t, err)
	require.Equal(t, "reload config-only", got)
}

func TestNotifyComposesAllArguments(t *testing.T) {
	got, err := NotifyRequest{
		Icon:      1,
		TimeoutMS: 3000,
		Color:     "rgb(ff0000)",
		Message:   `He said "hi"`,
	}.Build()
	require.NoError(t, err)
	require.Equal(t, `notify 1 3000 rgb(ff0000) "He said \"hi\""`, got)
}

func TestNotifyDefaultsColorWhenBlank(t *testing.T) {
	for _, color := range []string{"", "   "} {
		got, err := NotifyRequest{Icon: 2, TimeoutMS: 1500, Color: color, Message: "done"}.Build()
		require.NoError(t, err)
		require.Equal(t, `notify 2 1500 rgb(89b4fa) "done"`, got)
	}
}

func TestKeywordJoinsNameAndValue(t *testing.T) {
	got, err := KeywordRequest{Name: "general:border_size", Value: "3"}.Build()
	require.NoError(t, err)
	require.Equal(t, "keyword general:border_size 3", got)
}

func TestKeywordKeepsMultiTokenValues(t *testing.T) {
	got, err := KeywordRequest{
		Name:  "general:col.active_border",
		Value: "rgba(33ccffee) rgba(00ff99ee) 45deg",
	}.Build()
	require.NoError(t, err)
	require.Equal(t, "keyword general:col.active_border rgba(33ccffee) rgba(00ff99ee) 45deg", got)
}

func TestGetOptionTrimsName(t *testing.T) {
	got, err := GetOptionRequest{Name: " general:gaps_in "}.Build()
	require.NoError(t, err)
	require.Equal(t, "getoption general:gaps_in", got)
}

func TestZeroArgumentRequestsBuildBareVerbs(t *testing.T) {
	tests := []struct {
		name    string
		request Request
		want    string
	}{
		{name: "clients", request: ClientsRequest{}, want: "clients"},
		{name: "workspaces", request: WorkspacesRequest{}, want: "workspaces"},
		{name: "activewindow", request: ActiveWindowRequest{}, want: "activewindow"},
		{name: "kill", request: KillRequest{}, want: "kill"},
		{name: "rollinglog", request: RollingLogRequest{}, want: "rollinglog"},
		{name: "version", request: VersionRequest{}, want: "version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.request.Build()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
