package hypr

import (
	"strconv"
	"strings"
)

// DefaultNotifyColor is applied when a notify request leaves the color blank.
const DefaultNotifyColor = "rgb(89b4fa)"

// NotifyRequest shows an on-screen notification inside the compositor.
type NotifyRequest struct {
	Icon      int    `json:"icon" jsonschema:"icon index: -1 none, 0 warning, 1 info, 2 hint, 3 error, 4 confused, 5 ok"`
	TimeoutMS int    `json:"timeout_ms" jsonschema:"how long the notification stays on screen, in milliseconds"`
	Color     string `json:"color,omitempty" jsonschema:"notification color such as rgb(ff0000); defaults to rgb(89b4fa) when blank"`
	Message   string `json:"message" jsonschema:"notification body text"`
}

func (r NotifyRequest) Build() (string, error) {
	color := strings.TrimSpace(r.Color)
	if color == "" {
		color = DefaultNotifyColor
	}
	return compose("notify", strconv.Itoa(r.Icon), strconv.Itoa(r.TimeoutMS), color, Quote(r.Message)), nil
}

// KeywordRequest sets a config keyword for the running session without
// touching the config file.
type KeywordRequest struct {
	Name  string `json:"name" jsonschema:"config keyword to set, e.g. general:border_size"`
	Value string `json:"value" jsonschema:"value for the keyword, passed through verbatim"`
}

func (r KeywordRequest) Build() (string, error) {
	return compose("keyword", strings.TrimSpace(r.Name), strings.TrimSpace(r.Value)), nil
}

// ReloadRequest re-reads the config. ConfigOnly skips restarting internal
// state such as monitor layouts.
type ReloadRequest struct {
	ConfigOnly bool `json:"config_only,omitempty" jsonschema:"reload only the config file, without resetting monitor state"`
}

func (r ReloadRequest) Build() (string, error) {
	if r.ConfigOnly {
		return compose("reload", "config-only"), nil
	}
	return "reload", nil
}

// KillRequest enters kill mode, where the next clicked window is terminated.
type KillRequest struct{}

func (KillRequest) Build() (string, error) {
	return "kill", nil
}
