package hypr

import "strings"

// ClientsRequest lists every window the compositor manages.
type ClientsRequest struct{}

func (ClientsRequest) Build() (string, error) {
	return "clients", nil
}

// MonitorsRequest lists connected monitors. All includes disabled outputs.
type MonitorsRequest struct {
	All bool `json:"all,omitempty" jsonschema:"include disabled monitors in the listing"`
}

func (r MonitorsRequest) Build() (string, error) {
	if r.All {
		return compose("monitors", "all"), nil
	}
	return "monitors", nil
}

// WorkspacesRequest lists all workspaces.
type WorkspacesRequest struct{}

func (WorkspacesRequest) Build() (string, error) {
	return "workspaces", nil
}

// ActiveWindowRequest describes the currently focused window.
type ActiveWindowRequest struct{}

func (ActiveWindowRequest) Build() (string, error) {
	return "activewindow", nil
}

// GetOptionRequest reads the current value of a config option.
type GetOptionRequest struct {
	Name string `json:"name" jsonschema:"config option to read, e.g. general:border_size"`
}

func (r GetOptionRequest) Build() (string, error) {
	return compose("getoption", strings.TrimSpace(r.Name)), nil
}

// RollingLogRequest fetches a snapshot of the compositor's recent log tail.
type RollingLogRequest struct{}

func (RollingLogRequest) Build() (string, error) {
	return "rollinglog", nil
}

// VersionRequest reports the compositor's version and build flags.
type VersionRequest struct{}

func (VersionRequest) Build() (string, error) {
	return "version", nil
}
