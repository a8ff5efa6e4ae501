// Package config resolves and defaults hyprmcp runtime settings from the
// environment.
package config

import "time"

// Config is the fully materialized runtime configuration used by hyprmcp.
type Config struct {
	LogLevel string
	Timeout  time.Duration
}

// Warning is a non-fatal message about an ignored or corrected setting.
type Warning struct {
	Variable string
	Message  string
}

// Default returns the canonical runtime configuration used when the
// environment sets nothing.
func Default() Config {
	return Config{
		LogLevel: "info",
		Timeout:  5 * time.Second,
	}
}
