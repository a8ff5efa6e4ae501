package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by FromEnv.
const (
	EnvLogLevel  = "HYPRMCP_LOG_LEVEL"
	EnvTimeoutMS = "HYPRMCP_TIMEOUT_MS"
)

// FromEnv materializes the runtime configuration from the process
// environment. Unset variables keep their defaults; malformed values are
// reported as warnings and fall back instead of failing startup.
func FromEnv() (Config, []Warning) {
	cfg := Default()
	warnings := make([]Warning, 0)

	if raw, ok := lookup(EnvLogLevel); ok {
		level := strings.ToLower(raw)
		switch level {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = level
		default:
			warnings = append(warnings, Warning{
				Variable: EnvLogLevel,
				Message:  fmt.Sprintf("unknown log level %q; using %q", raw, cfg.LogLevel),
			})
		}
	}

	if raw, ok := lookup(EnvTimeoutMS); ok {
		ms, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			warnings = append(warnings, Warning{
				Variable: EnvTimeoutMS,
				Message:  fmt.Sprintf("not a number: %q; using %s", raw, cfg.Timeout),
			})
		case ms <= 0:
			warnings = append(warnings, Warning{
				Variable: EnvTimeoutMS,
				Message:  fmt.Sprintf("must be positive, got %d; using %s", ms, cfg.Timeout),
			})
		default:
			cfg.Timeout = time.Duration(ms) * time.Millisecond
		}
	}

	return cfg, warnings
}

// lookup reads an environment variable, treating blank values as unset.
func lookup(name string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return "", false
	}
	return value, true
}
