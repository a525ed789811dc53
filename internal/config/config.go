// Package config defines the checksum-check configuration model and default values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < user config file < explicit config file <
// CLI flag overrides. Config carries presentation and concurrency defaults
// only; nothing in it changes what the digest engine computes.
package config

import (
	"os"
	"path/filepath"
)

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [5]string{
	"FORMAT",
	"TEMPLATE",
	"JOBS",
	"NO_COLOR",
	"VERBOSE",
}

// Config holds every configuration field for the checksum-check CLI.
type Config struct {
	// Output selection.
	Format   string
	Template string

	// Concurrency.
	Jobs int

	// Presentation flags.
	NoColor bool
	Verbose bool

	// CLI-only flags (not loaded from config files).
	ConfigFile string
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		Format: "text",
		Jobs:   1,
	}
}

// UserConfigPath returns the per-user config file location, for example
// $XDG_CONFIG_HOME/checksum-check/config on Linux. An empty string means
// the user config directory could not be determined.
func UserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "checksum-check", "config")
}
