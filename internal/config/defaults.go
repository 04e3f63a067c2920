// Package config centralizes configuration constants, viper loading, and
// config-file writing for taskmirror. All default values live here to keep a
// single source of truth.
package config

// ConfigName is the base name of the config file (.taskmirror.yaml).
const ConfigName = ".taskmirror"

// EnvPrefix is the prefix for environment variable overrides,
// e.g. TASKMIRROR_UPDATE_INTERVAL.
const EnvPrefix = "TASKMIRROR"

// Viper keys for recognized options.
const (
	KeyWidth          = "width"
	KeyTopHeight      = "top_height"
	KeyUpdateInterval = "update_interval"
	KeyGitIntegration = "git_integration"
)
