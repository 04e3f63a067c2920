package models

// Options holds the per-session configuration recognized at activation.
// Width and TopHeight only affect presentation; UpdateInterval and
// GitIntegration change core behavior.
type Options struct {
	// Width is the horizontal size of the task-views panel, in columns.
	Width int `mapstructure:"width" yaml:"width" validate:"min=1"`
	// TopHeight is the vertical size of the incomplete-tasks view, in rows.
	TopHeight int `mapstructure:"top_height" yaml:"top_height" validate:"min=1"`
	// UpdateInterval is the number of milliseconds between periodic re-sync
	// ticks while a session is active.
	UpdateInterval int `mapstructure:"update_interval" yaml:"update_interval" validate:"min=1"`
	// GitIntegration enables the stage-and-commit flow on note creation.
	GitIntegration bool `mapstructure:"git_integration" yaml:"git_integration"`
}

// DefaultOptions returns the option set used when no configuration overrides
// are present.
func DefaultOptions() Options {
	return Options{
		Width:          40,
		TopHeight:      12,
		UpdateInterval: 1000,
		GitIntegration: false,
	}
}

// Validate checks the option values against their constraints.
func (o Options) Validate() error {
	return ValidateStruct(o)
}
