package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/taskmirror/taskmirror/models"
)

// SetDefaults registers the default option values on v so that partial config
// files and env overrides merge cleanly.
func SetDefaults(v *viper.Viper) {
	defaults := models.DefaultOptions()
	v.SetDefault(KeyWidth, defaults.Width)
	v.SetDefault(KeyTopHeight, defaults.TopHeight)
	v.SetDefault(KeyUpdateInterval, defaults.UpdateInterval)
	v.SetDefault(KeyGitIntegration, defaults.GitIntegration)
}

// Load unmarshals and validates the session options from v.
func Load(v *viper.Viper) (models.Options, error) {
	var opts models.Options
	if err := v.Unmarshal(&opts); err != nil {
		return models.Options{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return models.Options{}, fmt.Errorf("invalid config: %w", err)
	}
	return opts, nil
}
