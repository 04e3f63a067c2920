package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/taskmirror/taskmirror/internal/config"
	"github.com/taskmirror/taskmirror/models"
)

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present. It's okay if it doesn't exist.
	_ = godotenv.Load()

	// Environment variable handling must be set up before reading the config
	// file so env vars can override file values.
	viper.SetEnvPrefix(config.EnvPrefix) // e.g., TASKMIRROR_UPDATE_INTERVAL
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(config.ConfigName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; everything has a default.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "taskmirror: reading config: %v\n", err)
		}
	} else if verbose {
		fmt.Fprintf(os.Stderr, "taskmirror: using config %s\n", viper.ConfigFileUsed())
	}
}

// LoadOptions returns the validated session options from the active viper
// instance.
func LoadOptions() (models.Options, error) {
	return config.Load(viper.GetViper())
}
