package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Color modes accepted by the "color" key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is a typed snapshot of the settings the calculator reads.
type Config struct {
	Verbose     bool
	LogFile     string
	Color       string
	MetricsAddr string
	Banner      bool
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("color", ColorAuto)
	viper.SetDefault("metrics_addr", "")
	viper.SetDefault("banner", true)
}

// Load initializes the configuration from .env, an optional config file and
// CALC_* environment variables. A missing config.yaml in the working directory
// is not an error; an explicit cfgFile that cannot be read is.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("CALC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// Current returns the settings as currently resolved by viper.
func Current() Config {
	return Config{
		Verbose:     viper.GetBool("verbose"),
		LogFile:     viper.GetString("log_file"),
		Color:       strings.ToLower(viper.GetString("color")),
		MetricsAddr: viper.GetString("metrics_addr"),
		Banner:      viper.GetBool("banner"),
	}
}
