package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	if viper.IsSet("color") {
		switch mode := strings.ToLower(viper.GetString("color")); mode {
		case ColorAuto, ColorAlways, ColorNever:
		default:
			errors = append(errors, fmt.Sprintf("color must be one of auto, always, never, got: %q", mode))
		}
	}

	// Empty disables the endpoint.
	if addr := viper.GetString("metrics_addr"); addr != "" {
		if err := validateListenAddr(addr); err != nil {
			errors = append(errors, fmt.Sprintf("metrics_addr is invalid: %v", err))
		}
	}

	if len(errors) > 0 {
		errorMsg := errors[0]
		for i := 1; i < len(errors); i++ {
			errorMsg += "\n  " + errors[i]
		}
		return fmt.Errorf("configuration validation failed:\n  %s", errorMsg)
	}

	return nil
}

func validateListenAddr(addr string) error {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("port %q is not a number", portStr)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got: %d", port)
	}
	return nil
}

