package config

import "fmt"

// ConfigError represents an invalid configuration value
//
//nolint:revive // config.ConfigError reads better at call sites than config.Error
type ConfigError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error: '%s' %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
