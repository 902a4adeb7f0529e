package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	HTTP   HTTPConfig   `mapstructure:"http" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
//
// Env and LogLevel are free-form labels. The logger falls back to info for
// levels it does not recognise.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	Env      string `mapstructure:"env" validate:"required"`
	LogLevel string `mapstructure:"log_level" validate:"required"`
}

// HTTPConfig contains settings for the HTTP listener and middleware.
type HTTPConfig struct {
	ReadTimeoutSeconds     int      `mapstructure:"read_timeout_seconds" validate:"gt=0"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
	AllowedOrigins         []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,required"`
}

// ReadTimeout returns the read timeout as a time.Duration.
func (c HTTPConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the graceful shutdown window as a time.Duration.
func (c HTTPConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
