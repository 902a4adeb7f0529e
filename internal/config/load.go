package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key looked up in the environment.
const EnvPrefix = "CATALOG"

// Default values applied when neither a config file nor the environment sets a key.
const (
	DefaultPort                   = 8080
	DefaultEnv                    = "production"
	DefaultLogLevel               = "info"
	DefaultReadTimeoutSeconds     = 5
	DefaultShutdownTimeoutSeconds = 10
)

// Load configuration from environment variables and optionally a config.yaml
// in the working directory. Environment variables take precedence over values
// from the config file.
//
// Besides the CATALOG_ prefixed names, the conventional APP_ENV and LOG_LEVEL
// variables are honoured for the environment label and log level.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.env", DefaultEnv)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("http.read_timeout_seconds", DefaultReadTimeoutSeconds)
	v.SetDefault("http.shutdown_timeout_seconds", DefaultShutdownTimeoutSeconds)
	v.SetDefault("http.allowed_origins", []string{"*"})

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("server.env", EnvPrefix+"_SERVER_ENV", "APP_ENV"); err != nil {
		return nil, fmt.Errorf("failed to bind environment variable: %w", err)
	}
	if err := v.BindEnv("server.log_level", EnvPrefix+"_SERVER_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind environment variable: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Server.LogLevel = strings.ToLower(strings.TrimSpace(cfg.Server.LogLevel))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
