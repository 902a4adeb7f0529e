package main

import (
	"log/slog"
	"testing"

	"github.com/microservices-demo/catalog-api/internal/config"
	"github.com/microservices-demo/catalog-api/internal/domain"
	"github.com/microservices-demo/catalog-api/internal/platform/logger"
	"github.com/microservices-demo/catalog-api/internal/platform/memory"
	"github.com/stretchr/testify/require"
)

// testConfig returns a valid configuration with the documented defaults.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:     config.DefaultPort,
			Env:      "test",
			LogLevel: "debug",
		},
		HTTP: config.HTTPConfig{
			ReadTimeoutSeconds:     config.DefaultReadTimeoutSeconds,
			ShutdownTimeoutSeconds: config.DefaultShutdownTimeoutSeconds,
			AllowedOrigins:         []string{"*"},
		},
	}
}

// newTestApplication builds an application over the given datasets with a
// buffer-backed logger.
func newTestApplication(t *testing.T, users []domain.User, products []domain.Product) (*application, *logger.TestLogBuffer) {
	t.Helper()
	l, buf := logger.GetTestLogger(t)
	app, err := newApplicationWithData(testConfig(), l, users, products)
	require.NoError(t, err)
	return app, buf
}

// newDefaultTestApplication builds an application over the built-in datasets.
func newDefaultTestApplication(t *testing.T) *application {
	t.Helper()
	app, _ := newTestApplication(t, memory.DefaultUsers(), memory.DefaultProducts())
	return app
}

// quietLogger discards log output for tests that do not inspect it.
func quietLogger(t *testing.T) *slog.Logger {
	t.Helper()
	l, _ := logger.GetTestLogger(t)
	return l
}
