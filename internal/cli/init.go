// Package cli consolidates the initialization the cashcontrol binary needs:
// .env loading, logging, configuration, and the session store.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/JolyGolfqw/CashControlFront/internal/config"
	"github.com/JolyGolfqw/CashControlFront/internal/log"
	"github.com/JolyGolfqw/CashControlFront/internal/session"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the given level and installs
// it as the process default.
func SetupLogger(level string) *log.Logger {
	logger := log.New(log.Config{
		Level:     log.ParseLevel(level),
		Component: log.ComponentCLI,
	})
	log.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenSession opens the durable session store at the given path.
// Returns the store or exits the process on failure.
func OpenSession(logger *log.Logger, path string) *session.Store {
	store, err := session.Open(path)
	if err != nil {
		logger.Error("Failed to open session store", log.FieldError, err, log.FieldPath, path)
		os.Exit(1)
	}
	return store
}
