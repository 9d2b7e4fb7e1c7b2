package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid config",
			config: Config{
				APIBaseURL:    "http://localhost:8080/api",
				SessionDBPath: "./test.db",
				CacheTTL:      30 * time.Second,
				HTTPTimeout:   15 * time.Second,
				LogLevel:      "info",
			},
			wantErr: false,
		},
		{
			name: "empty API base URL",
			config: Config{
				APIBaseURL:    "",
				SessionDBPath: "./test.db",
				CacheTTL:      30 * time.Second,
				HTTPTimeout:   15 * time.Second,
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "API base URL cannot be empty",
		},
		{
			name: "invalid API base URL scheme",
			config: Config{
				APIBaseURL:    "ftp://example.com/api",
				SessionDBPath: "./test.db",
				CacheTTL:      30 * time.Second,
				HTTPTimeout:   15 * time.Second,
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "invalid API base URL scheme 'ftp': must be 'http' or 'https'",
		},
		{
			name: "empty session database path",
			config: Config{
				APIBaseURL:    "http://localhost:8080/api",
				SessionDBPath: "",
				CacheTTL:      30 * time.Second,
				HTTPTimeout:   15 * time.Second,
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "session database path cannot be empty",
		},
		{
			name: "cache TTL too small",
			config: Config{
				APIBaseURL:    "http://localhost:8080/api",
				SessionDBPath: "./test.db",
				CacheTTL:      500 * time.Millisecond,
				HTTPTimeout:   15 * time.Second,
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "invalid cache TTL 500ms: must be at least 1 second",
		},
		{
			name: "cache TTL too large",
			config: Config{
				APIBaseURL:    "http://localhost:8080/api",
				SessionDBPath: "./test.db",
				CacheTTL:      2 * time.Hour,
				HTTPTimeout:   15 * time.Second,
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "invalid cache TTL 2h0m0s: must be at most 1 hour",
		},
		{
			name: "HTTP timeout too small",
			config: Config{
				APIBaseURL:    "http://localhost:8080/api",
				SessionDBPath: "./test.db",
				CacheTTL:      30 * time.Second,
				HTTPTimeout:   100 * time.Millisecond,
				LogLevel:      "info",
			},
			wantErr:     true,
			errorString: "invalid HTTP timeout 100ms: must be at least 1 second",
		},
		{
			name: "invalid log level",
			config: Config{
				APIBaseURL:    "http://localhost:8080/api",
				SessionDBPath: "./test.db",
				CacheTTL:      30 * time.Second,
				HTTPTimeout:   15 * time.Second,
				LogLevel:      "verbose",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose': must be one of [debug info warn error]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"API_BASE_URL", "SESSION_DB_PATH", "CACHE_TTL", "HTTP_TIMEOUT", "LOG_LEVEL"} {
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.APIBaseURL != "http://localhost:8080/api" {
		t.Errorf("APIBaseURL = %q, want default", cfg.APIBaseURL)
	}
	if cfg.SessionDBPath != "./data/cashcontrol.db" {
		t.Errorf("SessionDBPath = %q, want default", cfg.SessionDBPath)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v, want 30s", cfg.CacheTTL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("HTTPTimeout = %v, want 15s", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/api")
	t.Setenv("CACHE_TTL", "45s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.APIBaseURL != "https://api.example.com/api" {
		t.Errorf("APIBaseURL = %q, want env override", cfg.APIBaseURL)
	}
	if cfg.CacheTTL != 45*time.Second {
		t.Errorf("CacheTTL = %v, want 45s", cfg.CacheTTL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}
