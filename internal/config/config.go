// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"fmt"
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	FileHost FileHostConfig
	Admin    AdminConfig
	Rate     RateLimitConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// PublicBaseURL is the externally visible base URL, used when building
	// registration links returned from event creation (default: http://localhost:8080)
	PublicBaseURL string `env:"PUBLIC_BASE_URL" default:"http://localhost:8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// StoreConfig holds row-store settings for the backing spreadsheet.
type StoreConfig struct {
	// Backend selects the row store implementation: "sheets" or "memory".
	// The memory backend keeps everything in-process and is intended for
	// local development and tests (default: sheets)
	Backend string `env:"STORE_BACKEND" default:"sheets"`

	// SpreadsheetID is the id of the Google Sheets document holding the
	// companies sheet and one sheet per company (required for the sheets backend)
	SpreadsheetID string `env:"SHEETS_SPREADSHEET_ID"`

	// CredentialsFile is the path to the service-account JSON key
	// (default: credentials.json)
	CredentialsFile string `env:"SHEETS_CREDENTIALS_FILE" default:"credentials.json"`

	// CompaniesSheet is the name of the flat company-directory sheet
	// (default: companies)
	CompaniesSheet string `env:"SHEETS_COMPANIES_SHEET" default:"companies"`
}

// FileHostConfig holds settings for the image file host.
type FileHostConfig struct {
	// Backend selects the file host implementation: "github" or "memory"
	// (default: github)
	Backend string `env:"FILEHOST_BACKEND" default:"github"`

	// Owner is the GitHub account owning the image repository
	Owner string `env:"GITHUB_OWNER"`

	// Repo is the repository images are committed to
	Repo string `env:"GITHUB_REPO"`

	// Branch is the branch images are committed to (default: main)
	Branch string `env:"GITHUB_BRANCH" default:"main"`

	// Token is a personal access token with contents write permission.
	// Never logged.
	Token string `env:"GITHUB_TOKEN"`
}

// AdminConfig holds the static admin credential pair.
// These are compared in constant time and must never appear in log output.
type AdminConfig struct {
	// Username is the admin login name (required)
	Username string `env:"ADMIN_USERNAME" required:"true"`

	// Password is the admin password (required)
	Password string `env:"ADMIN_PASSWORD" required:"true"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the default rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`

	// RegisterLimit is requests per minute for the public registration
	// endpoint (default: 20)
	RegisterLimit int `env:"RATE_LIMIT_REGISTER" default:"20"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + strconv.Itoa(c.Port)
	}
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// Validate checks the loaded configuration for consistency.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}

	switch c.Store.Backend {
	case "sheets":
		if c.Store.SpreadsheetID == "" {
			return fmt.Errorf("SHEETS_SPREADSHEET_ID is required for the sheets backend")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown store backend %q (want sheets or memory)", c.Store.Backend)
	}

	switch c.FileHost.Backend {
	case "github":
		if c.FileHost.Owner == "" || c.FileHost.Repo == "" {
			return fmt.Errorf("GITHUB_OWNER and GITHUB_REPO are required for the github file host")
		}
		if c.FileHost.Token == "" {
			return fmt.Errorf("GITHUB_TOKEN is required for the github file host")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown file host backend %q (want github or memory)", c.FileHost.Backend)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Logging.Format)
	}

	if c.Rate.RequestsPerMinute < 1 || c.Rate.RegisterLimit < 1 {
		return fmt.Errorf("rate limits must be positive")
	}

	return nil
}
