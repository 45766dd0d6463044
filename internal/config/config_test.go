package config

import (
	"testing"
	"time"
)

// setRequired sets the minimum environment needed for Load to succeed.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("FILEHOST_BACKEND", "memory")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Store.CompaniesSheet != "companies" {
		t.Errorf("Store.CompaniesSheet = %q, want %q", cfg.Store.CompaniesSheet, "companies")
	}
	if cfg.FileHost.Branch != "main" {
		t.Errorf("FileHost.Branch = %q, want %q", cfg.FileHost.Branch, "main")
	}
	if cfg.Rate.RequestsPerMinute != 100 {
		t.Errorf("Rate.RequestsPerMinute = %d, want %d", cfg.Rate.RequestsPerMinute, 100)
	}
	if cfg.Rate.RegisterLimit != 20 {
		t.Errorf("Rate.RegisterLimit = %d, want %d", cfg.Rate.RegisterLimit, 20)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PUBLIC_BASE_URL", "https://events.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Server.PublicBaseURL != "https://events.example.com" {
		t.Errorf("Server.PublicBaseURL = %q", cfg.Server.PublicBaseURL)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for missing admin credentials")
	}
}

func TestLoad_Duration(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want %v", cfg.Server.ShutdownTimeout, 5*time.Second)
	}
}

func TestValidate_SheetsBackendRequiresSpreadsheet(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_BACKEND", "sheets")
	t.Setenv("SHEETS_SPREADSHEET_ID", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for sheets backend without spreadsheet id")
	}
}

func TestValidate_GitHubBackendRequiresToken(t *testing.T) {
	setRequired(t)
	t.Setenv("FILEHOST_BACKEND", "github")
	t.Setenv("GITHUB_OWNER", "acme")
	t.Setenv("GITHUB_REPO", "images")
	t.Setenv("GITHUB_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for github file host without token")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVER_PORT", "99999")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for invalid port")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "verbose")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for invalid log level")
	}
}

func TestServerAddr(t *testing.T) {
	c := ServerConfig{Host: "127.0.0.1", Port: 8081}
	if got := c.Addr(); got != "127.0.0.1:8081" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:8081")
	}

	c.Host = ""
	if got := c.Addr(); got != ":8081" {
		t.Errorf("Addr() = %q, want %q", got, ":8081")
	}
}
