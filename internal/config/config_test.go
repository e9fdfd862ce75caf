package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/employee-portal/internal/config"
)

const baseTOML = `
shutdown_timeout = "20s"

[server]
port = 8081

[database]
name = "employee_portal"
user = "portal"

[api.cors]
enabled = true
`

func writeConfig(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return filepath.Join(dir, config.BaseConfigFile)
}

func loadFinalized(t *testing.T, path string) *config.Config {
	t.Helper()

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return cfg
}

func TestLoad_RepositoryConfig(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")

	cfg := loadFinalized(t, filepath.Join("..", "..", config.BaseConfigFile))

	if cfg.Storage.Driver != config.DriverPostgres {
		t.Errorf("Storage.Driver = %q, want postgres", cfg.Storage.Driver)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("API.BasePath = %q, want /api", cfg.API.BasePath)
	}
	if cfg.App.BasePath != "/" {
		t.Errorf("App.BasePath = %q, want /", cfg.App.BasePath)
	}
	if cfg.API.OpenAPI.Title != "Employee Portal API" {
		t.Errorf("API.OpenAPI.Title = %q", cfg.API.OpenAPI.Title)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")

	cfg := loadFinalized(t, writeConfig(t, map[string]string{config.BaseConfigFile: baseTOML}))

	if cfg.ShutdownTimeoutDuration() != 20*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want 20s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Server.Addr() != "0.0.0.0:8081" {
		t.Errorf("Server.Addr() = %q", cfg.Server.Addr())
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Port != 5432 {
		t.Errorf("Database defaults = %s:%d", cfg.Database.Host, cfg.Database.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.API.MaxBodySizeBytes() != 1000*1000 {
		t.Errorf("MaxBodySizeBytes() = %d, want 1MB", cfg.API.MaxBodySizeBytes())
	}
	if cfg.App.MaxBodySizeBytes() != 64*1000 {
		t.Errorf("App.MaxBodySizeBytes() = %d, want 64KB", cfg.App.MaxBodySizeBytes())
	}
	if len(cfg.API.CORS.Origins) != 1 || cfg.API.CORS.Origins[0] != config.DefaultCORSOrigin {
		t.Errorf("CORS.Origins = %v, want [%s]", cfg.API.CORS.Origins, config.DefaultCORSOrigin)
	}
}

func TestLoad_Overlay(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "staging")

	path := writeConfig(t, map[string]string{
		config.BaseConfigFile: baseTOML,
		"config.staging.toml": `
shutdown_timeout = "45s"

[server]
port = 9090

[storage]
driver = "mongo"

[api.cors]
enabled = true
origins = ["https://portal.example.com"]
`,
	})

	cfg := loadFinalized(t, path)

	if cfg.ShutdownTimeout != "45s" {
		t.Errorf("ShutdownTimeout = %q, want 45s", cfg.ShutdownTimeout)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Storage.Driver != config.DriverMongo {
		t.Errorf("Storage.Driver = %q, want mongo", cfg.Storage.Driver)
	}
	if cfg.Mongo.Database != "new_company" {
		t.Errorf("Mongo.Database = %q, want default new_company", cfg.Mongo.Database)
	}
	if cfg.API.CORS.Origins[0] != "https://portal.example.com" {
		t.Errorf("CORS.Origins = %v", cfg.API.CORS.Origins)
	}
}

func TestLoad_MissingOverlayIgnored(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "absent")

	cfg := loadFinalized(t, writeConfig(t, map[string]string{config.BaseConfigFile: baseTOML}))
	if cfg.Server.Port != 8081 {
		t.Errorf("Server.Port = %d, want 8081", cfg.Server.Port)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")

	if _, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadFrom(missing) error = nil")
	}

	path := writeConfig(t, map[string]string{config.BaseConfigFile: "[server\nport = 1"})
	if _, err := config.LoadFrom(path); err == nil {
		t.Error("LoadFrom(malformed) error = nil")
	}
}

func TestFinalize_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("LOGGING_FORMAT", "json")
	t.Setenv("API_MAX_BODY_SIZE", "64KB")
	t.Setenv("API_CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("API_OPENAPI_TITLE", "Staff API")
	t.Setenv("APP_MAX_BODY_SIZE", "8KB")

	cfg := loadFinalized(t, writeConfig(t, map[string]string{config.BaseConfigFile: baseTOML}))

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q", cfg.Database.Host)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
	if cfg.API.OpenAPI.Title != "Staff API" {
		t.Errorf("API.OpenAPI.Title = %q, want Staff API", cfg.API.OpenAPI.Title)
	}
	if cfg.API.MaxBodySizeBytes() != 64*1000 {
		t.Errorf("MaxBodySizeBytes() = %d, want 64000", cfg.API.MaxBodySizeBytes())
	}
	if cfg.App.MaxBodySizeBytes() != 8*1000 {
		t.Errorf("App.MaxBodySizeBytes() = %d, want 8000", cfg.App.MaxBodySizeBytes())
	}
	if len(cfg.API.CORS.Origins) != 2 {
		t.Errorf("CORS.Origins = %v, want 2 origins", cfg.API.CORS.Origins)
	}
}

func TestFinalize_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		toml    string
		wantErr string
	}{
		{"bad shutdown timeout", `shutdown_timeout = "soon"`, "shutdown_timeout"},
		{"bad port", "[server]\nport = 70000\n[database]\nname = \"x\"\nuser = \"y\"", "server"},
		{"unknown driver", "[storage]\ndriver = \"sqlite\"", "storage"},
		{"postgres without user", "[database]\nname = \"x\"", "database"},
		{"bad mongo uri", "[storage]\ndriver = \"mongo\"\n[mongo]\nuri = \"http://localhost\"", "mongo"},
		{"bad body size", "[database]\nname = \"x\"\nuser = \"y\"\n[api]\nmax_body_size = \"lots\"", "api"},
		{"nested api path", "[database]\nname = \"x\"\nuser = \"y\"\n[api]\nbase_path = \"/api/v1\"", "api"},
		{"app body size", "[database]\nname = \"x\"\nuser = \"y\"\n[app]\nmax_body_size = \"-1\"", "app"},
		{"app shares api path", "[database]\nname = \"x\"\nuser = \"y\"\n[app]\nbase_path = \"/api\"", "already mounted by api"},
		{"bad log level", "[database]\nname = \"x\"\nuser = \"y\"\n[logging]\nlevel = \"loud\"", "logging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvServiceEnv, "")

			cfg, err := config.LoadFrom(writeConfig(t, map[string]string{config.BaseConfigFile: tt.toml}))
			if err != nil {
				t.Fatalf("LoadFrom() error = %v", err)
			}

			err = cfg.Finalize()
			if err == nil {
				t.Fatal("Finalize() error = nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Finalize() error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestFinalize_MongoSkipsPostgres(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")

	path := writeConfig(t, map[string]string{config.BaseConfigFile: "[storage]\ndriver = \"mongo\""})
	cfg := loadFinalized(t, path)

	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("Mongo.URI = %q", cfg.Mongo.URI)
	}
}
