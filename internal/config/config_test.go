package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Driver = %q, want \"sqlite\"", cfg.Database.Driver)
	}
	if cfg.Database.DSN != "crm.db" {
		t.Errorf("DSN = %q, want \"crm.db\"", cfg.Database.DSN)
	}
}

func TestAddr(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 9000

	if got := cfg.Addr(); got != ":9000" {
		t.Errorf("Addr() = %q, want \":9000\"", got)
	}
}

func TestLoadNonExistent(t *testing.T) {
	// Load from non-existent directory should return defaults
	cfg, err := Load("/nonexistent/path/that/does/not/exist")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Driver = %q, want \"sqlite\"", cfg.Database.Driver)
	}
}

func TestLoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &Config{
		Server: ServerConfig{Port: 9090},
		Database: DatabaseConfig{
			Driver: "postgres",
			DSN:    "host=localhost user=crm dbname=crm sslmode=disable",
		},
	}

	if err := cfg.Save(tmpDir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	configPath := filepath.Join(tmpDir, ConfigFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	loaded, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", loaded.Server.Port)
	}
	if loaded.Database.Driver != "postgres" {
		t.Errorf("Driver = %q, want \"postgres\"", loaded.Database.Driver)
	}
	if loaded.Database.DSN != cfg.Database.DSN {
		t.Errorf("DSN = %q, want %q", loaded.Database.DSN, cfg.Database.DSN)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFile)

	// Minimal config missing the port and dsn
	minimalConfig := `[database]
driver = "sqlite"
`
	if err := os.WriteFile(configPath, []byte(minimalConfig), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port default not applied: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.DSN != "crm.db" {
		t.Errorf("DSN default not applied: got %q, want \"crm.db\"", cfg.Database.DSN)
	}
}

func TestLoadDoesNotDefaultPostgresDSN(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFile)

	// A postgres config without a dsn should stay empty so the failure
	// surfaces at connect time instead of silently opening a sqlite file.
	minimalConfig := `[database]
driver = "postgres"
`
	if err := os.WriteFile(configPath, []byte(minimalConfig), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.DSN != "" {
		t.Errorf("DSN = %q, want empty", cfg.Database.DSN)
	}
}
