package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if *cfg != *want {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  host: 0.0.0.0\n  port: 9000\ndatabase:\n  path: /tmp/lift.db\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 9000 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Database.Path != "/tmp/lift.db" {
		t.Errorf("database path = %q", cfg.Database.Path)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9999\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("host = %q, want default", cfg.Server.Host)
	}
	if cfg.Database.Path != "liftstrong.db" {
		t.Errorf("db path = %q, want default", cfg.Database.Path)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LIFTSTRONG_SERVER_HOST", "10.0.0.1")
	t.Setenv("LIFTSTRONG_SERVER_PORT", "7777")
	t.Setenv("LIFTSTRONG_DB_PATH", "/data/lift.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "10.0.0.1" {
		t.Errorf("host = %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Database.Path != "/data/lift.db" {
		t.Errorf("db path = %q", cfg.Database.Path)
	}
}

func TestEnvOverridesIgnoreBadPort(t *testing.T) {
	t.Setenv("LIFTSTRONG_SERVER_PORT", "not-a-number")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8420 {
		t.Errorf("port = %d, want default 8420", cfg.Server.Port)
	}
}
