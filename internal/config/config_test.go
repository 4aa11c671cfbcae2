package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultStart != "09:00" || cfg.DefaultEnd != "10:00" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DBPath != "" {
		t.Fatalf("dbpath should default empty (resolved by the caller): %q", cfg.DBPath)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "dbpath: /tmp/cal.db\ndefaultstart: \"08:30\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "/tmp/cal.db" {
		t.Fatalf("dbpath not loaded: %q", cfg.DBPath)
	}
	if cfg.DefaultStart != "08:30" {
		t.Fatalf("defaultstart not loaded: %q", cfg.DefaultStart)
	}
	if cfg.DefaultEnd != "10:00" {
		t.Fatalf("unset field should keep its default: %q", cfg.DefaultEnd)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logfile: /tmp/file.log\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MONCAL_LOGFILE", "/tmp/env.log")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogFile != "/tmp/env.log" {
		t.Fatalf("env should win over file: %q", cfg.LogFile)
	}
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}
