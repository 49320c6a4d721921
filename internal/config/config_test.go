package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"pearpass-host/internal/config"
)

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := config.Default()
	if cfg != want {
		t.Fatalf("want defaults %+v, got %+v", want, cfg)
	}
}

func TestLoad_OverlaysOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("logLevel: debug\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("want logLevel=debug, got %q", cfg.LogLevel)
	}
	if cfg.MetricsAddr != config.Default().MetricsAddr {
		t.Fatalf("unset field should keep its default, got %q", cfg.MetricsAddr)
	}
}

func TestLoad_EmptyPath_ReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != config.Default() {
		t.Fatal("empty path should return Default()")
	}
}
