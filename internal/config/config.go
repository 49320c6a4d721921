package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the host daemon's full configuration.
type Config struct {
	// VaultDir holds the vault.kv file internal/vaultkv reads and writes.
	VaultDir string `yaml:"vaultDir"`

	// NativeMessagingEnabled gates every RPC operation (see DESIGN.md's
	// gating-interpretation note for why no op is exempted).
	NativeMessagingEnabled bool `yaml:"nativeMessagingEnabled"`

	// MetricsAddr is a metrics listen address, e.g. "127.0.0.1:9464".
	// "pearpassd serve" does not read it; it listens on its --metrics-addr
	// flag instead.
	MetricsAddr string `yaml:"metricsAddr"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", "error").
	LogLevel string `yaml:"logLevel"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		VaultDir:               filepath.Join(home, ".local", "share", "pearpass-host"),
		NativeMessagingEnabled: true,
		MetricsAddr:            "127.0.0.1:9464",
		LogLevel:               "info",
	}
}

// Load reads path as YAML over top of Default(), so a config file may set
// only the fields it cares about. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
