package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
port = "/dev/ttyUSB0"
baud_rate = 57600
response_timeout_ms = 500
routing = false
verbose = true
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != "/dev/ttyUSB0" {
		t.Errorf("Port = %q, want /dev/ttyUSB0", cfg.Port)
	}
	if cfg.BaudRate != 57600 {
		t.Errorf("BaudRate = %d, want 57600", cfg.BaudRate)
	}
	if cfg.ResponseTimeout != 500*time.Millisecond {
		t.Errorf("ResponseTimeout = %v, want 500ms", cfg.ResponseTimeout)
	}
	if cfg.Routing {
		t.Error("Routing = true, want false")
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `port = "/dev/serial0"`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	defaults := defaultConfig()
	if cfg.BaudRate != defaults.BaudRate {
		t.Errorf("BaudRate = %d, want default %d", cfg.BaudRate, defaults.BaudRate)
	}
	if cfg.ResponseTimeout != defaults.ResponseTimeout {
		t.Errorf("ResponseTimeout = %v, want default %v", cfg.ResponseTimeout, defaults.ResponseTimeout)
	}
	if !cfg.Routing {
		t.Error("Routing = false, want default true")
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty port", `port = ""`},
		{"zero baud rate", `baud_rate = 0`},
		{"negative timeout", `response_timeout_ms = -5`},
		{"malformed file", `port = [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, tt.content)); err == nil {
				t.Error("loadConfig() succeeded, want error")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("loadConfig() succeeded on a missing file, want error")
	}
}
