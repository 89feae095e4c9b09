package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/robolink/go-rvr/transport"
)

// Config holds the resolved rvrctl settings.
type Config struct {
	Port            string
	BaudRate        int
	ResponseTimeout time.Duration
	Routing         bool
	Verbose         bool
}

// defaultConfig returns the settings used when no file overrides them.
func defaultConfig() Config {
	return Config{
		Port:            "/dev/serial0",
		BaudRate:        transport.DefaultBaudRate,
		ResponseTimeout: 2 * time.Second,
		Routing:         true,
	}
}

// rvrctl config.toml key mapping.
type fileConfig struct {
	Port              string `toml:"port"`
	BaudRate          int    `toml:"baud_rate"`
	ResponseTimeoutMS int    `toml:"response_timeout_ms"`
	Routing           bool   `toml:"routing"`
	Verbose           bool   `toml:"verbose"`
}

// loadConfig overlays a TOML file onto the defaults. Keys absent from the
// file keep their default values.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load rvrctl config: %w", err)
	}

	if meta.IsDefined("port") {
		cfg.Port = raw.Port
	}
	if meta.IsDefined("baud_rate") {
		cfg.BaudRate = raw.BaudRate
	}
	if meta.IsDefined("response_timeout_ms") {
		cfg.ResponseTimeout = time.Duration(raw.ResponseTimeoutMS) * time.Millisecond
	}
	if meta.IsDefined("routing") {
		cfg.Routing = raw.Routing
	}
	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}

	if cfg.Port == "" {
		return Config{}, fmt.Errorf("load rvrctl config: port must not be empty")
	}
	if cfg.BaudRate <= 0 {
		return Config{}, fmt.Errorf("load rvrctl config: baud_rate must be positive, got %d", cfg.BaudRate)
	}
	if cfg.ResponseTimeout <= 0 {
		return Config{}, fmt.Errorf("load rvrctl config: response_timeout_ms must be positive")
	}

	return cfg, nil
}
