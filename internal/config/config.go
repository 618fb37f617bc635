// Package config loads devserver configuration from an optional
// devserver.toml file in the working directory, falling back to defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	shellquote "github.com/kballard/go-shellquote"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "devserver.toml"

const (
	DefaultPort         = 8080
	DefaultHost         = "localhost"
	DefaultDir          = "."
	DefaultScanAttempts = 10
)

// Config holds the devserver configuration shared by the serve and
// manager commands.
type Config struct {
	// Port is the TCP port the static file server listens on.
	Port int `toml:"port"`

	// Host is the hostname used when printing service URLs.
	Host string `toml:"host"`

	// Dir is the directory served by the static file server.
	Dir string `toml:"dir"`

	// ScanAttempts bounds the forward port scan on conflict.
	ScanAttempts int `toml:"scan_attempts"`

	// ServeCommand is the command the manager launches for `start`.
	// Empty means "<this binary> serve".
	ServeCommand string `toml:"serve_command"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:         DefaultPort,
		Host:         DefaultHost,
		Dir:          DefaultDir,
		ScanAttempts: DefaultScanAttempts,
	}
}

// Load reads the config file at path, layering it over the defaults.
// A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the Config is usable.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range 1-65535", c.Port)
	}
	if c.ScanAttempts < 1 {
		return fmt.Errorf("scan_attempts must be at least 1")
	}
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if c.Dir == "" {
		return fmt.Errorf("dir cannot be empty")
	}
	if c.ServeCommand != "" {
		if _, err := shellquote.Split(c.ServeCommand); err != nil {
			return fmt.Errorf("invalid serve_command: %w", err)
		}
	}
	return nil
}

// ServeArgv returns the argv for launching the static file server.
// When ServeCommand is unset it falls back to re-invoking argv0 with
// the serve subcommand.
func (c *Config) ServeArgv(argv0 string) ([]string, error) {
	if c.ServeCommand == "" {
		return []string{argv0, "serve"}, nil
	}
	return shellquote.Split(c.ServeCommand)
}

// URL returns the service URL for the configured host and port.
func (c *Config) URL() string {
	return fmt.Sprintf("http://%s:%d/", c.Host, c.Port)
}
