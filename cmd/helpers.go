package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ryokushen/devserver/internal/config"
	"github.com/ryokushen/devserver/internal/errors"
	"github.com/ryokushen/devserver/internal/manager"
)

// loadConfig reads the config file and applies flag overrides.
// This is a helper to reduce repetition in commands.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, errors.ConfigError("invalid configuration", err)
	}

	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		if p, err := cmd.Flags().GetInt("port"); err == nil {
			cfg.Port = p
		}
	}
	if f := cmd.Flags().Lookup("dir"); f != nil && f.Changed {
		if d, err := cmd.Flags().GetString("dir"); err == nil {
			cfg.Dir = d
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigError("invalid configuration", err)
	}
	return cfg, nil
}

// newManager builds the server manager for the given configuration.
func newManager(cfg *config.Config) *manager.Manager {
	argv0, err := os.Executable()
	if err != nil {
		argv0 = os.Args[0]
	}
	return manager.New(cfg, argv0)
}
