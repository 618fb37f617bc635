package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ryokushen/devserver/internal/config"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the background static file server",
	Args:  cobra.NoArgs,
	RunE:  runStop,
}

var flagStopPort int

func init() {
	stopCmd.Flags().IntVarP(&flagStopPort, "port", "p", config.DefaultPort, "Port the server listens on")
	rootCmd.AddCommand(stopCmd)
}

func runStop(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	newManager(cfg).Stop(cmd.Context())
	return nil
}
