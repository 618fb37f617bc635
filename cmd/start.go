package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ryokushen/devserver/internal/config"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Launch the static file server in the background",
	Args:  cobra.NoArgs,
	RunE:  runStart,
}

func init() {
	startCmd.Flags().IntVarP(&flagStartPort, "port", "p", config.DefaultPort, "Port the server listens on")
	rootCmd.AddCommand(startCmd)
}

var flagStartPort int

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Outcome is reported as printed text; the action result does not
	// map onto the exit code.
	newManager(cfg).Start(cmd.Context())
	return nil
}
