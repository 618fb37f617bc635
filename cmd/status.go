package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ryokushen/devserver/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether the static file server is running",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var flagStatusPort int

func init() {
	statusCmd.Flags().IntVarP(&flagStatusPort, "port", "p", config.DefaultPort, "Port the server listens on")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	newManager(cfg).Status(cmd.Context())
	return nil
}
