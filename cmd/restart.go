package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ryokushen/devserver/internal/config"
)

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the background static file server",
	Long: `Restart stops the running server if one is listening on the
configured port, then starts a fresh instance.`,
	Args: cobra.NoArgs,
	RunE: runRestart,
}

var flagRestartPort int

func init() {
	restartCmd.Flags().IntVarP(&flagRestartPort, "port", "p", config.DefaultPort, "Port the server listens on")
	rootCmd.AddCommand(restartCmd)
}

func runRestart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	newManager(cfg).Restart(cmd.Context())
	return nil
}
