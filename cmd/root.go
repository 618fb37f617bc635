package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ryokushen/devserver/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "devserver",
	Short: "Local web development toolkit",
	Long: `devserver supports the local development workflow for the web app:

  serve    run the static file server (CORS + ES module MIME fixups)
  start    launch the server in the background
  stop     stop the background server
  restart  stop then start the background server
  status   report whether the server is running
  favicon  regenerate the favicon set`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "devserver.toml", "Path to the config file")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
