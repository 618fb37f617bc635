package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ryokushen/devserver/internal/errors"
	"github.com/ryokushen/devserver/internal/favicon"
	"github.com/ryokushen/devserver/internal/logging"
)

var faviconCmd = &cobra.Command{
	Use:   "favicon",
	Short: "Generate the favicon file set",
	Long: `Favicon renders the project mark and writes favicon.ico,
favicon-32x32.png, and favicon-16x16.png into the output directory,
overwriting any previous set.`,
	Args: cobra.NoArgs,
	RunE: runFavicon,
}

var flagFaviconOut string

func init() {
	faviconCmd.Flags().StringVarP(&flagFaviconOut, "out", "o", ".", "Directory to write the favicon files into")
	rootCmd.AddCommand(faviconCmd)
}

func runFavicon(cmd *cobra.Command, args []string) error {
	if err := favicon.Generate(flagFaviconOut); err != nil {
		return errors.RenderFailed(err)
	}

	logging.UserSuccess("Favicons written to %s", flagFaviconOut)
	logging.UserInfo("  %s", favicon.FileICO)
	logging.UserInfo("  %s", favicon.FilePNG32)
	logging.UserInfo("  %s", favicon.FilePNG16)
	return nil
}
