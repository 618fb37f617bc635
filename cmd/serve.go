package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	isatty "github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ryokushen/devserver/internal/config"
	"github.com/ryokushen/devserver/internal/errors"
	"github.com/ryokushen/devserver/internal/logging"
	"github.com/ryokushen/devserver/internal/port"
	"github.com/ryokushen/devserver/internal/process"
	"github.com/ryokushen/devserver/internal/server"
	"github.com/ryokushen/devserver/internal/tui"
)

var (
	flagPort int
	flagDir  string
)

// portFreeTimeout bounds the wait for a killed process to release its port.
const portFreeTimeout = 3 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the static file server",
	Long: `serve runs the development static file server in the foreground.

Every response carries permissive CORS headers and .js files are served
as application/javascript so ES module imports work. When the target
port is occupied, an interactive prompt offers to kill the occupying
process, scan forward for a free port, or exit.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&flagPort, "port", "p", config.DefaultPort, "Port to listen on")
	serveCmd.Flags().StringVarP(&flagDir, "dir", "d", config.DefaultDir, "Directory to serve")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !port.Probe(cfg.Port) {
		resolved, err := resolveConflict(cfg)
		if err != nil {
			return err
		}
		if !resolved {
			logging.UserInfo("Exiting.")
			return nil
		}
	}

	srv := server.New(&server.Config{
		Port: cfg.Port,
		Host: cfg.Host,
		Dir:  cfg.Dir,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.UserSuccess("Server running at %s", srv.URL())
	logging.UserInfo("Press Ctrl-C to stop the server")

	if err := srv.Run(ctx); err != nil {
		logging.UserError("Error starting server: %v", err)
		logging.UserInfo("Troubleshooting tips:")
		logging.UserInfo("1. Check if port %d is in use: lsof -i :%d", cfg.Port, cfg.Port)
		logging.UserInfo("2. Kill the process manually: kill -9 <PID>")
		logging.UserInfo("3. Try a different port: devserver serve --port <port>")
		return errors.ServerFailed(err)
	}

	logging.UserInfo("Server stopped.")
	return nil
}

// resolveConflict walks the interactive three-way resolution flow.
// Returns false when the operator chose to exit.
func resolveConflict(cfg *config.Config) (bool, error) {
	logging.UserWarning("Port %d is already in use", cfg.Port)

	choice := tui.ChoiceScan
	if isatty.IsTerminal(os.Stdin.Fd()) {
		var err error
		choice, err = tui.ResolveConflict(cfg.Port)
		if err != nil {
			return false, errors.ServerFailed(err)
		}
	} else {
		logging.UserInfo("No terminal attached, trying an alternative port")
	}

	switch choice {
	case tui.ChoiceKill:
		if killOccupant(cfg.Port) {
			return true, nil
		}
		logging.UserWarning("Failed to free port %d, trying an alternative port", cfg.Port)
		fallthrough

	case tui.ChoiceScan:
		p, err := port.FindAvailable(cfg.Port+1, cfg.ScanAttempts)
		if err != nil {
			logging.UserError("No available ports found.")
			return false, errors.PortUnavailable(cfg.Port, err)
		}
		cfg.Port = p
		logging.UserInfo("Using alternative port: %d", p)
		return true, nil

	default:
		return false, nil
	}
}

// killOccupant terminates the process owning the port and waits for the
// port to free up.
func killOccupant(p int) bool {
	pid := process.FindByPort(context.Background(), p)
	if pid == 0 {
		logging.UserWarning("Could not identify the process on port %d", p)
		return false
	}

	if err := process.Terminate(pid); err != nil {
		logging.UserWarning("Could not kill existing process: %v", err)
		return false
	}
	logging.UserSuccess("Killed existing server process (PID: %d)", pid)

	return process.WaitForFree(p, portFreeTimeout)
}
