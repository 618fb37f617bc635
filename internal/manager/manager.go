// Package manager starts, stops, and inspects the development static
// file server. Liveness is keyed entirely on TCP port occupancy: the
// process bound to the configured port is taken to be the server.
//
// Action methods report their outcome as a printed message plus a bool;
// they deliberately do not map failure onto process exit codes. The
// tool is meant for interactive use.
package manager

import (
	"context"
	"time"

	"github.com/ryokushen/devserver/internal/config"
	"github.com/ryokushen/devserver/internal/logging"
	"github.com/ryokushen/devserver/internal/process"
	"github.com/ryokushen/devserver/internal/system"
)

const (
	defaultStartTimeout = 5 * time.Second
	defaultStopTimeout  = 3 * time.Second
)

// Manager controls the static file server process.
type Manager struct {
	cfg  *config.Config
	exec system.CommandExecutor

	// terminate delivers SIGTERM; replaced in tests.
	terminate func(pid int) error

	// Argv0 is the path of this binary, used to launch `serve` when
	// no serve_command is configured.
	Argv0 string

	// StartTimeout bounds the wait for the child to bind its port.
	StartTimeout time.Duration

	// StopTimeout bounds the wait for the port to free after SIGTERM.
	StopTimeout time.Duration
}

// New creates a Manager for the given configuration.
func New(cfg *config.Config, argv0 string) *Manager {
	return &Manager{
		cfg:          cfg,
		exec:         system.DefaultExecutor(),
		terminate:    process.Terminate,
		Argv0:        argv0,
		StartTimeout: defaultStartTimeout,
		StopTimeout:  defaultStopTimeout,
	}
}

// SetExecutor replaces the command executor (useful for testing).
func (m *Manager) SetExecutor(exec system.CommandExecutor) {
	m.exec = exec
}

// pid returns the PID of the process owning the configured port, or 0.
func (m *Manager) pid(ctx context.Context) int {
	return process.FindByPortWith(ctx, m.exec, m.cfg.Port)
}

// IsRunning reports whether something owns the configured port.
func (m *Manager) IsRunning(ctx context.Context) bool {
	return m.pid(ctx) != 0
}

// Start launches the server unless one is already running. Returns true
// when the server came up and bound its port in time.
func (m *Manager) Start(ctx context.Context) bool {
	if pid := m.pid(ctx); pid != 0 {
		logging.UserError("Server is already running on port %d (PID: %d)", m.cfg.Port, pid)
		logging.UserInfo("Use 'devserver restart' to restart it")
		return false
	}

	argv, err := m.cfg.ServeArgv(m.Argv0)
	if err != nil {
		logging.UserError("Invalid serve command: %v", err)
		return false
	}

	logging.UserInfo("Starting server on port %d...", m.cfg.Port)
	childPID, err := m.exec.StartDetached(argv[0], argv[1:]...)
	if err != nil {
		logging.UserError("Failed to launch server: %v", err)
		return false
	}
	logging.Debug("launched server", "pid", childPID, "argv", argv)

	if !process.WaitForPort(m.cfg.Port, m.StartTimeout) {
		logging.UserError("Failed to start server")
		return false
	}

	if pid := m.pid(ctx); pid != 0 {
		logging.UserSuccess("Server started successfully at %s", m.cfg.URL())
		return true
	}

	logging.UserError("Failed to start server")
	return false
}

// Stop terminates the process owning the port. Returns true when a
// signal was delivered.
func (m *Manager) Stop(ctx context.Context) bool {
	pid := m.pid(ctx)
	if pid == 0 {
		logging.UserError("No server is running")
		return false
	}

	if err := m.terminate(pid); err != nil {
		logging.UserError("Failed to stop server: %v", err)
		return false
	}

	logging.UserSuccess("Server stopped (PID: %d)", pid)

	if !process.WaitForFree(m.cfg.Port, m.StopTimeout) {
		logging.UserWarning("Port %d still occupied after stop", m.cfg.Port)
	}
	return true
}

// Restart stops the server when running, then starts it.
func (m *Manager) Restart(ctx context.Context) bool {
	logging.UserInfo("Restarting server...")
	if m.IsRunning(ctx) {
		m.Stop(ctx)
	}
	return m.Start(ctx)
}

// Status reports whether the server is running and, when it is, the PID
// and service URL.
func (m *Manager) Status(ctx context.Context) bool {
	pid := m.pid(ctx)
	if pid == 0 {
		logging.UserError("Server is not running")
		return false
	}

	logging.UserSuccess("Server is running (PID: %d)", pid)
	logging.UserInfo("URL: %s", m.cfg.URL())
	return true
}
