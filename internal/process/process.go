// Package process discovers and signals the process bound to a TCP port.
//
// Discovery shells out to lsof, the same port-to-process lookup the rest
// of the local tooling relies on. A missing lsof binary or output in an
// unexpected shape degrades to "no process found" rather than failing:
// the caller only ever needs a yes/no liveness answer.
package process

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/ryokushen/devserver/internal/logging"
	"github.com/ryokushen/devserver/internal/port"
	"github.com/ryokushen/devserver/internal/system"
)

// pollInterval is the delay between liveness probes in the Wait helpers.
const pollInterval = 100 * time.Millisecond

// FindByPort returns the PID of the process bound to the given TCP port,
// or 0 when no owner is found. Lookup failures are soft: they are logged
// at debug level and reported as not-found.
func FindByPort(ctx context.Context, p int) int {
	return FindByPortWith(ctx, system.DefaultExecutor(), p)
}

// FindByPortWith is FindByPort with an explicit executor.
func FindByPortWith(ctx context.Context, exec system.CommandExecutor, p int) int {
	out, err := exec.Execute(ctx, "lsof", "-ti", fmt.Sprintf(":%d", p))
	if err != nil {
		// lsof exits non-zero when nothing matches; either way the
		// port has no discoverable owner.
		logging.Debug("port owner lookup failed", "port", p, "error", err)
		return 0
	}

	// lsof may list one PID per line; the first one owns the listener.
	fields := strings.Fields(strings.TrimSpace(string(out)))
	if len(fields) == 0 {
		return 0
	}

	pid, err := strconv.Atoi(fields[0])
	if err != nil {
		logging.Debug("unparseable lsof output", "port", p, "output", string(out))
		return 0
	}
	return pid
}

// Terminate sends SIGTERM to the given PID.
func Terminate(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process %d: %w", pid, err)
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to signal process %d: %w", pid, err)
	}
	return nil
}

// WaitForPort polls until the port is bound by someone or the timeout
// elapses. Returns true when the port became occupied in time.
func WaitForPort(p int, timeout time.Duration) bool {
	return waitFor(timeout, func() bool { return !port.Probe(p) })
}

// WaitForFree polls until the port passes the bind probe or the timeout
// elapses. Returns true when the port freed up in time.
func WaitForFree(p int, timeout time.Duration) bool {
	return waitFor(timeout, func() bool { return port.Probe(p) })
}

func waitFor(timeout time.Duration, done func() bool) bool {
	deadline := time.Now().Add(timeout)
	for {
		if done() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(pollInterval)
	}
}
