package port

import (
	"fmt"
	"net"
)

// Probe reports whether the port can be bound on all interfaces.
// The test listener is closed before returning.
func Probe(port int) bool {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	ln.Close()
	return true
}

// FindAvailable scans forward from start for the first port that passes
// the bind probe, trying at most attempts ports.
func FindAvailable(start, attempts int) (int, error) {
	return findAvailable(start, attempts, Probe)
}

// findAvailable takes the probe as a parameter so the scan order can be
// tested without binding real sockets.
func findAvailable(start, attempts int, probe func(int) bool) (int, error) {
	for i := 0; i < attempts; i++ {
		p := start + i
		if p > 65535 {
			break
		}
		if probe(p) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", start, start+attempts-1)
}
