// Package port provides TCP port availability probing for devserver.
//
// # Port Probe
//
// A probe binds a listener on the port and releases it immediately:
//
//	if port.Probe(8080) {
//	    // port is free
//	}
//
// The probe is idempotent: a successful probe leaves the port free for
// an immediate second probe.
//
// # Forward Scan
//
// When the preferred port is occupied, FindAvailable scans forward for
// the first free port within a bounded attempt count:
//
//	p, err := port.FindAvailable(8081, 10)
//
// The scan is first-fit: the lowest free port in the window wins.
//
// Port occupancy is an OS-level signal shared with whatever else is
// running on the machine, so a probe result can be stale by the time
// the caller binds. Callers treat it as a best-effort hint, not a
// reservation.
package port
