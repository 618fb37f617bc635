// Package errors provides typed errors with exit codes for devserver.
//
// # Error Types
//
// DevError is the base error type that wraps an error with an exit code:
//
//	type DevError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // General/unknown errors
//	ExitConfigError  = 2  // Configuration error
//	ExitPortError    = 3  // No usable port found
//	ExitServerError  = 4  // Server failed to start or serve
//	ExitRenderError  = 5  // Icon rendering failed
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.ConfigError("invalid devserver.toml", err)
//	errors.PortUnavailable(8080, err)
//	errors.ServerFailed(err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
