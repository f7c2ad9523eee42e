// Package errors provides typed errors with exit codes for hostpick.
//
// HostpickError wraps an error with an exit code and a user-facing
// message:
//
//	type HostpickError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// Exit codes:
//
//	ExitSuccess      = 0  // Success
//	ExitGeneralError = 1  // General/unknown errors
//	ExitConfigParse  = 2  // ssh config failed to parse
//	ExitHostNotFound = 3  // Requested host does not exist
//	ExitLaunchFailed = 4  // Launched command failed
//	ExitOptions      = 5  // Options file or template error
//
// Use the constructors for consistent error creation:
//
//	errors.ConfigParseFailed("~/.ssh/config", err)
//	errors.HostNotFound("prod-db")
//
// and GetExitCode at the process boundary:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
