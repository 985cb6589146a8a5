package exitcode

import (
	"os"

	"github.com/prideconnect/prideconnect/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates the session is missing, expired, or rejected
	AuthError = 3

	// ValidationError indicates the backend rejected the request payload
	ValidationError = 4

	// NetworkError indicates a network connectivity issue
	NetworkError = 5

	// NotFoundError indicates the requested entity does not exist
	NotFoundError = 6
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode maps an error to its exit code via the client error
// taxonomy. Errors without a code fall through to GeneralError.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	switch {
	case errors.IsUnauthorized(err):
		return AuthError
	case errors.Code(err) == errors.ErrCodeTokenMissing:
		return AuthError
	case errors.IsValidation(err):
		return ValidationError
	case errors.IsNetwork(err):
		return NetworkError
	case errors.IsNotFound(err):
		return NotFoundError
	default:
		return GeneralError
	}
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case AuthError:
		return "Authentication error"
	case ValidationError:
		return "Request rejected by the backend"
	case NetworkError:
		return "Network error"
	case NotFoundError:
		return "Not found"
	default:
		return "Unknown error"
	}
}
