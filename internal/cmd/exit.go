// Package cmd provides command implementations for the create-vue CLI.
package cmd

// Exit codes returned by the create-vue binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid user input such as a bad
	// package name or style guide.
	ExitValidationError = 2

	// ExitPreconditionError indicates a scaffolding invariant did not hold.
	ExitPreconditionError = 3

	// ExitCancelled indicates the user declined to continue.
	ExitCancelled = 4

	// ExitNotFound indicates a template fragment or file was not found.
	ExitNotFound = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitPreconditionError:
		return "Precondition Failed"
	case ExitCancelled:
		return "Cancelled"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
