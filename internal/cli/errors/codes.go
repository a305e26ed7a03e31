package errors

import (
	"fmt"
	"os"
)

// Exit codes for different error scenarios
const (
	ExitSuccess          = 0 // Success
	ExitGeneralError     = 1 // General error (store I/O, unknown error)
	ExitInvalidArguments = 2 // Invalid arguments/usage (missing args, bad flags)
	ExitNotFound         = 3 // Profile or platform not found
	ExitValidationError  = 4 // Token or URL failed format validation
)

// ExitWithError prints error message and exits with the general error code
func ExitWithError(err error, message string) {
	if message != "" {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(ExitGeneralError)
}

// ExitWithCode prints error message and exits with specific code
func ExitWithCode(code int, message string) {
	if message != "" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
	os.Exit(code)
}
