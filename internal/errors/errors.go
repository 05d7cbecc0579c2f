package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution (including graceful interrupt).
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorInput    = 2   // Indicates a failure reading operator input.
	ExitErrorSetup    = 3   // Indicates a startup resource could not be acquired.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the run was canceled before any work started.
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InputError encapsulates a failure while reading operator input, preserving
// the original cause. A blank line is not an InputError (it is re-prompted);
// this type covers unreadable input streams only.
type InputError struct {
	// Cause is the underlying read error.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e InputError) Error() string { return fmt.Sprintf("reading input: %v", e.Cause) }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the InputError.
func (e InputError) Unwrap() error { return e.Cause }

// SetupError represents a startup resource acquisition failure (log sink,
// metrics listener, signal registration). Setup errors are always fatal and
// occur before any worker is spawned.
type SetupError struct {
	// Resource names the resource that could not be acquired.
	Resource string
	// Cause is the underlying error.
	Cause error
}

// Error returns a formatted message describing the setup failure.
//
// Returns:
//   - string: The error message string.
func (e SetupError) Error() string {
	return fmt.Sprintf("setting up %s: %v", e.Resource, e.Cause)
}

// Unwrap returns the underlying cause of the SetupError.
//
// Returns:
//   - error: The wrapped error.
func (e SetupError) Unwrap() error { return e.Cause }

// PanicError carries a panic recovered inside a worker or reporter goroutine
// to the orchestrator's join point, where it is treated as fatal for the
// whole process.
type PanicError struct {
	// Origin names the goroutine that panicked (e.g. "worker 3", "reporter").
	Origin string
	// Value is the recovered panic value.
	Value any
}

// Error returns a formatted message describing the panic.
//
// Returns:
//   - string: The error message string.
func (e PanicError) Error() string {
	return fmt.Sprintf("%s panicked: %v", e.Origin, e.Value)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeForError maps an error to the process exit code it warrants. The
// mapping is shared by the CLI and TUI paths so both report failures to the
// OS identically.
//
// Parameters:
//   - err: The error to map; nil maps to ExitSuccess.
//
// Returns:
//   - int: The exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var configErr ConfigError
	if errors.As(err, &configErr) {
		return ExitErrorConfig
	}
	var inputErr InputError
	if errors.As(err, &inputErr) {
		return ExitErrorInput
	}
	var setupErr SetupError
	if errors.As(err, &setupErr) {
		return ExitErrorSetup
	}
	if IsContextError(err) {
		return ExitErrorCanceled
	}
	return ExitErrorGeneric
}
