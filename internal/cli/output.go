package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/abyssparanoia/blender-go/interop"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Host error, invalid schema, failed scenario or replay divergence
	ExitCommandError = 2 // Command error (bad flags, unreachable host, unreadable journal)
)

// CLI error codes. Host exceptions use the interop.HostErrorCode string
// instead, and schema problems use the schema package codes.
const (
	ErrCodeGeneric      = "E001" // generic/unknown error
	ErrCodeConfig       = "E010" // configuration could not be loaded
	ErrCodeConnect      = "E011" // host could not be started or reached
	ErrCodeBadValue     = "E012" // value or args flag is not valid JSON
	ErrCodeJournal      = "E013" // journal could not be opened or read
	ErrCodeGenerate     = "E014" // binding rendering failed
	ErrCodeWrite        = "E015" // generated files could not be written
	ErrCodeInvalid      = "E200" // schema validation failed
	ErrCodeTestFailed   = "E300" // one or more scenarios failed
	ErrCodeReplayDiff   = "E301" // replayed session diverged from the journal
	ErrCodeIncompatible = "E302" // host version or protocol rejected
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format  string
	Writer  io.Writer
	Verbose bool
}

// newFormatter returns a formatter writing to w with the global flags.
func newFormatter(opts *RootOptions, w io.Writer) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: w, Verbose: opts.Verbose}
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E011", "ATTRIBUTE_ERROR", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// fail reports an error envelope and returns the matching ExitError.
func (f *OutputFormatter) fail(exit int, code, message string, details any, err error) error {
	if werr := f.Error(code, message, details); werr != nil {
		return werr
	}
	return WrapExitError(exit, fmt.Sprintf("%s: %s", code, message), err)
}

// hostErrorDetails is the details payload of a host exception.
type hostErrorDetails struct {
	Type      string `json:"type"`
	Op        string `json:"op"`
	Path      string `json:"path"`
	Traceback string `json:"traceback,omitempty"`
}

// failCall reports a failed host call. Host exceptions exit 1 with their
// category code; anything else means the host could not be used and exits 2.
func (f *OutputFormatter) failCall(err error) error {
	var he *interop.HostError
	if errors.As(err, &he) {
		return f.fail(ExitFailure, string(he.Code), he.Message, hostErrorDetails{
			Type:      he.Type,
			Op:        string(he.Op),
			Path:      he.Path,
			Traceback: he.Traceback,
		}, err)
	}
	var ie *interop.IncompatibleHostError
	if errors.As(err, &ie) {
		return f.fail(ExitCommandError, ErrCodeIncompatible, ie.Error(), nil, err)
	}
	return f.fail(ExitCommandError, ErrCodeConnect, err.Error(), nil, err)
}
