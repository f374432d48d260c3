package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yvan-vivid/vivid-time/internal/config"
	"github.com/yvan-vivid/vivid-time/internal/format"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Test/validation failure (scenarios failed, invalid point, etc.)
	ExitCommandError = 2 // Command error (invalid paths, unparsable arguments, etc.)
)

// Error codes for CLI responses.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNoFiles     = "E003" // No CUE files found
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // Path or scheme not found
	ErrCodeBadArgument = "E006" // Unparsable argument
	ErrCodeScheme      = "E101" // Malformed scheme declaration
	ErrCodeFactor      = "E102" // Malformed factor
	ErrCodePeriod      = "E103" // Missing or mismatched period
	ErrCodeRemainder   = "E104" // Remainder outside a filter
	ErrCodeInvalidPnt  = "E201" // Point is not normal for its scheme
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
// Returns ExitFailure (1) if the error is not an ExitError.
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

// OutputFormatter handles text, JSON and YAML output for CLI commands.
type OutputFormatter struct {
	Format  string
	Writer  io.Writer
	Verbose bool
}

// CLIResponse is the standard structured response for command reports.
type CLIResponse struct {
	Status string    `json:"status" yaml:"status"`                   // "ok" or "error"
	Data   any       `json:"data,omitempty" yaml:"data,omitempty"`   // success payload
	Error  *CLIError `json:"error,omitempty" yaml:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code" yaml:"code"`                           // "E001", "E002", etc.
	Message string `json:"message" yaml:"message"`                     // human-readable message
	Details any    `json:"details,omitempty" yaml:"details,omitempty"` // additional context
}

// Document writes a value: text as is, or doc as JSON or YAML.
func (f *OutputFormatter) Document(text string, doc format.Object) error {
	switch f.Format {
	case config.FormatJSON:
		out, err := format.EncodeJSON(doc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(f.Writer, "%s\n", out)
		return err
	case config.FormatYAML:
		out, err := format.EncodeYAML(doc)
		if err != nil {
			return err
		}
		_, err = f.Writer.Write(out)
		return err
	default:
		_, err := fmt.Fprintln(f.Writer, text)
		return err
	}
}

// Success outputs a successful report in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.structured() {
		return f.encode(CLIResponse{Status: "ok", Data: data})
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.structured() {
		return f.encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Report outputs a response with both data and error details. Used when a
// command has partial results to show alongside a failure.
func (f *OutputFormatter) Report(resp CLIResponse) error {
	return f.encode(resp)
}

func (f *OutputFormatter) structured() bool {
	return f.Format == config.FormatJSON || f.Format == config.FormatYAML
}

func (f *OutputFormatter) encode(resp CLIResponse) error {
	if f.Format == config.FormatYAML {
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	}
	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(resp)
}
