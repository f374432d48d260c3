package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yvan-vivid/vivid-time/internal/scheme"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid   bool              `json:"valid" yaml:"valid"`
	Schemes []SchemeSummary   `json:"schemes,omitempty" yaml:"schemes,omitempty"`
	Errors  []ValidationError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// SchemeSummary describes one compiled scheme.
type SchemeSummary struct {
	Name   string `json:"name" yaml:"name"`
	Kind   string `json:"kind" yaml:"kind"`
	Period int64  `json:"period" yaml:"period"`
	Width  int    `json:"width" yaml:"width"`
}

// ValidationError locates a declaration problem.
type ValidationError struct {
	Code    string `json:"code" yaml:"code"`
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <schemes-path>",
		Short: "Compile scheme declarations and report problems",
		Long: `Compile the CUE scheme declarations in a file or directory.

Exit codes:
  0 - All schemes valid
  1 - A declaration is invalid
  2 - Command error (path not found, no CUE files)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	catalog, err := scheme.Load(path)
	if err != nil {
		var compileErr *scheme.CompileError
		if !errors.As(err, &compileErr) {
			code := loadErrorCode(err)
			_ = formatter.Error(code, err.Error(), nil)
			// Load failures are command-level errors (exit code 2)
			return NewExitError(ExitCommandError, fmt.Sprintf("%s: %v", code, err))
		}
		return outputValidationErrors(formatter, []ValidationError{validationError(err, compileErr)})
	}

	result := ValidationResult{Valid: true}
	for _, name := range catalog.Names() {
		s, err := catalog.Lookup(name)
		if err != nil {
			return err
		}
		result.Schemes = append(result.Schemes, SchemeSummary{
			Name:   s.Name(),
			Kind:   string(s.Kind()),
			Period: s.Period(),
			Width:  s.Width(),
		})
	}

	if formatter.structured() {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ %d scheme(s) valid\n", len(result.Schemes))
	for _, s := range result.Schemes {
		fmt.Fprintf(formatter.Writer, "  %s (%s, period %d, width %d)\n", s.Name, s.Kind, s.Period, s.Width)
	}
	return nil
}

// validationError converts a compile error, keeping the wrapping context as
// the message.
func validationError(err error, compileErr *scheme.CompileError) ValidationError {
	v := ValidationError{
		Code:    compileErrorCode(compileErr.Field),
		Field:   compileErr.Field,
		Message: err.Error(),
	}
	if compileErr.Pos.IsValid() {
		v.File = compileErr.Pos.Filename()
		v.Line = compileErr.Pos.Line()
	}
	return v
}

// outputValidationErrors outputs validation errors.
func outputValidationErrors(formatter *OutputFormatter, errs []ValidationError) error {
	if formatter.structured() {
		if err := formatter.Report(CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, Errors: errs},
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}); err != nil {
			return err
		}

		// Validation failures = exit code 1 (test/validation failure)
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, err := range errs {
		if err.Line > 0 {
			fmt.Fprintf(formatter.Writer, "%s line %d\n", err.File, err.Line)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", err.Code, err.Message)
	}

	// Validation failures = exit code 1 (test/validation failure)
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
