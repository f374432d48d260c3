package cli

import (
	"errors"
	"io/fs"
	"log/slog"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yvan-vivid/vivid-time/internal/format"
	"github.com/yvan-vivid/vivid-time/internal/scheme"
)

// UnwindOptions holds flags for the unwind command.
type UnwindOptions struct {
	*RootOptions
	Remainder int64
}

// NewWindCommand creates the wind command.
func NewWindCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wind <schemes-path> <scheme> <total>",
		Short: "Decompose a total through a declared scheme",
		Long: `Decompose a total through a scheme declared in CUE.

The point is printed as "cycle: digits", most significant digit first.
Filter schemes add " | remainder".

Example:
  vivid wind ./schemes hms 3661`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWind(rootOpts, args[0], args[1], args[2], cmd)
		},
	}

	return cmd
}

// NewUnwindCommand creates the unwind command.
func NewUnwindCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UnwindOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "unwind <schemes-path> <scheme> <cycle> <digit>...",
		Short: "Recompose the total of a point of a declared scheme",
		Long: `Recompose the total of a point of a scheme declared in CUE.

Digits are given most significant first, as wind prints them.
Points that are not normal for the scheme are rejected with exit code 1.

Example:
  vivid unwind ./schemes hms 0 1 1 1
  vivid unwind --remainder 364 ./schemes depth_days -- -1 15 1 7`,
		Args:          cobra.MinimumNArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnwind(opts, args[0], args[1], args[2:], cmd)
		},
	}

	cmd.Flags().Int64VarP(&opts.Remainder, "remainder", "r", 0, "remainder of a filter point")

	return cmd
}

func runWind(opts *RootOptions, path, name, totalArg string, cmd *cobra.Command) error {
	s, err := lookupScheme(opts, cmd, path, name)
	if err != nil {
		return err
	}

	total, err := strconv.ParseInt(totalArg, 10, 64)
	if err != nil {
		return opts.errorf(cmd, ExitCommandError, ErrCodeBadArgument, err, "invalid total %q", totalArg)
	}

	p := s.Wind(total)
	slog.Debug("wound", "scheme", name, "total", total, "point", p)

	doc, err := format.PointDocument(s, p)
	if err != nil {
		return err
	}
	return opts.formatter(cmd).Document(opts.pointFormatter().Format(s, p), doc)
}

func runUnwind(opts *UnwindOptions, path, name string, coords []string, cmd *cobra.Command) error {
	s, err := lookupScheme(opts.RootOptions, cmd, path, name)
	if err != nil {
		return err
	}

	values := make([]int64, len(coords))
	for i, c := range coords {
		v, err := strconv.ParseInt(c, 10, 64)
		if err != nil {
			return opts.errorf(cmd, ExitCommandError, ErrCodeBadArgument, err, "invalid coordinate %q", c)
		}
		values[i] = v
	}

	// Digits arrive most significant first; points hold them the other way.
	phase := slices.Clone(values[1:])
	slices.Reverse(phase)
	p := scheme.Point{Cycle: values[0], Phase: phase, Remainder: opts.Remainder}

	total, err := s.Unwind(p)
	if err != nil {
		return opts.errorf(cmd, ExitFailure, ErrCodeInvalidPnt, err, "cannot unwind")
	}
	slog.Debug("unwound", "scheme", name, "point", p, "total", total)

	doc := format.Object{}.
		With("scheme", s.Name()).
		With("total", total)
	return opts.formatter(cmd).Document(strconv.FormatInt(total, 10), doc)
}

// lookupScheme compiles path and returns the scheme called name, reporting
// failures in the configured format.
func lookupScheme(opts *RootOptions, cmd *cobra.Command, path, name string) (*scheme.Scheme, error) {
	catalog, err := scheme.Load(path)
	if err != nil {
		return nil, opts.errorf(cmd, ExitCommandError, loadErrorCode(err), err, "cannot load schemes from %s", path)
	}
	s, err := catalog.Lookup(name)
	if err != nil {
		return nil, opts.errorf(cmd, ExitCommandError, ErrCodeNotFound, err, "no scheme %q in %s", name, path)
	}
	return s, nil
}

// loadErrorCode maps a scheme loading error to a CLI error code.
func loadErrorCode(err error) string {
	var compileErr *scheme.CompileError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrCodeNotFound
	case errors.Is(err, scheme.ErrNoSchemeFiles):
		return ErrCodeNoFiles
	case errors.As(err, &compileErr):
		return compileErrorCode(compileErr.Field)
	default:
		return ErrCodeGeneric
	}
}

// compileErrorCode maps a compile error field to an error code.
func compileErrorCode(field string) string {
	switch field {
	case "cue":
		return ErrCodeLoadFailed
	case "scheme", "kind", "cycle":
		return ErrCodeScheme
	case "factors", "factors.name", "factors.size", "factors.limit":
		return ErrCodeFactor
	case "period":
		return ErrCodePeriod
	case "remainder":
		return ErrCodeRemainder
	default:
		return ErrCodeGeneric
	}
}
