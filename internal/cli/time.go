package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/yvan-vivid/vivid-time/internal/config"
	"github.com/yvan-vivid/vivid-time/internal/format"
	"github.com/yvan-vivid/vivid-time/internal/systemn"
)

// TimeOptions holds flags for the commands that print a time.
type TimeOptions struct {
	*RootOptions
	Long      bool // write the depth as aeon and digits
	Precision int  // most significant clock digits to keep
	Full      bool // append the edge fraction
}

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TimeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current System-N time",
		Long: `Print the current time as "∆ depth: calendar / clock".

Examples:
  vivid now
  vivid now --precision 2
  vivid now --long --full
  vivid now --format yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeTime(opts, cmd, systemn.Now(opts.clock()))
		},
	}

	addTimeFlags(cmd, opts, true)
	return cmd
}

// NewTodayCommand creates the today command.
func NewTodayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TimeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "today",
		Short:         "Print the current System-N date",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := systemn.Now(opts.clock()).Time.Date
			text := opts.timeFormatter().Date(date)
			return opts.formatter(cmd).Document(text, format.DateDocument(date))
		},
	}

	addTimeFlags(cmd, opts, false)
	return cmd
}

// NewToCommand creates the to command.
func NewToCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TimeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "to <time>...",
		Short: "Convert a calendar date and time to System-N",
		Long: `Convert a date and time in almost any common layout to System-N.

Times without a zone are read in --timezone (VIVID_TIMEZONE, default UTC).

Examples:
  vivid to 2024-02-01T09:30:00Z
  vivid to "Feb 1 2024 4:30am" --timezone America/New_York
  vivid to 2005-07-28 09:30 --full`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTo(opts, strings.Join(args, " "), cmd)
		},
	}

	addTimeFlags(cmd, opts, true)
	return cmd
}

// NewJSONCommand creates the json command.
func NewJSONCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "json",
		Short:         "Print the current System-N time with its fraction as JSON",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := &OutputFormatter{Format: config.FormatJSON, Writer: cmd.OutOrStdout()}
			return f.Document("", format.TimeWithFractionDocument(systemn.Now(rootOpts.clock())))
		},
	}
}

func addTimeFlags(cmd *cobra.Command, opts *TimeOptions, clock bool) {
	cmd.Flags().BoolVarP(&opts.Long, "long", "l", false, "write the depth as aeon and digits instead of the year")
	if !clock {
		return
	}
	cmd.Flags().IntVarP(&opts.Precision, "precision", "p", 0, "most significant clock digits to keep (0 keeps all)")
	cmd.Flags().BoolVar(&opts.Full, "full", false, "append the fraction of the current edge")
}

func (o *TimeOptions) timeFormatter() *format.Formatter {
	depth := format.DepthShort
	if o.Long {
		depth = format.DepthLong
	}
	return format.New(format.Options{
		PhaseSeparator: o.PhaseSeparator,
		Depth:          depth,
		ClockPrecision: o.Precision,
	})
}

func runTo(opts *TimeOptions, input string, cmd *cobra.Command) error {
	loc, err := opts.location()
	if err != nil {
		return err
	}

	t, err := dateparse.ParseIn(input, loc)
	if err != nil {
		return opts.errorf(cmd, ExitCommandError, ErrCodeBadArgument, err, "cannot parse time %q", input)
	}
	slog.Debug("parsed time", "input", input, "instant", t)

	return writeTime(opts, cmd, systemn.FromInstant(t))
}

// writeTime prints t, with its fraction when --full is set.
func writeTime(opts *TimeOptions, cmd *cobra.Command, t systemn.TimeWithFraction) error {
	if opts.Precision < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("%s: precision must not be negative", ErrCodeBadArgument))
	}

	f := opts.timeFormatter()
	if opts.Full {
		return opts.formatter(cmd).Document(f.TimeWithFraction(t), format.TimeWithFractionDocument(t))
	}
	return opts.formatter(cmd).Document(f.Time(t.Time), format.TimeDocument(t.Time))
}
