package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/yvan-vivid/vivid-time/internal/config"
	"github.com/yvan-vivid/vivid-time/internal/format"
	"github.com/yvan-vivid/vivid-time/internal/unix"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose        bool
	Format         string // "text" | "json" | "yaml"
	PhaseSeparator string
	Timezone       string
	LogLevel       slog.Level

	// Clock supplies "now". Tests replace it with a fixed clock.
	Clock unix.Clock
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{config.FormatText, config.FormatJSON, config.FormatYAML}

// NewRootCommand creates the root command for the vivid CLI. Flag defaults
// come from cfg; the clock reads the current instant.
func NewRootCommand(cfg config.Config, clock unix.Clock) *cobra.Command {
	opts := &RootOptions{LogLevel: cfg.LogLevel, Clock: clock}

	cmd := &cobra.Command{
		Use:   "vivid",
		Short: "vivid - System-N time",
		Long: `Tell the time in System-N: a day of 2^20 edges, a 360 day calendar
with a closing interstice, and years grouped into depths.

Also winds and unwinds totals through mixed-radix schemes declared in CUE.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ValidateFormat(opts.Format); err != nil {
				return WrapExitError(ExitCommandError, "invalid flags", err)
			}
			setupLogging(cmd.ErrOrStderr(), opts)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.PhaseSeparator, "separator", cfg.PhaseSeparator, "separator between digits in text output")
	cmd.PersistentFlags().StringVar(&opts.Timezone, "timezone", cfg.Timezone, "zone for times given without one")

	// Add subcommands
	cmd.AddCommand(NewNowCommand(opts))
	cmd.AddCommand(NewTodayCommand(opts))
	cmd.AddCommand(NewToCommand(opts))
	cmd.AddCommand(NewJSONCommand(opts))
	cmd.AddCommand(NewWindCommand(opts))
	cmd.AddCommand(NewUnwindCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// setupLogging installs a text handler on w at the configured level, or
// debug when verbose.
func setupLogging(w io.Writer, opts *RootOptions) {
	level := opts.LogLevel
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// formatter returns the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  o.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: o.Verbose,
	}
}

// location resolves the timezone flag.
func (o *RootOptions) location() (*time.Location, error) {
	loc, err := config.Config{Timezone: o.Timezone}.Location()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid timezone", err)
	}
	return loc, nil
}

// pointFormatter joins scheme digits with the separator flag.
func (o *RootOptions) pointFormatter() format.PointFormatter {
	return format.NewPointFormatter(o.PhaseSeparator)
}

func (o *RootOptions) clock() unix.Clock {
	if o.Clock == nil {
		return unix.SystemClock{}
	}
	return o.Clock
}

// errorf reports message in the configured format and returns an ExitError.
func (o *RootOptions) errorf(cmd *cobra.Command, exit int, code string, err error, message string, args ...any) error {
	msg := fmt.Sprintf(message, args...)
	_ = o.formatter(cmd).Error(code, fmt.Sprintf("%s: %v", msg, err), nil)
	return WrapExitError(exit, fmt.Sprintf("%s: %s", code, msg), err)
}
