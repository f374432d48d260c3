package format

import (
	"strconv"

	"github.com/yvan-vivid/vivid-time/internal/systemn"
)

const (
	datePrefix        = "∆ "
	depthSeparator    = ": "
	dateSeparator     = ": "
	timeSeparator     = " / "
	fractionSeparator = " // "
)

// DepthStyle selects how the depth of a date is written.
type DepthStyle int

const (
	// DepthShort writes the year number.
	DepthShort DepthStyle = iota
	// DepthLong writes the aeon and the depth digits.
	DepthLong
)

// Options configure a Formatter.
type Options struct {
	PhaseSeparator string
	Depth          DepthStyle
	// ClockPrecision keeps only the most significant clock digits in Time.
	// Zero keeps all.
	ClockPrecision int
}

// Formatter writes System-N values as text.
type Formatter struct {
	opts Options
}

// New returns a Formatter. An empty PhaseSeparator uses
// DefaultPhaseSeparator.
func New(opts Options) *Formatter {
	if opts.PhaseSeparator == "" {
		opts.PhaseSeparator = DefaultPhaseSeparator
	}
	return &Formatter{opts: opts}
}

func (f *Formatter) phase(precision int) PhaseFormatter {
	return PhaseFormatter{Separator: f.opts.PhaseSeparator, Precision: precision}
}

// Year writes y as a plain integer.
func (f *Formatter) Year(y systemn.Year) string {
	return strconv.FormatInt(y.Out(), 10)
}

// Depth writes d in the configured style.
func (f *Formatter) Depth(d systemn.Depth) string {
	if f.opts.Depth == DepthLong {
		return MixedPointFormatter{Separator: depthSeparator, Phase: f.phase(0)}.Format(d.Point())
	}
	return f.Year(d.Year())
}

// Calendar writes the span digits or the interstice day.
func (f *Formatter) Calendar(c systemn.Calendar) string {
	switch c := c.(type) {
	case systemn.Span:
		return f.phase(0).Format(c.Phase())
	case systemn.Interstice:
		return "Interstice " + strconv.FormatInt(c.Out(), 10)
	}
	return ""
}

// Clock writes every clock digit.
func (f *Formatter) Clock(c systemn.Clock) string {
	return f.phase(0).Format(c.Phase())
}

// Date writes "∆ depth: calendar".
func (f *Formatter) Date(d systemn.Date) string {
	return datePrefix + f.Depth(d.Depth) + dateSeparator + f.Calendar(d.Calendar)
}

// Time writes "date / clock", honouring ClockPrecision.
func (f *Formatter) Time(t systemn.Time) string {
	return f.Date(t.Date) + timeSeparator + f.phase(f.opts.ClockPrecision).Format(t.Clock.Phase())
}

// TimeWithFraction writes "time // fraction" with the full clock.
func (f *Formatter) TimeWithFraction(t systemn.TimeWithFraction) string {
	return f.Date(t.Time.Date) + timeSeparator + f.Clock(t.Time.Clock) + fractionSeparator + f.Fraction(t.Fraction)
}

// Fraction writes the shortest decimal that reads back as e.
func (f *Formatter) Fraction(e systemn.EdgeFraction) string {
	return strconv.FormatFloat(e.Out(), 'f', -1, 64)
}
