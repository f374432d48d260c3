package systemn

import (
	"github.com/yvan-vivid/vivid-time/internal/mixedpoint"
	"github.com/yvan-vivid/vivid-time/internal/numburs"
)

// Calendar is the position of a day within its year: either a Span for the
// first 360 days or an Interstice for the rest.
type Calendar interface {
	isCalendar()
}

// Span is a day within the first 360 days of a year.
type Span struct {
	phase mixedpoint.BoundMixedPhase[int64, int64]
}

// Interstice is a day past the span, counted from the end of the span.
type Interstice struct {
	numburs.Natural[int64]
}

func (Span) isCalendar()       {}
func (Interstice) isCalendar() {}

// SpanFromPhase validates phase, least significant digit first.
func SpanFromPhase(phase mixedpoint.Phase[int64]) (Span, bool) {
	b, ok := CalendarScheme().Point(numburs.ZeroInteger[int64](), phase)
	if !ok {
		return Span{}, false
	}
	return Span{phase: b.Phase()}, true
}

// Phase returns the span digits, least significant first.
func (s Span) Phase() mixedpoint.Phase[int64] {
	return s.phase.Phase()
}

// Named labels the span digits.
func (s Span) Named() []mixedpoint.NamedPhase[int64] {
	named, _ := mixedpoint.NamePhase(CalendarLegend, s.Phase())
	return named
}

// NewInterstice returns interstice day n, saturating negatives at zero.
func NewInterstice(n int64) Interstice {
	return Interstice{numburs.NaturalAtLeast(n)}
}

// CalendarOf places a day of the year in the calendar.
func CalendarOf(day YearDay) Calendar {
	scheme := CalendarScheme()
	if excess := day.Out() - scheme.Period().Size().Out(); excess >= 0 {
		return NewInterstice(excess)
	}
	return Span{phase: scheme.Wind(day.Integer()).Phase()}
}

// YearDayOf returns the day of the year c stands for.
func YearDayOf(c Calendar) YearDay {
	scheme := CalendarScheme()
	switch c := c.(type) {
	case Span:
		total := scheme.Unwind(mixedpoint.NewMixedPoint(numburs.ZeroInteger[int64](), c.Phase()))
		return NewYearDay(total.Out())
	case Interstice:
		return NewYearDay(scheme.Period().Size().Out() + c.Out())
	}
	return YearDay{}
}
