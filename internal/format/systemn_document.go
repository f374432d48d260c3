package format

import (
	"github.com/yvan-vivid/vivid-time/internal/mixedpoint"
	"github.com/yvan-vivid/vivid-time/internal/systemn"
)

// namedPhase builds an object of labelled digits, most significant first.
func namedPhase(named []mixedpoint.NamedPhase[int64]) Object {
	obj := make(Object, 0, len(named))
	for i := len(named) - 1; i >= 0; i-- {
		obj = obj.With(named[i].Name, named[i].Value.Out())
	}
	return obj
}

// DepthDocument returns {"aeon": n, "phase": {"hexade", "octade", "unade"}}.
func DepthDocument(d systemn.Depth) Object {
	return Object{}.
		With(systemn.DepthLegend.Cycle, d.Point().Cycle.Out()).
		With("phase", namedPhase(d.Named()))
}

// CalendarDocument returns {"span": {...}} or {"interstice": n}.
func CalendarDocument(c systemn.Calendar) Object {
	switch c := c.(type) {
	case systemn.Span:
		return Object{}.With("span", namedPhase(c.Named()))
	case systemn.Interstice:
		return Object{}.With("interstice", c.Out())
	}
	return Object{}
}

// ClockDocument returns the labelled clock digits.
func ClockDocument(c systemn.Clock) Object {
	return namedPhase(c.Named())
}

// DateDocument returns {"depth", "year", "calendar"}.
func DateDocument(d systemn.Date) Object {
	return Object{}.
		With("depth", DepthDocument(d.Depth)).
		With("year", d.Year.Out()).
		With("calendar", CalendarDocument(d.Calendar))
}

// TimeDocument returns {"date", "clock"}.
func TimeDocument(t systemn.Time) Object {
	return Object{}.
		With("date", DateDocument(t.Date)).
		With("clock", ClockDocument(t.Clock))
}

// TimeWithFractionDocument returns {"time", "fraction"}.
func TimeWithFractionDocument(t systemn.TimeWithFraction) Object {
	return Object{}.
		With("time", TimeDocument(t.Time)).
		With("fraction", t.Fraction.Out())
}
