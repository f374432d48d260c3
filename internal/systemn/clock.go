package systemn

import (
	"github.com/yvan-vivid/vivid-time/internal/mixedpoint"
	"github.com/yvan-vivid/vivid-time/internal/numburs"
)

// Clock is a time of day.
type Clock struct {
	phase mixedpoint.BoundMixedPhase[int64, int64]
}

// ClockDuration is a number of edges split into whole days and a clock.
type ClockDuration struct {
	Days  Days
	Clock Clock
}

// ClockWithDay is an edge split into its day and time of day.
type ClockWithDay struct {
	Day   Day
	Clock Clock
}

// ClockFromPhase validates phase, least significant digit first. It
// reports false if a digit is out of range.
func ClockFromPhase(phase mixedpoint.Phase[int64]) (Clock, bool) {
	b, ok := ClockScheme().Point(numburs.ZeroInteger[int64](), phase)
	if !ok {
		return Clock{}, false
	}
	return Clock{phase: b.Phase()}, true
}

// Phase returns the clock digits, least significant first.
func (c Clock) Phase() mixedpoint.Phase[int64] {
	return c.phase.Phase()
}

// Named labels the clock digits.
func (c Clock) Named() []mixedpoint.NamedPhase[int64] {
	named, _ := mixedpoint.NamePhase(ClockLegend, c.Phase())
	return named
}

// Edges returns the offset of c into its day.
func (c Clock) Edges() Edges {
	return Edges{ClockScheme().Unwind(mixedpoint.NewMixedPoint(numburs.ZeroInteger[int64](), c.Phase()))}
}

// SplitEdges splits a duration into whole days and a clock.
func SplitEdges(edges Edges) ClockDuration {
	b := ClockScheme().Wind(edges.Integer)
	return ClockDuration{Days: Days{b.Cycle()}, Clock: Clock{phase: b.Phase()}}
}

// ClockAt splits an edge into its day and time of day.
func ClockAt(edge Edge) ClockWithDay {
	d := SplitEdges(edge.Edges())
	return ClockWithDay{Day: d.Days.Day(), Clock: d.Clock}
}
