package systemn

import (
	"github.com/yvan-vivid/vivid-time/internal/mixedpoint"
)

// Depth is a year written as an aeon count plus its hexade, octade and
// unade.
type Depth struct {
	point mixedpoint.BoundMixedPoint[int64, int64]
}

// DepthWithDay is a day split into its depth and its day of the year.
type DepthWithDay struct {
	Depth Depth
	Day   YearDay
}

// DepthOf returns the depth of year.
func DepthOf(year Year) Depth {
	return Depth{point: DepthYearsScheme().Wind(year.Integer)}
}

// DepthFromPoint validates a depth point.
func DepthFromPoint(p mixedpoint.MixedPoint[int64, int64]) (Depth, bool) {
	b, ok := DepthYearsScheme().Bind(p)
	if !ok {
		return Depth{}, false
	}
	return Depth{point: b}, true
}

// Point returns the aeon count and depth digits.
func (d Depth) Point() mixedpoint.MixedPoint[int64, int64] {
	return d.point.Point()
}

// Named labels the depth digits.
func (d Depth) Named() []mixedpoint.NamedPhase[int64] {
	named, _ := mixedpoint.NamePhase(DepthLegend.Phase, d.point.Point().Phase)
	return named
}

// Year returns the year d stands for.
func (d Depth) Year() Year {
	return Year{d.point.Unwind()}
}

// DepthOfDay splits day into the depth of its year and its day of the year.
func DepthOfDay(day Day) DepthWithDay {
	b := DepthDaysScheme().Wind(day.Integer)
	// Cycle counts of the filter line up with the digits of the year scheme.
	year := DepthYearsScheme().Unwind(b.Point().Point)
	return DepthWithDay{
		Depth: DepthOf(Year{year}),
		Day:   YearDay{b.Remainder()},
	}
}

// EpochDay returns the day d stands for.
func (d DepthWithDay) EpochDay() Day {
	p := d.Depth.Point()
	total := DepthDaysScheme().Unwind(mixedpoint.NewFilterPoint(p.Cycle, p.Phase, d.Day.Natural))
	return Day{total}
}
