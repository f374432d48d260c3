package systemn

import "github.com/yvan-vivid/vivid-time/internal/numburs"

// 4 + 3 + 6 + 6 + 1 = 20 bits of edge per day.
const (
	EdgesPerDay     int64 = 16 * 8 * 64 * 64 * 2
	realEdgesPerDay       = float64(EdgesPerDay)
)

// Edges is a duration in edges.
type Edges struct {
	numburs.Integer[int64]
}

// RealEdges is a possibly fractional duration in edges.
type RealEdges struct {
	numburs.Real[float64]
}

// Days is a duration in days.
type Days struct {
	numburs.Integer[int64]
}

// RealDays is a possibly fractional duration in days.
type RealDays struct {
	numburs.Real[float64]
}

// Edge is an instant counted in edges since the epoch.
type Edge struct {
	numburs.Integer[int64]
}

// RealEdge is a possibly fractional edge since the epoch.
type RealEdge struct {
	numburs.Real[float64]
}

// Day is a day since the epoch.
type Day struct {
	numburs.Integer[int64]
}

// RealDay is a possibly fractional day since the epoch.
type RealDay struct {
	numburs.Real[float64]
}

// Year is a year since the epoch.
type Year struct {
	numburs.Integer[int64]
}

// YearDay is a day counted from the start of its year.
type YearDay struct {
	numburs.Natural[int64]
}

// EdgeFraction is the part of an edge below the whole edge.
type EdgeFraction struct {
	numburs.Fractional[float64]
}

// EdgeWithFraction is a real edge split into whole and fractional parts.
type EdgeWithFraction struct {
	Edge     Edge
	Fraction EdgeFraction
}

// NewEdge returns edge e.
func NewEdge(e int64) Edge {
	return Edge{numburs.NewInteger(e)}
}

// NewEdges returns a duration of e edges.
func NewEdges(e int64) Edges {
	return Edges{numburs.NewInteger(e)}
}

// NewDay returns day d.
func NewDay(d int64) Day {
	return Day{numburs.NewInteger(d)}
}

// NewRealDay returns the real day d.
func NewRealDay(d float64) RealDay {
	return RealDay{numburs.NewReal(d)}
}

// NewRealEdge returns the real edge e.
func NewRealEdge(e float64) RealEdge {
	return RealEdge{numburs.NewReal(e)}
}

// NewYear returns year y.
func NewYear(y int64) Year {
	return Year{numburs.NewInteger(y)}
}

// NewYearDay returns day d of a year, saturating negatives at zero.
func NewYearDay(d int64) YearDay {
	return YearDay{numburs.NaturalAtLeast(d)}
}

// Edges returns the duration from the epoch to e.
func (e Edge) Edges() Edges {
	return Edges(e)
}

// Days returns the duration from the epoch to d.
func (d Day) Days() Days {
	return Days(d)
}

// Days returns the duration from the start of the year to d.
func (d YearDay) Days() Days {
	return Days{d.Natural.Integer()}
}

// Day returns the day reached after d from the epoch.
func (d Days) Day() Day {
	return Day(d)
}

// Real widens d to RealDays.
func (d Days) Real() RealDays {
	return RealDays{numburs.NewReal(float64(d.Out()))}
}

// Edges converts d to edges.
func (d RealDays) Edges() RealEdges {
	return RealEdges{d.Scale(realEdgesPerDay)}
}

// Days returns the duration from the epoch to d.
func (d RealDay) Days() RealDays {
	return RealDays(d)
}

// Edge converts d to the matching real edge.
func (d RealDay) Edge() RealEdge {
	return RealEdge(d.Days().Edges())
}

// Split separates e into its floor and fraction.
func (e RealEdge) Split() EdgeWithFraction {
	split := numburs.Fractionalize[int64](e.Real)
	return EdgeWithFraction{Edge: Edge{split.Whole}, Fraction: EdgeFraction{split.Fraction}}
}
