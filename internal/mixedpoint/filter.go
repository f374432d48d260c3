package mixedpoint

import (
	"slices"

	"github.com/yvan-vivid/vivid-time/internal/numburs"
)

// FilterPoint is a MixedPoint plus whatever is left of the in-period offset
// once every factor has taken its cycle count.
//
// Point.Phase[0] is the count of the innermost factor, the reverse of the
// order the factors are wound in.
type FilterPoint[P, C numburs.Int] struct {
	Point     MixedPoint[P, C]
	Remainder numburs.Natural[P]
}

// NewFilterPoint returns a FilterPoint from its parts.
func NewFilterPoint[P, C numburs.Int](cycle numburs.Integer[C], phase Phase[P], remainder numburs.Natural[P]) FilterPoint[P, C] {
	return FilterPoint[P, C]{Point: NewMixedPoint(cycle, phase), Remainder: remainder}
}

func (p FilterPoint[P, C]) clone() FilterPoint[P, C] {
	return FilterPoint[P, C]{Point: p.Point.clone(), Remainder: p.Remainder}
}

// Filter is a scheme that peels successive cycle counts off a total and
// keeps the rest as a remainder.
type Filter[P, C numburs.Int] interface {
	Width() int
	IsNorm(p FilterPoint[P, C]) bool
	WindInner(total numburs.Integer[C]) FilterPoint[P, C]
	Unwind(p FilterPoint[P, C]) numburs.Integer[C]
}

// BoundFilterPoint is a FilterPoint validated against its scheme.
type BoundFilterPoint[P, C numburs.Int] struct {
	scheme Filter[P, C]
	point  FilterPoint[P, C]
}

// Scheme returns the scheme the point was validated against.
func (b BoundFilterPoint[P, C]) Scheme() Filter[P, C] {
	return b.scheme
}

// Point returns a copy of the validated point.
func (b BoundFilterPoint[P, C]) Point() FilterPoint[P, C] {
	return b.point.clone()
}

// Cycle returns the outer cycle count.
func (b BoundFilterPoint[P, C]) Cycle() numburs.Integer[C] {
	return b.point.Point.Cycle
}

// Phase returns a copy of the cycle counts, innermost factor first.
func (b BoundFilterPoint[P, C]) Phase() Phase[P] {
	return slices.Clone(b.point.Point.Phase)
}

// Remainder returns what the innermost factor left over.
func (b BoundFilterPoint[P, C]) Remainder() numburs.Natural[P] {
	return b.point.Remainder
}

// Unwind recomposes the total.
func (b BoundFilterPoint[P, C]) Unwind() numburs.Integer[C] {
	return b.scheme.Unwind(b.point)
}

// WindFilter decomposes total through f.
func WindFilter[P, C numburs.Int](f Filter[P, C], total numburs.Integer[C]) BoundFilterPoint[P, C] {
	return BoundFilterPoint[P, C]{scheme: f, point: f.WindInner(total)}
}

// BindFilter validates p against f.
func BindFilter[P, C numburs.Int](f Filter[P, C], p FilterPoint[P, C]) (BoundFilterPoint[P, C], bool) {
	if !f.IsNorm(p) {
		return BoundFilterPoint[P, C]{}, false
	}
	return BoundFilterPoint[P, C]{scheme: f, point: p.clone()}, true
}
