package mixedpoint

import "github.com/yvan-vivid/vivid-time/internal/numburs"

// CyclePoint is a total decomposed by one cycle: Cycle whole cycles plus
// Phase. C is the count type of the cycle kind.
type CyclePoint[N numburs.Int, C any] struct {
	Cycle C
	Phase numburs.Natural[N]
}

// NewCyclePoint returns a CyclePoint from its parts.
func NewCyclePoint[N numburs.Int, C any](cycle C, phase numburs.Natural[N]) CyclePoint[N, C] {
	return CyclePoint[N, C]{Cycle: cycle, Phase: phase}
}

// Cycle is a single digit position.
//
// WindInner must be a left inverse of Unwind on every point it produces, and
// Unwind a right inverse of WindInner on every total of the kind's domain.
type Cycle[N numburs.Int, C any] interface {
	Size() numburs.Positive[N]
	IsNorm(p CyclePoint[N, C]) bool
	WindInner(total C) CyclePoint[N, C]
	Unwind(p CyclePoint[N, C]) C
}

// Factor is a cycle counting in naturals, usable as a digit of a mixed or
// filter scheme.
type Factor[N numburs.Int] interface {
	Cycle[N, numburs.Natural[N]]
}

// BoundCyclePoint is a CyclePoint validated against the scheme that holds it.
type BoundCyclePoint[N numburs.Int, C any] struct {
	scheme Cycle[N, C]
	point  CyclePoint[N, C]
}

// Scheme returns the cycle the point was validated against.
func (b BoundCyclePoint[N, C]) Scheme() Cycle[N, C] {
	return b.scheme
}

// Point returns the validated point.
func (b BoundCyclePoint[N, C]) Point() CyclePoint[N, C] {
	return b.point
}

// Wind decomposes total through c.
func Wind[N numburs.Int, C any](c Cycle[N, C], total C) BoundCyclePoint[N, C] {
	return BoundCyclePoint[N, C]{scheme: c, point: c.WindInner(total)}
}

// Bind validates p against c.
func Bind[N numburs.Int, C any](c Cycle[N, C], p CyclePoint[N, C]) (BoundCyclePoint[N, C], bool) {
	if !c.IsNorm(p) {
		return BoundCyclePoint[N, C]{}, false
	}
	return BoundCyclePoint[N, C]{scheme: c, point: p}, true
}

// Point validates the coordinates (cycle, phase) against c.
func Point[N numburs.Int, C any](c Cycle[N, C], cycle C, phase numburs.Natural[N]) (BoundCyclePoint[N, C], bool) {
	return Bind(c, NewCyclePoint[N](cycle, phase))
}
