package mixedpoint

import (
	"slices"

	"github.com/yvan-vivid/vivid-time/internal/numburs"
)

// Phase holds the digits of a point, one per factor.
type Phase[P numburs.Int] []numburs.Natural[P]

// NewPhase builds a Phase from raw digits, saturating negatives at zero.
func NewPhase[P numburs.Int](digits ...P) Phase[P] {
	phase := make(Phase[P], len(digits))
	for i, d := range digits {
		phase[i] = numburs.NaturalAtLeast(d)
	}
	return phase
}

// Out returns the raw digits.
func (p Phase[P]) Out() []P {
	out := make([]P, len(p))
	for i, d := range p {
		out[i] = d.Out()
	}
	return out
}

// at returns digit k, or zero past the end.
func (p Phase[P]) at(k int) numburs.Natural[P] {
	if k < len(p) {
		return p[k]
	}
	return numburs.ZeroNatural[P]()
}

// MixedPoint is a total decomposed across several digit positions plus an
// outer cycle count.
type MixedPoint[P, C numburs.Int] struct {
	Cycle numburs.Integer[C]
	Phase Phase[P]
}

// NewMixedPoint returns a MixedPoint from its parts.
func NewMixedPoint[P, C numburs.Int](cycle numburs.Integer[C], phase Phase[P]) MixedPoint[P, C] {
	return MixedPoint[P, C]{Cycle: cycle, Phase: phase}
}

func (p MixedPoint[P, C]) clone() MixedPoint[P, C] {
	return MixedPoint[P, C]{Cycle: p.Cycle, Phase: slices.Clone(p.Phase)}
}

// Mixed is a mixed-radix scheme with a fixed number of digits.
type Mixed[P, C numburs.Int] interface {
	Width() int
	IsNorm(p MixedPoint[P, C]) bool
	WindInner(total numburs.Integer[C]) MixedPoint[P, C]
	Unwind(p MixedPoint[P, C]) numburs.Integer[C]
}

// BoundMixedPoint is a MixedPoint validated against its scheme.
type BoundMixedPoint[P, C numburs.Int] struct {
	scheme Mixed[P, C]
	point  MixedPoint[P, C]
}

// BoundMixedPhase is the digit part of a BoundMixedPoint, without the outer
// cycle count.
type BoundMixedPhase[P, C numburs.Int] struct {
	scheme Mixed[P, C]
	phase  Phase[P]
}

// Scheme returns the scheme the point was validated against.
func (b BoundMixedPoint[P, C]) Scheme() Mixed[P, C] {
	return b.scheme
}

// Point returns a copy of the validated point.
func (b BoundMixedPoint[P, C]) Point() MixedPoint[P, C] {
	return b.point.clone()
}

// Cycle returns the outer cycle count.
func (b BoundMixedPoint[P, C]) Cycle() numburs.Integer[C] {
	return b.point.Cycle
}

// Phase drops the outer cycle count.
func (b BoundMixedPoint[P, C]) Phase() BoundMixedPhase[P, C] {
	return BoundMixedPhase[P, C]{scheme: b.scheme, phase: slices.Clone(b.point.Phase)}
}

// Unwind recomposes the total.
func (b BoundMixedPoint[P, C]) Unwind() numburs.Integer[C] {
	return b.scheme.Unwind(b.point)
}

// Scheme returns the scheme the phase was validated against.
func (b BoundMixedPhase[P, C]) Scheme() Mixed[P, C] {
	return b.scheme
}

// Phase returns a copy of the digits.
func (b BoundMixedPhase[P, C]) Phase() Phase[P] {
	return slices.Clone(b.phase)
}

// WindMixed decomposes total through m.
func WindMixed[P, C numburs.Int](m Mixed[P, C], total numburs.Integer[C]) BoundMixedPoint[P, C] {
	return BoundMixedPoint[P, C]{scheme: m, point: m.WindInner(total)}
}

// BindMixed validates p against m. The bound point keeps its own copy of
// the digits.
func BindMixed[P, C numburs.Int](m Mixed[P, C], p MixedPoint[P, C]) (BoundMixedPoint[P, C], bool) {
	if !m.IsNorm(p) {
		return BoundMixedPoint[P, C]{}, false
	}
	return BoundMixedPoint[P, C]{scheme: m, point: p.clone()}, true
}
