package mixedpoint

import "github.com/yvan-vivid/vivid-time/internal/numburs"

// Representation moves values between a digit's phase type P and the
// type C used for aggregate totals.
//
// Project is only applied to values below an embedded size, so it never
// needs to narrow a value that does not fit P.
type Representation[P, C numburs.Int] interface {
	EmbedPositive(numburs.Positive[P]) numburs.Positive[C]
	Embed(numburs.Natural[P]) numburs.Natural[C]
	Project(numburs.Natural[C]) numburs.Natural[P]
}

// Identity is the representation where phases and totals share a type.
type Identity[N numburs.Int] struct{}

func (Identity[N]) EmbedPositive(u numburs.Positive[N]) numburs.Positive[N] {
	return u
}

func (Identity[N]) Embed(u numburs.Natural[N]) numburs.Natural[N] {
	return u
}

func (Identity[N]) Project(l numburs.Natural[N]) numburs.Natural[N] {
	return l
}

// Widening embeds a narrow phase type P into a wider total type C by
// conversion.
type Widening[P, C numburs.Int] struct{}

func (Widening[P, C]) EmbedPositive(u numburs.Positive[P]) numburs.Positive[C] {
	return numburs.ConvertPositive[P, C](u)
}

func (Widening[P, C]) Embed(u numburs.Natural[P]) numburs.Natural[C] {
	return numburs.ConvertNatural[P, C](u)
}

func (Widening[P, C]) Project(l numburs.Natural[C]) numburs.Natural[P] {
	return numburs.ConvertNatural[C, P](l)
}

// Period is a modulus over signed totals. Totals before the origin wind to
// negative cycle counts with a natural phase.
type Period[P, C numburs.Int] struct {
	size numburs.Positive[P]
	rep  Representation[P, C]
}

// NewPeriod returns a period of the given size. A nil rep converts between
// P and C directly.
func NewPeriod[P, C numburs.Int](size numburs.Positive[P], rep Representation[P, C]) Period[P, C] {
	return Period[P, C]{size: size, rep: rep}
}

// NewIdentityPeriod returns a period whose phases and totals share N.
func NewIdentityPeriod[N numburs.Int](size numburs.Positive[N]) Period[N, N] {
	return NewPeriod[N, N](size, Identity[N]{})
}

func (p Period[P, C]) representation() Representation[P, C] {
	if p.rep == nil {
		return Widening[P, C]{}
	}
	return p.rep
}

// Size returns the period length.
func (p Period[P, C]) Size() numburs.Positive[P] {
	return p.size
}

// IsNorm accepts phases below the size; any cycle count is normal.
func (p Period[P, C]) IsNorm(pt CyclePoint[P, numburs.Integer[C]]) bool {
	return pt.Phase.LessThan(p.size)
}

// WindInner divides total by the size, rounding the cycle toward negative
// infinity.
func (p Period[P, C]) WindInner(total numburs.Integer[C]) CyclePoint[P, numburs.Integer[C]] {
	rep := p.representation()
	cycle, phase := rep.EmbedPositive(p.size).Euclid(total)
	return NewCyclePoint[P](cycle, rep.Project(phase))
}

func (p Period[P, C]) Unwind(pt CyclePoint[P, numburs.Integer[C]]) numburs.Integer[C] {
	rep := p.representation()
	return pt.Cycle.MulPositive(rep.EmbedPositive(p.size)).AddNatural(rep.Embed(pt.Phase))
}

// Wind decomposes total into a bound point.
func (p Period[P, C]) Wind(total numburs.Integer[C]) BoundCyclePoint[P, numburs.Integer[C]] {
	return Wind[P, numburs.Integer[C]](p, total)
}

// Bind returns pt bound to p, or false when its phase is not below the
// size.
func (p Period[P, C]) Bind(pt CyclePoint[P, numburs.Integer[C]]) (BoundCyclePoint[P, numburs.Integer[C]], bool) {
	return Bind[P, numburs.Integer[C]](p, pt)
}

// Point binds the point (cycle, phase).
func (p Period[P, C]) Point(cycle numburs.Integer[C], phase numburs.Natural[P]) (BoundCyclePoint[P, numburs.Integer[C]], bool) {
	return p.Bind(NewCyclePoint[P](cycle, phase))
}

// WindFraction splits a real total into its floor, wound through p, and the
// fraction left over.
func WindFraction[P, C numburs.Int, F numburs.Float](p Period[P, C], r numburs.Real[F]) numburs.WithFraction[BoundCyclePoint[P, numburs.Integer[C]], F] {
	split := numburs.Fractionalize[C](r)
	return numburs.NewWithFraction(p.Wind(split.Whole), split.Fraction)
}
