package mixedpoint

import "github.com/yvan-vivid/vivid-time/internal/numburs"

// SimpleFilter reduces a total by an outer Period and then winds the
// in-period offset through each factor in turn, outermost first.
//
// The factors need not tile the period. Limited factors let the last cycle
// of each level run long, which is how leap days are absorbed.
type SimpleFilter[P, C numburs.Int] struct {
	period  Period[P, C]
	factors []Factor[P]
}

// NewSimpleFilter returns a filter over period with the given factors,
// outermost first.
func NewSimpleFilter[P, C numburs.Int](period Period[P, C], factors ...Factor[P]) *SimpleFilter[P, C] {
	return &SimpleFilter[P, C]{period: period, factors: append([]Factor[P](nil), factors...)}
}

// Period returns the outer period.
func (f *SimpleFilter[P, C]) Period() Period[P, C] {
	return f.period
}

// Factors returns the factors, outermost first.
func (f *SimpleFilter[P, C]) Factors() []Factor[P] {
	return append([]Factor[P](nil), f.factors...)
}

// Width returns the number of cycle counts in a point.
func (f *SimpleFilter[P, C]) Width() int {
	return len(f.factors)
}

// offset rebuilds the in-period offset of p, innermost factor first,
// reporting false as soon as a level is not normal.
func (f *SimpleFilter[P, C]) offset(p FilterPoint[P, C]) (numburs.Natural[P], bool) {
	n := len(f.factors)
	if len(p.Point.Phase) != n {
		return numburs.Natural[P]{}, false
	}
	carried := p.Remainder
	for k := n - 1; k >= 0; k-- {
		pt := NewCyclePoint[P](p.Point.Phase[n-1-k], carried)
		if !f.factors[k].IsNorm(pt) {
			return numburs.Natural[P]{}, false
		}
		carried = f.factors[k].Unwind(pt)
	}
	return carried, true
}

func (f *SimpleFilter[P, C]) IsNorm(p FilterPoint[P, C]) bool {
	offset, ok := f.offset(p)
	return ok && offset.LessThan(f.period.Size())
}

func (f *SimpleFilter[P, C]) WindInner(total numburs.Integer[C]) FilterPoint[P, C] {
	outer := f.period.WindInner(total)
	n := len(f.factors)
	phase := outer.Phase
	phases := make(Phase[P], n)
	for k, factor := range f.factors {
		pt := factor.WindInner(phase)
		phases[n-1-k] = pt.Cycle
		phase = pt.Phase
	}
	return NewFilterPoint(outer.Cycle, phases, phase)
}

func (f *SimpleFilter[P, C]) Unwind(p FilterPoint[P, C]) numburs.Integer[C] {
	n := len(f.factors)
	carried := p.Remainder
	for k := n - 1; k >= 0; k-- {
		carried = f.factors[k].Unwind(NewCyclePoint[P](p.Point.Phase.at(n-1-k), carried))
	}
	return f.period.Unwind(NewCyclePoint[P](p.Point.Cycle, carried))
}

func (f *SimpleFilter[P, C]) Wind(total numburs.Integer[C]) BoundFilterPoint[P, C] {
	return WindFilter[P, C](f, total)
}

func (f *SimpleFilter[P, C]) Bind(p FilterPoint[P, C]) (BoundFilterPoint[P, C], bool) {
	return BindFilter[P, C](f, p)
}

func (f *SimpleFilter[P, C]) Point(cycle numburs.Integer[C], phase Phase[P], remainder numburs.Natural[P]) (BoundFilterPoint[P, C], bool) {
	return f.Bind(NewFilterPoint(cycle, phase, remainder))
}
