package mixedpoint

import (
	"errors"
	"fmt"

	"github.com/yvan-vivid/vivid-time/internal/numburs"
)

// ErrPeriodMismatch is returned when a period does not tile exactly into
// its factors.
var ErrPeriodMismatch = errors.New("period size differs from product of factor sizes")

// SimpleMixed is an outer Period followed by an ordered list of factors.
//
// The period size equals the product of the factor sizes, so every wound
// point is normal and every normal point unwinds to a distinct total.
type SimpleMixed[P, C numburs.Int] struct {
	period  Period[P, C]
	factors []Factor[P]
}

// NewSimpleMixed returns a scheme with an explicit period. The period size
// must equal the product of the factor sizes.
func NewSimpleMixed[P, C numburs.Int](period Period[P, C], factors ...Factor[P]) (*SimpleMixed[P, C], error) {
	if product := factorProduct(factors); product != period.Size() {
		return nil, fmt.Errorf("%w: period %d, product %d", ErrPeriodMismatch, period.Size().Out(), product.Out())
	}
	return &SimpleMixed[P, C]{period: period, factors: append([]Factor[P](nil), factors...)}, nil
}

// FromFactors returns a scheme whose period is the product of the factor
// sizes.
func FromFactors[P, C numburs.Int](rep Representation[P, C], factors ...Factor[P]) *SimpleMixed[P, C] {
	return &SimpleMixed[P, C]{
		period:  NewPeriod(factorProduct(factors), rep),
		factors: append([]Factor[P](nil), factors...),
	}
}

// FromSizes returns a scheme of SimpleCycle factors with the given sizes.
func FromSizes[P, C numburs.Int](rep Representation[P, C], sizes ...numburs.Positive[P]) *SimpleMixed[P, C] {
	factors := make([]Factor[P], len(sizes))
	for i, size := range sizes {
		factors[i] = NewSimpleCycle(size)
	}
	return FromFactors(rep, factors...)
}

func factorProduct[P numburs.Int](factors []Factor[P]) numburs.Positive[P] {
	product := numburs.OnePositive[P]()
	for _, f := range factors {
		product = product.Mul(f.Size())
	}
	return product
}

// Period returns the outer period.
func (m *SimpleMixed[P, C]) Period() Period[P, C] {
	return m.period
}

// Factors returns the factors, least significant first.
func (m *SimpleMixed[P, C]) Factors() []Factor[P] {
	return append([]Factor[P](nil), m.factors...)
}

// Width returns the number of digits.
func (m *SimpleMixed[P, C]) Width() int {
	return len(m.factors)
}

func (m *SimpleMixed[P, C]) IsNorm(p MixedPoint[P, C]) bool {
	if len(p.Phase) != len(m.factors) {
		return false
	}
	for k, f := range m.factors {
		if !p.Phase[k].LessThan(f.Size()) {
			return false
		}
	}
	return true
}

func (m *SimpleMixed[P, C]) WindInner(total numburs.Integer[C]) MixedPoint[P, C] {
	outer := m.period.WindInner(total)
	phase := outer.Phase
	phases := make(Phase[P], len(m.factors))
	for k, f := range m.factors {
		pt := f.WindInner(phase)
		phases[k] = pt.Phase
		phase = pt.Cycle
	}
	return NewMixedPoint(outer.Cycle, phases)
}

func (m *SimpleMixed[P, C]) Unwind(p MixedPoint[P, C]) numburs.Integer[C] {
	rep := m.period.representation()
	total := p.Cycle
	for k := len(m.factors) - 1; k >= 0; k-- {
		digit := NewPeriod(m.factors[k].Size(), rep)
		total = digit.Unwind(NewCyclePoint[P](total, p.Phase.at(k)))
	}
	return total
}

func (m *SimpleMixed[P, C]) Wind(total numburs.Integer[C]) BoundMixedPoint[P, C] {
	return WindMixed[P, C](m, total)
}

func (m *SimpleMixed[P, C]) Bind(p MixedPoint[P, C]) (BoundMixedPoint[P, C], bool) {
	return BindMixed[P, C](m, p)
}

func (m *SimpleMixed[P, C]) Point(cycle numburs.Integer[C], phase Phase[P]) (BoundMixedPoint[P, C], bool) {
	return m.Bind(NewMixedPoint(cycle, phase))
}
