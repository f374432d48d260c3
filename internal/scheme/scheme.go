package scheme

import (
	"errors"
	"fmt"
	"slices"

	"github.com/yvan-vivid/vivid-time/internal/mixedpoint"
	"github.com/yvan-vivid/vivid-time/internal/numburs"
)

// Kind selects how the factors of a scheme are combined.
type Kind string

const (
	// KindMixed produces one digit per factor, least significant first.
	KindMixed Kind = "mixed"
	// KindFilter produces one cycle count per factor plus a remainder.
	KindFilter Kind = "filter"
)

const defaultRemainder = "remainder"

var (
	// ErrInvalidPoint is returned when a point is not normal for its scheme.
	ErrInvalidPoint = errors.New("point is not valid for scheme")

	// ErrUnknownKind is returned for a kind other than mixed or filter.
	ErrUnknownKind = errors.New("unknown scheme kind")
)

// FactorDecl declares one factor of a scheme.
type FactorDecl struct {
	Name  string
	Size  int64
	Limit int64 // zero means no limit
}

// Declaration is a scheme as written by the user.
type Declaration struct {
	Name      string
	Kind      Kind
	Cycle     string
	Remainder string
	Period    int64 // zero derives the period from the factors
	Factors   []FactorDecl
}

// Point is a wound total in plain integers. Phase follows the scheme's own
// digit order; Remainder is only used by filter schemes.
type Point struct {
	Cycle     int64   `json:"cycle" yaml:"cycle"`
	Phase     []int64 `json:"phase" yaml:"phase"`
	Remainder int64   `json:"remainder,omitempty" yaml:"remainder,omitempty"`
}

// Scheme is a compiled declaration. It is immutable and safe for concurrent
// use.
type Scheme struct {
	decl   Declaration
	legend mixedpoint.MixedPointLegend
	mixed  *mixedpoint.SimpleMixed[int64, int64]
	filter *mixedpoint.SimpleFilter[int64, int64]
}

// Build constructs a Scheme from a declaration.
func Build(decl Declaration) (*Scheme, error) {
	if len(decl.Factors) == 0 {
		return nil, fmt.Errorf("scheme %q: at least one factor is required", decl.Name)
	}
	if decl.Kind == "" {
		decl.Kind = KindMixed
	}
	if decl.Cycle == "" {
		decl.Cycle = "cycle"
	}
	decl.Factors = slices.Clone(decl.Factors)

	factors := make([]mixedpoint.Factor[int64], len(decl.Factors))
	names := make([]string, len(decl.Factors))
	for i, f := range decl.Factors {
		size, err := numburs.NewPositive(f.Size)
		if err != nil {
			return nil, fmt.Errorf("scheme %q: factor %q: %w", decl.Name, f.Name, err)
		}
		names[i] = f.Name
		if f.Limit == 0 {
			factors[i] = mixedpoint.NewSimpleCycle(size)
			continue
		}
		limit, err := numburs.NewPositive(f.Limit)
		if err != nil {
			return nil, fmt.Errorf("scheme %q: factor %q limit: %w", decl.Name, f.Name, err)
		}
		factors[i] = mixedpoint.NewLimitedCycle(size, limit)
	}

	s := &Scheme{decl: decl}
	switch decl.Kind {
	case KindMixed:
		s.legend = mixedpoint.NewMixedPointLegend(decl.Cycle, names...)
		if decl.Period == 0 {
			s.mixed = mixedpoint.FromFactors[int64, int64](mixedpoint.Identity[int64]{}, factors...)
			break
		}
		period, err := numburs.NewPositive(decl.Period)
		if err != nil {
			return nil, fmt.Errorf("scheme %q: period: %w", decl.Name, err)
		}
		m, err := mixedpoint.NewSimpleMixed(mixedpoint.NewIdentityPeriod(period), factors...)
		if err != nil {
			return nil, fmt.Errorf("scheme %q: %w", decl.Name, err)
		}
		s.mixed = m
	case KindFilter:
		if s.decl.Remainder == "" {
			s.decl.Remainder = defaultRemainder
		}
		period, err := numburs.NewPositive(decl.Period)
		if err != nil {
			return nil, fmt.Errorf("scheme %q: period: %w", decl.Name, err)
		}
		// Filter points hold the innermost count first.
		slices.Reverse(names)
		s.legend = mixedpoint.NewMixedPointLegend(decl.Cycle, names...)
		s.filter = mixedpoint.NewSimpleFilter(mixedpoint.NewIdentityPeriod(period), factors...)
	default:
		return nil, fmt.Errorf("scheme %q: %w: %q", decl.Name, ErrUnknownKind, decl.Kind)
	}
	return s, nil
}

// Name returns the declared name.
func (s *Scheme) Name() string {
	return s.decl.Name
}

// Kind returns the scheme kind.
func (s *Scheme) Kind() Kind {
	return s.decl.Kind
}

// Declaration returns a copy of the declaration s was built from.
func (s *Scheme) Declaration() Declaration {
	d := s.decl
	d.Factors = slices.Clone(d.Factors)
	return d
}

// Legend labels the outer cycle and the digits in point order.
func (s *Scheme) Legend() mixedpoint.MixedPointLegend {
	return s.legend
}

// RemainderName labels the remainder of a filter point, or is empty.
func (s *Scheme) RemainderName() string {
	return s.decl.Remainder
}

// Period returns the size of the outer period.
func (s *Scheme) Period() int64 {
	if s.filter != nil {
		return s.filter.Period().Size().Out()
	}
	return s.mixed.Period().Size().Out()
}

// Width returns the number of digits in a point.
func (s *Scheme) Width() int {
	return len(s.decl.Factors)
}

// Wind decomposes total.
func (s *Scheme) Wind(total int64) Point {
	t := numburs.NewInteger(total)
	if s.filter != nil {
		p := s.filter.Wind(t)
		return Point{Cycle: p.Cycle().Out(), Phase: p.Phase().Out(), Remainder: p.Remainder().Out()}
	}
	p := s.mixed.Wind(t)
	return Point{Cycle: p.Cycle().Out(), Phase: p.Phase().Phase().Out()}
}

// Bind reports whether p is normal for s.
func (s *Scheme) Bind(p Point) bool {
	_, ok := s.bind(p)
	return ok
}

// Unwind recomposes the total of p, failing with ErrInvalidPoint when p is
// not normal for s.
func (s *Scheme) Unwind(p Point) (int64, error) {
	total, ok := s.bind(p)
	if !ok {
		return 0, fmt.Errorf("%w: %s: cycle %d phase %v remainder %d",
			ErrInvalidPoint, s.decl.Name, p.Cycle, p.Phase, p.Remainder)
	}
	return total, nil
}

func (s *Scheme) bind(p Point) (int64, bool) {
	if slices.ContainsFunc(p.Phase, func(d int64) bool { return d < 0 }) || p.Remainder < 0 {
		return 0, false
	}
	cycle := numburs.NewInteger(p.Cycle)
	phase := mixedpoint.NewPhase(p.Phase...)
	if s.filter != nil {
		b, ok := s.filter.Point(cycle, phase, numburs.NaturalAtLeast(p.Remainder))
		if !ok {
			return 0, false
		}
		return b.Unwind().Out(), true
	}
	if p.Remainder != 0 {
		return 0, false
	}
	b, ok := s.mixed.Point(cycle, phase)
	if !ok {
		return 0, false
	}
	return b.Unwind().Out(), true
}

// Named labels the digits of p in point order.
func (s *Scheme) Named(p Point) ([]mixedpoint.NamedPhase[int64], error) {
	return mixedpoint.NamePhase(s.legend.Phase, mixedpoint.NewPhase(p.Phase...))
}
