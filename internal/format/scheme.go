package format

import (
	"github.com/yvan-vivid/vivid-time/internal/mixedpoint"
	"github.com/yvan-vivid/vivid-time/internal/numburs"
	"github.com/yvan-vivid/vivid-time/internal/scheme"
)

// PointFormatter writes points of declared schemes. Mixed points render as
// "cycle: phase"; filter points add " | remainder".
type PointFormatter struct {
	Mixed  MixedPointFormatter
	Filter FilterPointFormatter
}

// NewPointFormatter returns a PointFormatter joining digits with sep. An
// empty sep uses DefaultPhaseSeparator.
func NewPointFormatter(sep string) PointFormatter {
	if sep == "" {
		sep = DefaultPhaseSeparator
	}
	mixed := MixedPointFormatter{Separator: ": ", Phase: PhaseFormatter{Separator: sep}}
	return PointFormatter{
		Mixed:  mixed,
		Filter: FilterPointFormatter{Separator: " | ", Point: mixed},
	}
}

// Format renders p in the shape of s.
func (f PointFormatter) Format(s *scheme.Scheme, p scheme.Point) string {
	cycle := numburs.NewInteger(p.Cycle)
	phase := mixedpoint.NewPhase(p.Phase...)
	if s.Kind() == scheme.KindFilter {
		rem := numburs.NaturalAtLeast(p.Remainder)
		return f.Filter.Format(mixedpoint.NewFilterPoint(cycle, phase, rem))
	}
	return f.Mixed.Format(mixedpoint.NewMixedPoint(cycle, phase))
}

// PointDocument labels p with the legend of s, most significant digit first.
func PointDocument(s *scheme.Scheme, p scheme.Point) (Object, error) {
	named, err := s.Named(p)
	if err != nil {
		return nil, err
	}
	doc := Object{}.
		With("scheme", s.Name()).
		With(s.Legend().Cycle, p.Cycle).
		With("phase", namedPhase(named))
	if s.Kind() == scheme.KindFilter {
		doc = doc.With(s.RemainderName(), p.Remainder)
	}
	return doc, nil
}
