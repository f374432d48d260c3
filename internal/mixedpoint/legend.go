package mixedpoint

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/yvan-vivid/vivid-time/internal/numburs"
)

// ErrLegendWidth is returned when a phase and a legend disagree on width.
var ErrLegendWidth = errors.New("phase width differs from legend width")

// PhaseLegend labels the digits of a phase, least significant first.
type PhaseLegend struct {
	names []string
}

// NewPhaseLegend returns a legend with the given labels in NFC form.
func NewPhaseLegend(names ...string) PhaseLegend {
	normalized := make([]string, len(names))
	for i, name := range names {
		normalized[i] = norm.NFC.String(name)
	}
	return PhaseLegend{names: normalized}
}

// Names returns the labels, least significant first.
func (l PhaseLegend) Names() []string {
	return append([]string(nil), l.names...)
}

// Width returns the number of labels.
func (l PhaseLegend) Width() int {
	return len(l.names)
}

// NamedPhase is one labelled digit.
type NamedPhase[P numburs.Int] struct {
	Name  string
	Value numburs.Natural[P]
}

// NamePhase pairs each digit of phase with its label, keeping the order of
// the phase.
func NamePhase[P numburs.Int](l PhaseLegend, phase Phase[P]) ([]NamedPhase[P], error) {
	if len(phase) != len(l.names) {
		return nil, fmt.Errorf("%w: phase %d, legend %d", ErrLegendWidth, len(phase), len(l.names))
	}
	named := make([]NamedPhase[P], len(phase))
	for i, v := range phase {
		named[i] = NamedPhase[P]{Name: l.names[i], Value: v}
	}
	return named, nil
}

// MixedPointLegend labels the outer cycle and the digits of a point.
type MixedPointLegend struct {
	Cycle string
	Phase PhaseLegend
}

// NewMixedPointLegend returns a legend with the cycle label in NFC form.
func NewMixedPointLegend(cycle string, phase ...string) MixedPointLegend {
	return MixedPointLegend{Cycle: norm.NFC.String(cycle), Phase: NewPhaseLegend(phase...)}
}
