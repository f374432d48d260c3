package format

import (
	"strconv"
	"strings"

	"github.com/yvan-vivid/vivid-time/internal/mixedpoint"
)

// DefaultPhaseSeparator joins the digits of a phase.
const DefaultPhaseSeparator = " ∘ "

// PhaseFormatter writes a phase most significant digit first.
type PhaseFormatter struct {
	Separator string
	// Precision keeps only the most significant digits. Zero keeps all.
	Precision int
}

// Format renders phase.
func (f PhaseFormatter) Format(phase mixedpoint.Phase[int64]) string {
	var b strings.Builder
	f.write(&b, phase)
	return b.String()
}

func (f PhaseFormatter) write(b *strings.Builder, phase mixedpoint.Phase[int64]) {
	start := 0
	if f.Precision > 0 && f.Precision < len(phase) {
		start = len(phase) - f.Precision
	}
	for i := len(phase) - 1; i >= start; i-- {
		if i != len(phase)-1 {
			b.WriteString(f.Separator)
		}
		b.WriteString(strconv.FormatInt(phase[i].Out(), 10))
	}
}

// MixedPointFormatter writes the cycle count, then Separator, then the
// phase.
type MixedPointFormatter struct {
	Separator string
	Phase     PhaseFormatter
}

// Format renders p.
func (f MixedPointFormatter) Format(p mixedpoint.MixedPoint[int64, int64]) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(p.Cycle.Out(), 10))
	b.WriteString(f.Separator)
	f.Phase.write(&b, p.Phase)
	return b.String()
}

// FilterPointFormatter writes a filter point as its mixed point followed by
// Separator and the remainder.
type FilterPointFormatter struct {
	Separator string
	Point     MixedPointFormatter
}

// Format renders p.
func (f FilterPointFormatter) Format(p mixedpoint.FilterPoint[int64, int64]) string {
	return f.Point.Format(p.Point) + f.Separator + strconv.FormatInt(p.Remainder.Out(), 10)
}
