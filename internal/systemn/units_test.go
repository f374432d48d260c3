package systemn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgesPerDay(t *testing.T) {
	assert.Equal(t, int64(1<<20), EdgesPerDay)
	assert.Equal(t, EdgesPerDay, ClockScheme().Period().Size().Out())
}

func TestRealDayToEdge(t *testing.T) {
	assert.InDelta(t, 0.0, NewRealDay(0).Edge().Out(), 1e-9)
	assert.InDelta(t, 1048576.0, NewRealDay(1).Edge().Out(), 1e-9)
	assert.InDelta(t, -524288.0, NewRealDay(-0.5).Edge().Out(), 1e-9)
}

func TestRealEdgeSplit(t *testing.T) {
	split := NewRealEdge(141.25).Split()
	assert.Equal(t, int64(141), split.Edge.Out())
	assert.InDelta(t, 0.25, split.Fraction.Out(), 1e-12)

	split = NewRealEdge(-0.75).Split()
	assert.Equal(t, int64(-1), split.Edge.Out())
	assert.InDelta(t, 0.25, split.Fraction.Out(), 1e-12)
}

func TestUnitConversions(t *testing.T) {
	assert.Equal(t, int64(5), NewDay(5).Days().Out())
	assert.Equal(t, int64(5), NewDay(5).Days().Day().Out())
	assert.Equal(t, int64(12), NewYearDay(12).Days().Out())
	assert.Equal(t, int64(0), NewYearDay(-3).Out())
	assert.Equal(t, 3.0, NewDay(3).Days().Real().Out())
	assert.Equal(t, int64(7), NewEdge(7).Edges().Out())
}
