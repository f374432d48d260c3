package systemn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yvan-vivid/vivid-time/internal/mixedpoint"
)

func TestSplitEdges(t *testing.T) {
	tests := []struct {
		edges int64
		days  int64
		phase []int64
	}{
		{0, 0, []int64{0, 0, 0, 0, 0}},
		{1, 0, []int64{1, 0, 0, 0, 0}},
		{141, 0, []int64{1, 6, 1, 0, 0}},
		{EdgesPerDay - 1, 0, []int64{1, 63, 63, 7, 15}},
		{EdgesPerDay, 1, []int64{0, 0, 0, 0, 0}},
		{-1, -1, []int64{1, 63, 63, 7, 15}},
	}
	for _, tt := range tests {
		d := SplitEdges(NewEdges(tt.edges))
		assert.Equal(t, tt.days, d.Days.Out(), "edges=%d", tt.edges)
		assert.Equal(t, tt.phase, d.Clock.Phase().Out(), "edges=%d", tt.edges)
		want, ok := ClockFromPhase(mixedpoint.NewPhase(tt.phase...))
		require.True(t, ok)
		assert.Equal(t, want, d.Clock)
	}
}

func TestClockFromPhase(t *testing.T) {
	_, ok := ClockFromPhase(mixedpoint.NewPhase[int64](2, 0, 0, 0, 0))
	assert.False(t, ok)
	_, ok = ClockFromPhase(mixedpoint.NewPhase[int64](0, 0, 0, 0))
	assert.False(t, ok)

	c, ok := ClockFromPhase(mixedpoint.NewPhase[int64](1, 6, 1, 0, 0))
	require.True(t, ok)
	assert.Equal(t, int64(141), c.Edges().Out())

	named := c.Named()
	require.Len(t, named, 5)
	assert.Equal(t, "event", named[1].Name)
	assert.Equal(t, int64(6), named[1].Value.Out())
}

func TestClockAt(t *testing.T) {
	cd := ClockAt(NewEdge(3*EdgesPerDay + 141))
	assert.Equal(t, int64(3), cd.Day.Out())
	assert.Equal(t, []int64{1, 6, 1, 0, 0}, cd.Clock.Phase().Out())
}
