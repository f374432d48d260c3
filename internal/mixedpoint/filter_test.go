package mixedpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type filterCase struct {
	total     int64
	cycle     int64
	phase     []int64
	remainder int64
}

func simpleFilter() *SimpleFilter[int64, int64] {
	return NewSimpleFilter[int64, int64](NewIdentityPeriod(pos(12)), NewSimpleCycle(pos(6)), NewSimpleCycle(pos(2)))
}

func limitedFilter() *SimpleFilter[int64, int64] {
	return NewSimpleFilter[int64, int64](NewIdentityPeriod(pos(50)), NewLimitedCycle(pos(10), pos(3)), NewLimitedCycle(pos(3), pos(2)))
}

func assertFilterCases(t *testing.T, f *SimpleFilter[int64, int64], tests []filterCase) {
	t.Helper()
	for _, tt := range tests {
		b := f.Wind(integer(tt.total))
		assert.Equal(t, tt.cycle, b.Cycle().Out(), "total=%d", tt.total)
		assert.Equal(t, tt.phase, b.Phase().Out(), "total=%d", tt.total)
		assert.Equal(t, tt.remainder, b.Remainder().Out(), "total=%d", tt.total)
		assert.Equal(t, tt.total, b.Unwind().Out(), "total=%d", tt.total)
	}
}

func TestSimpleFilterWind(t *testing.T) {
	assertFilterCases(t, simpleFilter(), []filterCase{
		{0, 0, []int64{0, 0}, 0},
		{1, 0, []int64{0, 0}, 1},
		{2, 0, []int64{1, 0}, 0},
		{3, 0, []int64{1, 0}, 1},
		{4, 0, []int64{2, 0}, 0},
		{5, 0, []int64{2, 0}, 1},
		{6, 0, []int64{0, 1}, 0},
		{7, 0, []int64{0, 1}, 1},
		{43, 3, []int64{0, 1}, 1},
		{45, 3, []int64{1, 1}, 1},
		{-1, -1, []int64{2, 1}, 1},
	})
}

func TestLimitedFilterWind(t *testing.T) {
	assertFilterCases(t, limitedFilter(), []filterCase{
		{0, 0, []int64{0, 0}, 0},
		{1, 0, []int64{0, 0}, 1},
		{8, 0, []int64{2, 0}, 2},
		{9, 0, []int64{2, 0}, 3},
		{10, 0, []int64{0, 1}, 0},
		{25, 0, []int64{1, 2}, 2},
		{29, 0, []int64{2, 2}, 3},
		{49, 0, []int64{2, 3}, 13},
		{50, 1, []int64{0, 0}, 0},
		{-1, -1, []int64{2, 3}, 13},
		{-13, -1, []int64{2, 3}, 1},
		{-14, -1, []int64{2, 3}, 0},
		{-15, -1, []int64{1, 3}, 2},
	})
}

func TestFilterRoundTrip(t *testing.T) {
	for _, f := range []*SimpleFilter[int64, int64]{simpleFilter(), limitedFilter()} {
		for k := int64(-200); k <= 200; k++ {
			pt := f.WindInner(integer(k))
			require.True(t, f.IsNorm(pt), "k=%d", k)
			assert.Equal(t, k, f.Unwind(pt).Out(), "k=%d", k)
		}
	}
}

func TestFilterBind(t *testing.T) {
	f := simpleFilter()

	b, ok := f.Point(integer(3), NewPhase[int64](1, 1), nat(1))
	require.True(t, ok)
	assert.Equal(t, int64(45), b.Unwind().Out())

	_, ok = f.Point(integer(0), NewPhase[int64](0, 0), nat(2))
	assert.False(t, ok, "remainder not below the innermost size")

	_, ok = f.Point(integer(0), NewPhase[int64](0, 2), nat(0))
	assert.False(t, ok, "outer count not below the outer size")

	_, ok = f.Point(integer(0), NewPhase[int64](0), nat(0))
	assert.False(t, ok, "short phase")

	l := limitedFilter()
	_, ok = l.Point(integer(0), NewPhase[int64](2, 3), nat(13))
	assert.True(t, ok)

	_, ok = l.Point(integer(0), NewPhase[int64](2, 3), nat(14))
	assert.False(t, ok, "offset reaches the period")
}

func TestBoundFilterPointIsolated(t *testing.T) {
	f := simpleFilter()
	b := f.Wind(integer(45))
	got := b.Point()
	got.Point.Phase[0] = nat(5)
	assert.Equal(t, []int64{1, 1}, b.Phase().Out())
	assert.Equal(t, 2, f.Width())
}
