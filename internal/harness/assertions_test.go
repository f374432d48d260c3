package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yvan-vivid/vivid-time/internal/scheme"
)

func loadSmall(t *testing.T, name string) *scheme.Scheme {
	t.Helper()
	s, err := loadScheme([]string{"testdata/schemes/small.cue"}, name)
	require.NoError(t, err)
	return s
}

func TestAssertRoundTrip(t *testing.T) {
	assert.NoError(t, assertRoundTrip(loadSmall(t, "pair"), -30, 30))
	assert.NoError(t, assertRoundTrip(loadSmall(t, "limited"), -150, 150))
}

func TestAssertMonotone(t *testing.T) {
	assert.NoError(t, assertMonotone(loadSmall(t, "pair"), -30, 30))
	assert.NoError(t, assertMonotone(loadSmall(t, "limited"), -150, 150))
}

func TestAssertRejects(t *testing.T) {
	s := loadSmall(t, "pair")
	assert.NoError(t, assertRejects(s, []scheme.Point{{Phase: []int64{2, 0}}}))

	err := assertRejects(s, []scheme.Point{{Phase: []int64{1, 2}}})
	var assertErr *AssertionError
	require.ErrorAs(t, err, &assertErr)
	assert.Equal(t, AssertRejects, assertErr.Type)
	assert.Equal(t, "bound", assertErr.Actual)
}

func TestEachTotalStopsAtMax(t *testing.T) {
	const maxInt = int64(^uint64(0) >> 1)
	var seen []int64
	err := eachTotal(maxInt-2, maxInt, func(v int64) error {
		seen = append(seen, v)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{maxInt - 2, maxInt - 1, maxInt}, seen)
}

func TestOrderKey(t *testing.T) {
	pair := loadSmall(t, "pair")
	assert.Equal(t, []int64{1, 2, 1}, orderKey(pair, scheme.Point{Cycle: 1, Phase: []int64{1, 2}}))

	limited := loadSmall(t, "limited")
	assert.Equal(t, []int64{0, 3, 2, 13}, orderKey(limited, limited.Wind(49)))
}

func TestAssertionError(t *testing.T) {
	err := &AssertionError{Type: AssertMonotone, Expected: "a", Actual: "b"}
	assert.Equal(t, "assertion failed: monotone\n  Expected: a\n  Actual: b", err.Error())
}
