package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hmsSource = `
scheme: hms: {
	cycle: "day"
	factors: [
		{name: "second", size: 60},
		{name: "minute", size: 60},
		{name: "hour", size: 24},
	]
}
`

func mustCatalog(t *testing.T, src string) *Catalog {
	t.Helper()
	c, err := CompileString(src)
	require.NoError(t, err)
	return c
}

func TestMixedScheme(t *testing.T) {
	s, err := mustCatalog(t, hmsSource).Lookup("hms")
	require.NoError(t, err)

	assert.Equal(t, "hms", s.Name())
	assert.Equal(t, KindMixed, s.Kind())
	assert.Equal(t, int64(86400), s.Period())
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, "day", s.Legend().Cycle)

	p := s.Wind(3661)
	assert.Equal(t, Point{Cycle: 0, Phase: []int64{1, 1, 1}}, p)

	p = s.Wind(-1)
	assert.Equal(t, Point{Cycle: -1, Phase: []int64{59, 59, 23}}, p)

	total, err := s.Unwind(p)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), total)

	named, err := s.Named(Point{Phase: []int64{5, 4, 3}})
	require.NoError(t, err)
	assert.Equal(t, "hour", named[2].Name)
	assert.Equal(t, int64(3), named[2].Value.Out())
}

func TestMixedSchemeBind(t *testing.T) {
	s, err := mustCatalog(t, hmsSource).Lookup("hms")
	require.NoError(t, err)

	assert.True(t, s.Bind(Point{Phase: []int64{59, 59, 23}}))
	assert.False(t, s.Bind(Point{Phase: []int64{60, 0, 0}}))
	assert.False(t, s.Bind(Point{Phase: []int64{0, 0}}))
	assert.False(t, s.Bind(Point{Phase: []int64{-1, 0, 0}}))
	assert.False(t, s.Bind(Point{Phase: []int64{0, 0, 0}, Remainder: 1}))

	_, err = s.Unwind(Point{Phase: []int64{0, 60, 0}})
	assert.ErrorIs(t, err, ErrInvalidPoint)
}

func TestFilterScheme(t *testing.T) {
	c, err := LoadFile("testdata/schemes/small.cue")
	require.NoError(t, err)
	s, err := c.Lookup("limited")
	require.NoError(t, err)

	assert.Equal(t, KindFilter, s.Kind())
	assert.Equal(t, "remainder", s.RemainderName())
	assert.Equal(t, []string{"inner", "outer"}, s.Legend().Phase.Names())

	tests := []struct {
		total int64
		want  Point
	}{
		{49, Point{Cycle: 0, Phase: []int64{2, 3}, Remainder: 13}},
		{50, Point{Cycle: 1, Phase: []int64{0, 0}, Remainder: 0}},
		{-1, Point{Cycle: -1, Phase: []int64{2, 3}, Remainder: 13}},
	}
	for _, tt := range tests {
		got := s.Wind(tt.total)
		assert.Equal(t, tt.want, got, "total=%d", tt.total)
		total, err := s.Unwind(got)
		require.NoError(t, err)
		assert.Equal(t, tt.total, total)
	}

	assert.False(t, s.Bind(Point{Phase: []int64{2, 3}, Remainder: 14}))
	assert.False(t, s.Bind(Point{Phase: []int64{2, 3}, Remainder: -1}))
}

func TestLoadDir(t *testing.T) {
	c, err := LoadDir("testdata/schemes")
	require.NoError(t, err)
	assert.Equal(t, []string{"calendar", "clock", "depth_days", "depth_years", "limited", "pair"}, c.Names())
	assert.Equal(t, 6, c.Len())

	days, err := c.Lookup("depth_days")
	require.NoError(t, err)
	assert.Equal(t, Point{Cycle: -1, Phase: []int64{7, 1, 15}, Remainder: 364}, days.Wind(-1))
	assert.Equal(t, "day", days.RemainderName())

	calendar, err := c.Lookup("calendar")
	require.NoError(t, err)
	assert.Equal(t, Point{Phase: []int64{7, 2, 2, 4}}, calendar.Wind(359))

	_, err = c.Lookup("missing")
	assert.ErrorIs(t, err, ErrSchemeNotFound)
}

func TestLoad(t *testing.T) {
	c, err := Load("testdata/schemes/small.cue")
	require.NoError(t, err)
	assert.Equal(t, []string{"limited", "pair"}, c.Names())

	c, err = Load("testdata/schemes")
	require.NoError(t, err)
	assert.Equal(t, 6, c.Len())

	_, err = Load("testdata/none")
	assert.Error(t, err)
}

func TestCatalogMerge(t *testing.T) {
	c, err := Load("testdata/schemes/small.cue")
	require.NoError(t, err)
	require.NoError(t, c.Merge(mustCatalog(t, hmsSource)))
	assert.Equal(t, []string{"hms", "limited", "pair"}, c.Names())

	assert.Error(t, c.Merge(mustCatalog(t, hmsSource)))
}

func TestBuild(t *testing.T) {
	s, err := Build(Declaration{
		Name:    "bits",
		Factors: []FactorDecl{{Name: "b0", Size: 2}, {Name: "b1", Size: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, KindMixed, s.Kind())
	assert.Equal(t, "cycle", s.Legend().Cycle)
	assert.Equal(t, Point{Cycle: 1, Phase: []int64{1, 0}}, s.Wind(5))

	_, err = Build(Declaration{Name: "empty"})
	assert.Error(t, err)

	_, err = Build(Declaration{Name: "odd", Kind: "spiral", Factors: []FactorDecl{{Name: "a", Size: 2}}})
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = Build(Declaration{Name: "zero", Factors: []FactorDecl{{Name: "a", Size: 0}}})
	assert.Error(t, err)
}
