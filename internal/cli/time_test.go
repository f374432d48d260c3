package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestNowText(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", nil, "∆ 18: 2 ∘ 1 ∘ 2 ∘ 4 / 0 ∘ 1 ∘ 0 ∘ 0 ∘ 0\n"},
		{"precision", []string{"--precision", "2"}, "∆ 18: 2 ∘ 1 ∘ 2 ∘ 4 / 0 ∘ 1\n"},
		{"long", []string{"--long"}, "∆ 0: 1 ∘ 0 ∘ 2: 2 ∘ 1 ∘ 2 ∘ 4 / 0 ∘ 1 ∘ 0 ∘ 0 ∘ 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, NewNowCommand(testRoot("text")), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestNowFull(t *testing.T) {
	out, err := execute(t, NewNowCommand(testRoot("text")), "--full")
	require.NoError(t, err)
	assert.Contains(t, out, "∆ 18: 2 ∘ 1 ∘ 2 ∘ 4 / 0 ∘ 1 ∘ 0 ∘ 0 ∘ 0 // 0.")
}

func TestNowNegativePrecision(t *testing.T) {
	_, err := execute(t, NewNowCommand(testRoot("text")), "--precision", "-1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestNowJSON(t *testing.T) {
	out, err := execute(t, NewNowCommand(testRoot("json")))
	require.NoError(t, err)
	newGoldie(t).Assert(t, "now_json", []byte(out))
}

func TestTodayText(t *testing.T) {
	out, err := execute(t, NewTodayCommand(testRoot("text")))
	require.NoError(t, err)
	assert.Equal(t, "∆ 18: 2 ∘ 1 ∘ 2 ∘ 4\n", out)

	out, err = execute(t, NewTodayCommand(testRoot("text")), "--long")
	require.NoError(t, err)
	assert.Equal(t, "∆ 0: 1 ∘ 0 ∘ 2: 2 ∘ 1 ∘ 2 ∘ 4\n", out)
}

func TestTodayYAML(t *testing.T) {
	out, err := execute(t, NewTodayCommand(testRoot("yaml")))
	require.NoError(t, err)
	newGoldie(t).Assert(t, "today_yaml", []byte(out))
}

func TestTo(t *testing.T) {
	out, err := execute(t, NewToCommand(testRoot("text")), "2024-02-01T09:41:15.041199Z")
	require.NoError(t, err)
	assert.Equal(t, "∆ 18: 2 ∘ 1 ∘ 2 ∘ 4 / 0 ∘ 1 ∘ 0 ∘ 0 ∘ 0\n", out)

	// Split arguments are joined and read in the configured zone.
	opts := testRoot("text")
	opts.Timezone = "America/New_York"
	out, err = execute(t, NewToCommand(opts), "2024-02-01", "04:41:15.041199")
	require.NoError(t, err)
	assert.Equal(t, "∆ 18: 2 ∘ 1 ∘ 2 ∘ 4 / 0 ∘ 1 ∘ 0 ∘ 0 ∘ 0\n", out)
}

func TestToErrors(t *testing.T) {
	_, err := execute(t, NewToCommand(testRoot("text")), "not", "a", "date")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeBadArgument)

	opts := testRoot("text")
	opts.Timezone = "Nowhere/Special"
	_, err = execute(t, NewToCommand(opts), "2024-02-01")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, NewToCommand(testRoot("text")))
	require.Error(t, err)
}

func TestJSONCommand(t *testing.T) {
	out, err := execute(t, NewJSONCommand(testRoot("text")))
	require.NoError(t, err)
	assert.Contains(t, out, `{"time":{"date":{"depth":{"aeon":0,`)
	assert.Contains(t, out, `"clock":{"rhythm":0,"beat":1,"moment":0,"event":0,"edge":0}},"fraction":0.`)
}
