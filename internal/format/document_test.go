package format

import (
	"math"
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

func TestEncodeJSONKeepsOrder(t *testing.T) {
	doc := Object{}.With("z", int64(1)).With("a", "b").With("m", Object{}.With("y", true).With("x", []any{1, 2.5}))
	got, err := EncodeJSON(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":"b","m":{"y":true,"x":[1,2.5]}}`, string(got))
}

func TestEncodeJSONStrings(t *testing.T) {
	got, err := EncodeJSON(Object{}.With("café", "<a & b>"))
	require.NoError(t, err)
	assert.Equal(t, "{\"café\":\"<a & b>\"}", string(got))
}

func TestEncodeJSONUnsupported(t *testing.T) {
	_, err := EncodeJSON(Object{}.With("bad", struct{}{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `value for key "bad"`)
}

func TestEncodeYAMLKeepsOrder(t *testing.T) {
	doc := Object{}.With("z", int64(1)).With("a", "8").With("f", 0.0)
	got, err := EncodeYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, "z: 1\na: \"8\"\nf: 0.0\n", string(got))
}

func TestYAMLFloat(t *testing.T) {
	assert.Equal(t, "0.25", yamlFloat(0.25))
	assert.Equal(t, "3.0", yamlFloat(3))
	assert.Equal(t, "NaN", yamlFloat(math.NaN()))
}

func TestTimeDocumentJSON(t *testing.T) {
	got, err := EncodeJSON(TimeWithFractionDocument(sampleTime()))
	require.NoError(t, err)
	newGoldie(t).Assert(t, "time_with_fraction_json", got)
}

func TestTimeDocumentYAML(t *testing.T) {
	got, err := EncodeYAML(TimeWithFractionDocument(sampleTime()))
	require.NoError(t, err)
	newGoldie(t).Assert(t, "time_with_fraction_yaml", got)
}

func TestIntersticeDocument(t *testing.T) {
	got, err := EncodeJSON(DateDocument(sampleInterstice()))
	require.NoError(t, err)
	assert.Equal(t, `{"depth":{"aeon":-1,"phase":{"hexade":15,"octade":1,"unade":7}},"year":-1,"calendar":{"interstice":4}}`, string(got))
}
