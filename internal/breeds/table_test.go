package breeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBundledDataset(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)
	require.Greater(t, table.Len(), 0)

	for _, name := range []string{"Labrador Retriever", "Jindo", "Pug"} {
		p, ok := table.Lookup(name)
		require.True(t, ok, "expected %s in dataset", name)
		assert.Less(t, p.PuppyAge, p.AdultAge, "%s: age bands must be ordered", name)
		assert.Greater(t, p.PuppyWalkTime, 0, name)
		assert.Greater(t, p.AdultWalkTime, 0, name)
		assert.Greater(t, p.SeniorWalkTime, 0, name)
		assert.Greater(t, p.OverweightMale, 0.0, name)
		assert.Greater(t, p.OverweightFemale, 0.0, name)
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	upper, ok := table.Lookup("Labrador Retriever")
	require.True(t, ok)
	lower, ok := table.Lookup("labrador retriever")
	require.True(t, ok)
	mixed, ok := table.Lookup("LABRADOR retriever")
	require.True(t, ok)

	assert.Equal(t, upper, lower)
	assert.Equal(t, upper, mixed)
}

func TestLookupTrimsWhitespace(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	_, ok := table.Lookup("  beagle ")
	assert.True(t, ok)
}

func TestLookupMissReturnsFalse(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	_, ok := table.Lookup("Direwolf")
	assert.False(t, ok)

	_, ok = table.Lookup("")
	assert.False(t, ok)
}

func TestParseRejectsMalformedData(t *testing.T) {
	_, err := Parse([]byte(`{"Breed": "not an array"}`))
	assert.Error(t, err)
}
