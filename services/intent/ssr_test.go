package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSSRRequestsMultiple(t *testing.T) {
	e := newTestExtractor()

	reqs := e.ExtractSSRRequests("vegetarian meal and a window seat please")
	require.Len(t, reqs, 2)
	assert.Contains(t, reqs, SSRPreference{Category: "meal", Preference: "vegetarian"})
	assert.Contains(t, reqs, SSRPreference{Category: "seat", Preference: "window"})
}

func TestExtractSSRRequestsVegShorthand(t *testing.T) {
	e := newTestExtractor()

	reqs := e.ExtractSSRRequests("veg food please")
	require.Len(t, reqs, 1)
	assert.Equal(t, SSRPreference{Category: "meal", Preference: "vegetarian"}, reqs[0])

	// "vegetarian" must not double-count through its "veg" prefix.
	reqs = e.ExtractSSRRequests("vegetarian")
	assert.Len(t, reqs, 1)
}

func TestExtractSSRRequestsCategories(t *testing.T) {
	e := newTestExtractor()

	reqs := e.ExtractSSRRequests("wheelchair assistance and extra baggage, extra legroom too")
	assert.Contains(t, reqs, SSRPreference{Category: "assistance", Preference: "wheelchair"})
	assert.Contains(t, reqs, SSRPreference{Category: "baggage", Preference: "extra"})
	assert.Contains(t, reqs, SSRPreference{Category: "seat", Preference: "extra_legroom"})
}

func TestExtractSSRRequestsWindowBeatsAisle(t *testing.T) {
	e := newTestExtractor()

	reqs := e.ExtractSSRRequests("window or aisle, either works")
	require.Len(t, reqs, 1)
	assert.Equal(t, "window", reqs[0].Preference)
}

func TestExtractSSRRequestsNone(t *testing.T) {
	e := newTestExtractor()

	assert.Empty(t, e.ExtractSSRRequests("no thanks, nothing special"))
}
