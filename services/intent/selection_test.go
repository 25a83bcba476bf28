package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSelection(t *testing.T) {
	e := newTestExtractor()

	cases := map[string]int{
		"option 2":            2,
		"Option 3 looks good": 3,
		"1":                   1,
		"the second one":      2,
		"3rd":                 3,
		"fifth":               5,
	}
	for msg, want := range cases {
		got, ok := e.ExtractSelection(msg)
		require.True(t, ok, msg)
		assert.Equal(t, want, got, msg)
	}
}

func TestExtractSelectionNoMatch(t *testing.T) {
	e := newTestExtractor()

	for _, msg := range []string{"the cheap one", "whichever", ""} {
		_, ok := e.ExtractSelection(msg)
		assert.False(t, ok, msg)
	}
}
