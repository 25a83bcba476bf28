package intent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins the extractor to 2026-03-15 so roll-forward assertions
// are stable.
func fixedClock(e *Extractor) {
	e.now = func() time.Time {
		return time.Date(2026, time.March, 15, 10, 30, 0, 0, time.Local)
	}
}

func TestExtractDateRelative(t *testing.T) {
	e := newTestExtractor()
	fixedClock(e)

	cases := map[string]string{
		"I want to fly today":      "2026-03-15",
		"leaving tomorrow morning": "2026-03-16",
		"sometime next week":       "2026-03-22",
		"maybe next month":         "2026-04-14",
	}
	for msg, want := range cases {
		got, ok := e.ExtractDate(msg)
		require.True(t, ok, msg)
		assert.Equal(t, want, got, msg)
	}
}

func TestExtractDateNumeric(t *testing.T) {
	e := newTestExtractor()
	fixedClock(e)

	got, ok := e.ExtractDate("book me for 25/12/2026")
	require.True(t, ok)
	assert.Equal(t, "2026-12-25", got)

	// Missing year defaults to the current year.
	got, ok = e.ExtractDate("travelling on 25/12")
	require.True(t, ok)
	assert.Equal(t, "2026-12-25", got)
}

func TestExtractDateNeverPast(t *testing.T) {
	e := newTestExtractor()
	fixedClock(e)

	// A stale year rolls forward to the current one.
	got, ok := e.ExtractDate("25/12/2020")
	require.True(t, ok)
	assert.Equal(t, "2026-12-25", got)

	// Already past within the current year rolls one more year.
	got, ok = e.ExtractDate("flying 14/01")
	require.True(t, ok)
	assert.Equal(t, "2027-01-14", got)

	got, ok = e.ExtractDate("on 5 jan")
	require.True(t, ok)
	assert.Equal(t, "2027-01-05", got)
}

func TestExtractDateMonthNames(t *testing.T) {
	e := newTestExtractor()
	fixedClock(e)

	// Day-month and month-day both resolve to the same date.
	got, ok := e.ExtractDate("depart 5th June")
	require.True(t, ok)
	assert.Equal(t, "2026-06-05", got)

	got, ok = e.ExtractDate("depart June 5")
	require.True(t, ok)
	assert.Equal(t, "2026-06-05", got)

	got, ok = e.ExtractDate("5 june 27")
	require.True(t, ok)
	assert.Equal(t, "2027-06-05", got)
}

func TestExtractDateNone(t *testing.T) {
	e := newTestExtractor()
	fixedClock(e)

	_, ok := e.ExtractDate("I want to fly to Dubai")
	assert.False(t, ok)
}

func TestParseLenientDate(t *testing.T) {
	got, ok := ParseLenientDate("10-May-1990")
	require.True(t, ok)
	assert.Equal(t, "1990-05-10", got.Format("2006-01-02"))

	got, ok = ParseLenientDate("1990-05-10")
	require.True(t, ok)
	assert.Equal(t, "1990-05-10", got.Format("2006-01-02"))

	_, ok = ParseLenientDate("")
	assert.False(t, ok)

	_, ok = ParseLenientDate("not a date at all")
	assert.False(t, ok)
}
