package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAffirmative(t *testing.T) {
	for _, msg := range []string{"yes", "Yes please", "ok", "sure thing", "confirm", "book it", "go ahead"} {
		assert.True(t, IsAffirmative(msg), msg)
	}
	for _, msg := range []string{"no", "maybe later", "booking"} {
		assert.False(t, IsAffirmative(msg), msg)
	}
}

func TestIsNegative(t *testing.T) {
	for _, msg := range []string{"no", "No thanks", "cancel", "please stop", "abort"} {
		assert.True(t, IsNegative(msg), msg)
	}
	// "no" must match as a word, not inside "now".
	assert.False(t, IsNegative("now"))
	assert.False(t, IsNegative("yes"))
}

func TestHasBookingIntent(t *testing.T) {
	e := newTestExtractor()

	for _, msg := range []string{
		"I want to book a flight",
		"need flight to somewhere warm",
		"flight from Delhi to Dubai",
		"travel to Mumbai next week",
	} {
		assert.True(t, e.HasBookingIntent(msg), msg)
	}

	// A city alone, without a travel word, is not enough.
	assert.False(t, e.HasBookingIntent("Dubai is lovely"))
	assert.False(t, e.HasBookingIntent("hello there"))
}

func TestHasResetIntent(t *testing.T) {
	for _, msg := range []string{
		"I need to book flight again",
		"book another flight",
		"new booking please",
		"let's start over",
	} {
		assert.True(t, HasResetIntent(msg), msg)
	}
	assert.False(t, HasResetIntent("what is my pnr"))
	assert.False(t, HasResetIntent("compare prices"))
}
