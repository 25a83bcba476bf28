package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTicketAction(t *testing.T) {
	cases := map[string]TicketAction{
		"compare prices":            ActionComparePrices,
		"how much does it cost":     ActionComparePrices,
		"show me similar flights":   ActionSearchSimilar,
		"what else do you have":     ActionSearchSimilar,
		"new booking please":        ActionNewBooking,
		"I want a different route":  ActionNewBooking,
		"book this flight":          ActionBookExact,
		"rebook this one":           ActionBookExact,
		"book with new price":       ActionBookBetter,
		"go ahead":                  ActionBookBetter,
		"yes book it at your price": ActionBookBetter,
		"hello":                     ActionNone,
		"thanks":                    ActionNone,
	}
	for msg, want := range cases {
		assert.Equal(t, want, ClassifyTicketAction(msg), msg)
	}
}

func TestClassifyTicketActionPriority(t *testing.T) {
	// Price wording wins even when flight-search wording is present too.
	assert.Equal(t, ActionComparePrices, ClassifyTicketAction("what's the price of similar flights"))

	// An exact-rebook phrase beats the generic go-ahead phrases.
	assert.Equal(t, ActionBookExact, ClassifyTicketAction("go ahead and book this flight"))
}
