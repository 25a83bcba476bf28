package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flywise/models"
)

func ticketFor(route string, price int) *models.TicketDetails {
	t := &models.TicketDetails{
		OriginAirport:      "DEL",
		DestinationAirport: "DXB",
		TicketPriceNumeric: price,
		Currency:           "INR",
	}
	if route == "unserved" {
		t.OriginAirport = "JFK"
		t.DestinationAirport = "SIN"
	}
	return t
}

func TestComparePricesBand(t *testing.T) {
	inv := testInventory() // best DEL-DXB fare is 14000

	// 499 over the best fare is still comparable.
	cmp := inv.ComparePrices(ticketFor("served", 14499))
	require.True(t, cmp.Available)
	assert.Equal(t, models.PriceSimilar, cmp.Recommendation)
	assert.Equal(t, 499, cmp.PriceDifference)

	// At exactly 500 the sign decides.
	cmp = inv.ComparePrices(ticketFor("served", 14500))
	assert.Equal(t, models.PriceCheaper, cmp.Recommendation)
	assert.Equal(t, 14000, cmp.BestSystemPrice)

	cmp = inv.ComparePrices(ticketFor("served", 13500))
	assert.Equal(t, models.PriceExpensive, cmp.Recommendation)
	assert.Equal(t, -500, cmp.PriceDifference)
}

func TestComparePricesSavingsPercent(t *testing.T) {
	inv := testInventory()

	cmp := inv.ComparePrices(ticketFor("served", 16000))
	require.True(t, cmp.Available)
	assert.InDelta(t, 12.5, cmp.SavingsPercent, 0.001)

	// A zero ticket price never divides.
	cmp = inv.ComparePrices(ticketFor("served", 0))
	assert.Equal(t, float64(0), cmp.SavingsPercent)
	assert.Equal(t, models.PriceExpensive, cmp.Recommendation)
}

func TestComparePricesUnservedRoute(t *testing.T) {
	inv := testInventory()

	cmp := inv.ComparePrices(ticketFor("unserved", 30000))
	assert.False(t, cmp.Available)
	assert.NotEmpty(t, cmp.Suggestion)
	assert.Contains(t, cmp.AvailableOrigins, "DEL")
	assert.Contains(t, cmp.PopularDestinations, "DXB")
	assert.Equal(t, 30000, cmp.TicketPrice)
}
