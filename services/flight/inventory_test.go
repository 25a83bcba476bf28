package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flywise/models"
)

func testInventory() *Inventory {
	return NewInventory([]models.Flight{
		{FlightID: "EK512", Airline: "Emirates", Origin: "DEL", Destination: "DXB", Price: 16000, Currency: "INR"},
		{FlightID: "6E1463", Airline: "IndiGo", Origin: "DEL", Destination: "DXB", Price: 14000, Currency: "INR"},
		{FlightID: "AI915", Airline: "Air India", Origin: "DEL", Destination: "DXB", Price: 15500, Currency: "INR"},
		{FlightID: "AI665", Airline: "Air India", Origin: "DEL", Destination: "BOM", Price: 5500, Currency: "INR"},
		{FlightID: "BA142", Airline: "British Airways", Origin: "DEL", Destination: "LHR", Price: 42000, Currency: "INR"},
	})
}

func TestSearchSortsCheapestFirst(t *testing.T) {
	inv := testInventory()

	flights := inv.Search("del", "dxb", 1, 0, 0)
	require.Len(t, flights, 3)
	assert.Equal(t, "6E1463", flights[0].FlightID)
	assert.Equal(t, 14000, flights[0].Price)
	assert.Equal(t, "AI915", flights[1].FlightID)
	assert.Equal(t, "EK512", flights[2].FlightID)
}

func TestSearchAdjustsForPassengerMix(t *testing.T) {
	inv := testInventory()

	flights := inv.Search("DEL", "DXB", 2, 1, 1)
	require.NotEmpty(t, flights)
	// 2 adults + 1 child at 75% + 1 infant at 10% on a 14000 base.
	assert.Equal(t, 14000*2+10500+1400, flights[0].Price)

	// Zero adults still prices for one.
	flights = inv.Search("DEL", "DXB", 0, 0, 0)
	require.NotEmpty(t, flights)
	assert.Equal(t, 14000, flights[0].Price)
}

func TestAdjustedPriceTruncates(t *testing.T) {
	// 999 + 749.25 = 1748.25, truncated.
	assert.Equal(t, 1748, AdjustedPrice(999, 1, 1, 0))
	assert.Equal(t, 0, AdjustedPrice(0, 3, 2, 1))
}

func TestSearchUnknownRoute(t *testing.T) {
	inv := testInventory()
	assert.Empty(t, inv.Search("DEL", "JFK", 1, 0, 0))
}

func TestValidateRoute(t *testing.T) {
	inv := testInventory()

	assert.True(t, inv.ValidateRoute("DEL", "DXB"))
	assert.True(t, inv.ValidateRoute("del", "dxb"))
	assert.False(t, inv.ValidateRoute("DXB", "DEL"))
}

func TestDestinationsFromAndOriginsTo(t *testing.T) {
	inv := testInventory()

	assert.Equal(t, []string{"BOM", "DXB", "LHR"}, inv.DestinationsFrom("DEL"))
	assert.Equal(t, []string{"DEL"}, inv.OriginsTo("DXB"))
	assert.Empty(t, inv.DestinationsFrom("SIN"))
}

func TestPriceRange(t *testing.T) {
	inv := testInventory()

	min, max, ok := inv.PriceRange("DEL", "DXB")
	require.True(t, ok)
	assert.Equal(t, 14000, min)
	assert.Equal(t, 16000, max)

	_, _, ok = inv.PriceRange("DEL", "JFK")
	assert.False(t, ok)
}

func TestFormatFlights(t *testing.T) {
	inv := testInventory()

	out := FormatFlights(inv.Search("DEL", "DXB", 1, 0, 0))
	assert.Contains(t, out, "Found 3 flights")
	assert.Contains(t, out, "IndiGo")
	assert.Contains(t, out, "option 2")
}
