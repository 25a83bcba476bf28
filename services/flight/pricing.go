package flight

import "flywise/models"

// similarPriceBand is the absolute difference under which a ticket price is
// considered comparable to the best system fare.
const similarPriceBand = 500

var (
	defaultOrigins      = []string{"DEL", "BOM", "DXB", "HYD", "LHR", "JAI"}
	popularDestinations = []string{"DXB", "LHR", "BLR", "DEL", "SIN", "BKK", "JAI", "HYD"}
)

// ComparePrices checks a previously purchased ticket against the current
// best fare on the same route. A route with no service produces an
// unavailable comparison carrying route suggestions instead.
func (inv *Inventory) ComparePrices(ticket *models.TicketDetails) *models.PriceComparison {
	flights := inv.Search(ticket.OriginAirport, ticket.DestinationAirport, 1, 0, 0)
	if len(flights) == 0 {
		return &models.PriceComparison{
			Available:           false,
			TicketPrice:         ticket.TicketPriceNumeric,
			Currency:            ticket.Currency,
			Suggestion:          "We don't serve this route yet. Here are routes we do fly.",
			AvailableOrigins:    defaultOrigins,
			PopularDestinations: popularDestinations,
		}
	}

	best := flights[0].Price
	diff := ticket.TicketPriceNumeric - best

	var savingsPct float64
	if ticket.TicketPriceNumeric != 0 {
		savingsPct = 100 * float64(diff) / float64(ticket.TicketPriceNumeric)
	}

	// A difference inside the band reads as comparable regardless of sign;
	// only at >=500 does the sign pick cheaper vs expensive.
	recommendation := models.PriceExpensive
	switch {
	case abs(diff) < similarPriceBand:
		recommendation = models.PriceSimilar
	case diff > 0:
		recommendation = models.PriceCheaper
	}

	return &models.PriceComparison{
		Available:       true,
		TicketPrice:     ticket.TicketPriceNumeric,
		Currency:        ticket.Currency,
		BestSystemPrice: best,
		PriceDifference: diff,
		SavingsPercent:  savingsPct,
		Recommendation:  recommendation,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
