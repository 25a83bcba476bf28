package models

import "time"

// TicketDetails is the structured payload produced by the external ticket
// parser for an uploaded flight document. The engine only consumes it.
type TicketDetails struct {
	Airline            string `json:"airline"`
	FlightNumber       string `json:"flightNumber"`
	OriginCity         string `json:"originCity"`
	OriginAirport      string `json:"originAirport"`
	DestinationCity    string `json:"destinationCity"`
	DestinationAirport string `json:"destinationAirport"`
	DepartureDate      string `json:"departureDate"` // YYYY-MM-DD
	DepartureTime      string `json:"departureTime"`
	ArrivalDate        string `json:"arrivalDate,omitempty"`
	ArrivalTime        string `json:"arrivalTime"`
	ClassOfService     string `json:"classOfService"`
	SeatNumber         string `json:"seatNumber,omitempty"`
	BookingReference   string `json:"bookingReference"`
	PassengerName      string `json:"passengerName"`
	TicketPrice        string `json:"ticketPrice"`        // formatted, with currency symbol
	TicketPriceNumeric int    `json:"ticketPriceNumeric"` // numeric amount only
	Currency           string `json:"currency"`
	Confidence         float64 `json:"confidence"`
}

// PriceComparison is the outcome of comparing a parsed ticket's price with
// the cheapest matching inventory price for the same route.
type PriceComparison struct {
	Available       bool    `json:"available"`
	TicketPrice     int     `json:"ticketPrice"`
	Currency        string  `json:"currency"`
	BestSystemPrice int     `json:"bestSystemPrice"`
	PriceDifference int     `json:"priceDifference"`
	SavingsPercent  float64 `json:"savingsPercent"`
	Recommendation  string  `json:"recommendation"` // cheaper, similar, expensive

	// Populated only when the route has no inventory.
	Suggestion          string   `json:"suggestion,omitempty"`
	AvailableOrigins    []string `json:"availableOrigins,omitempty"`
	PopularDestinations []string `json:"popularDestinations,omitempty"`
}

// Price comparison recommendation tags.
const (
	PriceCheaper   = "cheaper"
	PriceSimilar   = "similar"
	PriceExpensive = "expensive"
)

// TicketRecord is the durable cache entry that lets parsed-ticket context
// survive session expiry. Keyed by normalized phone number.
type TicketRecord struct {
	PhoneNumber     string           `json:"phoneNumber"`
	StoredAt        time.Time        `json:"storedAt"`
	ExpiresAt       time.Time        `json:"expiresAt"`
	TicketInfo      *TicketDetails   `json:"ticketInfo"`
	PriceComparison *PriceComparison `json:"priceComparison,omitempty"`
}

// Expired reports whether the record is past its expiry timestamp.
func (r TicketRecord) Expired() bool {
	return time.Now().After(r.ExpiresAt)
}
