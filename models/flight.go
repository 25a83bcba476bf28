package models

import (
	"fmt"
	"time"
)

// Flight is one schedule entry from the inventory. Prices on search results
// are already adjusted for the passenger mix of the query.
type Flight struct {
	FlightID      string `json:"flightId"`
	Airline       string `json:"airline"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Price         int    `json:"price"`
	Currency      string `json:"currency"`
	Duration      string `json:"duration"`
	Aircraft      string `json:"aircraft"`
}

// FormatForDisplay renders a numbered flight option for the chat channel.
func (f Flight) FormatForDisplay(index int) string {
	return fmt.Sprintf(`✈️ *Option %d*
🛫 %s - %s
🕐 %s → %s
💰 ₹%s
⏱️ Duration: %s
✈️ Aircraft: %s`, index, f.Airline, f.FlightID, f.DepartureTime, f.ArrivalTime, FormatAmount(f.Price), f.Duration, f.Aircraft)
}

// Passenger is one traveller on a booking. Records are immutable once stored.
type Passenger struct {
	FirstName      string `json:"firstName" bson:"firstName"`
	LastName       string `json:"lastName" bson:"lastName"`
	DateOfBirth    string `json:"dateOfBirth" bson:"dateOfBirth"` // YYYY-MM-DD
	PassportNumber string `json:"passportNumber" bson:"passportNumber"`
	Nationality    string `json:"nationality" bson:"nationality"`
}

// SpecialServiceRequest is a coded ancillary request attached to a booking.
type SpecialServiceRequest struct {
	Type        string `json:"type" bson:"type"` // MEAL, SEAT, ASSISTANCE, BAGGAGE
	Code        string `json:"code" bson:"code"` // VGML, WCHR, XBAG, ...
	Description string `json:"description" bson:"description"`
}

// Booking statuses.
const (
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusPending   = "PENDING"
	BookingStatusCancelled = "CANCELLED"
)

// Booking is a confirmed reservation held by the ledger, keyed by PNR.
type Booking struct {
	PNR             string                  `json:"pnr" bson:"pnr"`
	Flight          Flight                  `json:"flight" bson:"flight"`
	Passengers      []Passenger             `json:"passengers" bson:"passengers"`
	ContactEmail    string                  `json:"contactEmail" bson:"contactEmail"`
	ContactPhone    string                  `json:"contactPhone" bson:"contactPhone"`
	SpecialRequests []SpecialServiceRequest `json:"specialRequests" bson:"specialRequests"`
	OfficeID        string                  `json:"officeId,omitempty" bson:"officeId,omitempty"`
	BookingDate     time.Time               `json:"bookingDate" bson:"bookingDate"`
	Status          string                  `json:"status" bson:"status"`
	TicketIssued    bool                    `json:"ticketIssued" bson:"ticketIssued"`
}

// ConfirmationMessage renders the booking confirmation for the chat channel.
func (b Booking) ConfirmationMessage() string {
	ssrText := ""
	if len(b.SpecialRequests) > 0 {
		ssrText = "\n\n🍽️ *Special Requests:*"
		for _, ssr := range b.SpecialRequests {
			ssrText += "\n• " + ssr.Description
		}
	}

	passengerText := ""
	if len(b.Passengers) == 1 {
		passengerText = fmt.Sprintf("👤 *Passenger:* %s %s", b.Passengers[0].FirstName, b.Passengers[0].LastName)
	} else {
		passengerText = "👥 *Passengers:*"
		for _, p := range b.Passengers {
			passengerText += fmt.Sprintf("\n• %s %s", p.FirstName, p.LastName)
		}
	}

	ticketText := "Will be issued shortly"
	if b.TicketIssued {
		ticketText = "Issued"
	}

	return fmt.Sprintf(`🎫 *BOOKING CONFIRMED!*

📋 *PNR:* %s
✈️ *Flight:* %s %s
🛫 *Route:* %s → %s
🕐 *Time:* %s - %s
💰 *Price:* ₹%s

%s%s

📱 SMS sent to: %s

✅ *Status:* %s
🎟️ *Ticket:* %s

Thank you for booking with us! 🙏`,
		b.PNR, b.Flight.Airline, b.Flight.FlightID,
		b.Flight.Origin, b.Flight.Destination,
		b.Flight.DepartureTime, b.Flight.ArrivalTime,
		FormatAmount(b.Flight.Price),
		passengerText, ssrText,
		b.ContactPhone, b.Status, ticketText)
}

// SSRCatalog maps category and preference to airline SSR codes.
var SSRCatalog = map[string]map[string]SpecialServiceRequest{
	"meal": {
		"vegetarian": {Type: "MEAL", Code: "VGML", Description: "Vegetarian Meal"},
		"vegan":      {Type: "MEAL", Code: "VLML", Description: "Vegan Meal"},
		"halal":      {Type: "MEAL", Code: "MOML", Description: "Halal Meal"},
		"kosher":     {Type: "MEAL", Code: "KSML", Description: "Kosher Meal"},
		"diabetic":   {Type: "MEAL", Code: "DBML", Description: "Diabetic Meal"},
		"child":      {Type: "MEAL", Code: "CHML", Description: "Child Meal"},
	},
	"seat": {
		"window":        {Type: "SEAT", Code: "WINDOW", Description: "Window Seat Preference"},
		"aisle":         {Type: "SEAT", Code: "AISLE", Description: "Aisle Seat Preference"},
		"extra_legroom": {Type: "SEAT", Code: "LEGROOM", Description: "Extra Legroom Seat"},
	},
	"assistance": {
		"wheelchair": {Type: "ASSISTANCE", Code: "WCHR", Description: "Wheelchair Assistance"},
		"blind":      {Type: "ASSISTANCE", Code: "BLND", Description: "Assistance for Blind Passenger"},
		"deaf":       {Type: "ASSISTANCE", Code: "DEAF", Description: "Assistance for Deaf Passenger"},
	},
	"baggage": {
		"extra":  {Type: "BAGGAGE", Code: "XBAG", Description: "Extra Baggage (15kg)"},
		"sports": {Type: "BAGGAGE", Code: "SPBG", Description: "Sports Equipment"},
	},
}

// FormatAmount renders an integer amount with thousands separators.
func FormatAmount(amount int) string {
	s := fmt.Sprintf("%d", amount)
	if amount < 0 {
		s = s[1:]
	}
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	if amount < 0 {
		return "-" + string(out)
	}
	return string(out)
}
