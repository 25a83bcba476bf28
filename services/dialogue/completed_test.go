package dialogue

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flywise/models"
)

func cachedTicket() *models.TicketDetails {
	return &models.TicketDetails{
		Airline:            "Emirates",
		FlightNumber:       "EK512",
		OriginCity:         "Delhi",
		OriginAirport:      "DEL",
		DestinationCity:    "Dubai",
		DestinationAirport: "DXB",
		DepartureDate:      "2026-09-10",
		PassengerName:      "Rahul Sharma",
		TicketPriceNumeric: 16000,
		Currency:           "INR",
	}
}

func TestComparePricesFromCachedTicket(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.tickets.Store(context.Background(), testPhone, cachedTicket(), nil))

	s := models.NewConversationSession(testPhone)
	s.SetState(models.StateCompleted)

	reply := f.process(s, "compare prices")
	assert.Contains(t, reply, "Price Comparison")
	assert.Contains(t, reply, "save you")

	// A ticket question never restarts the booking flow.
	assert.Equal(t, models.StateCompleted, s.State)
	assert.Nil(t, s.Data.SourceCity)
	require.NotNil(t, s.Context.ParsedTicket)
	assert.Equal(t, "EK512", s.Context.ParsedTicket.FlightNumber)
}

func TestSearchSimilarFromCachedTicket(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.tickets.Store(context.Background(), testPhone, cachedTicket(), nil))

	s := models.NewConversationSession(testPhone)
	s.SetState(models.StateCompleted)

	reply := f.process(s, "show me similar flights")
	assert.Contains(t, reply, "Found 2 flights")
	assert.Equal(t, models.StateCompleted, s.State)
}

func TestOfficeIDRebooking(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.tickets.Store(context.Background(), testPhone, cachedTicket(), nil))

	s := models.NewConversationSession(testPhone)
	s.SetState(models.StateCompleted)

	reply := f.process(s, "book with new price")
	assert.Equal(t, models.StateCollectOfficeID, s.State)
	assert.Contains(t, reply, "office ID")

	reply = f.process(s, "not/valid!!")
	assert.Contains(t, reply, "valid office ID")
	assert.Equal(t, models.StateCollectOfficeID, s.State)

	reply = f.process(s, "corp-mumbai-001")
	assert.Equal(t, models.StateCompleted, s.State)
	assert.Contains(t, reply, "REBOOKING CONFIRMED")
	assert.Contains(t, reply, "CORP-MUMBAI-001")
	assert.Contains(t, reply, "You saved")
	assert.True(t, s.Data.BookingConfirmed)
	require.NotEmpty(t, s.Data.PNR)

	booking, ok := f.ledger.GetBooking(s.Data.PNR)
	require.True(t, ok)
	assert.Equal(t, "CORP-MUMBAI-001", booking.OfficeID)
	assert.True(t, booking.TicketIssued)
	// Rebooks the current cheapest fare on the ticket's route.
	assert.Equal(t, "6E1463", booking.Flight.FlightID)
	require.Len(t, booking.Passengers, 1)
	assert.Equal(t, "Rahul", booking.Passengers[0].FirstName)
	assert.Equal(t, "Sharma", booking.Passengers[0].LastName)

	require.Len(t, f.sender.filenames, 1)
	assert.Equal(t, fmt.Sprintf("ticket_%s.pdf", s.Data.PNR), f.sender.filenames[0])
	assert.NotEmpty(t, f.sender.documents[0])
}

func TestTicketActionsNeedACachedTicket(t *testing.T) {
	f := newFixture(t, nil)
	s := models.NewConversationSession(testPhone)
	s.SetState(models.StateCompleted)

	reply := f.process(s, "compare prices")
	assert.Contains(t, reply, "How can I help you today?")
	assert.Equal(t, models.StateCompleted, s.State)
}

func TestComparePricesUnservedTicketRoute(t *testing.T) {
	f := newFixture(t, nil)
	ticket := cachedTicket()
	ticket.OriginAirport = "JFK"
	ticket.DestinationAirport = "SIN"
	require.NoError(t, f.tickets.Store(context.Background(), testPhone, ticket, nil))

	s := models.NewConversationSession(testPhone)
	s.SetState(models.StateCompleted)

	reply := f.process(s, "compare prices")
	assert.Contains(t, reply, "couldn't compare prices")
	assert.Contains(t, reply, "We fly from:")
}

func TestOfficeIDPattern(t *testing.T) {
	valid := []string{"CORP-MUMBAI-001", "ACME", "A1-B2-C3", "OFF-00042"}
	for _, id := range valid {
		assert.True(t, officeIDPattern.MatchString(id), id)
	}
	invalid := []string{"", "AB", "-CORP-001", "CORP-001-", "CORP 001", "THIS-OFFICE-ID-IS-FAR-TOO-LONG-TO-ACCEPT"}
	for _, id := range invalid {
		assert.False(t, officeIDPattern.MatchString(id), id)
	}
}
