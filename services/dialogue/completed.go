package dialogue

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"flywise/models"
	"flywise/services/flight"
	"flywise/services/intent"
	"flywise/utils"

	"go.uber.org/zap"
)

var officeIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]{2,18}[A-Za-z0-9]$`)

// handleCompleted services the terminal state. Ticket questions are
// classified before any new-booking logic: "check prices" after a booking
// shares vocabulary with a fresh search and must not restart the flow.
func (e *Engine) handleCompleted(ctx context.Context, session *models.ConversationSession, message string) string {
	if session.Context.ParsedTicket != nil {
		if action := ClassifyTicketAction(message); action != ActionNone {
			return e.handleTicketAction(session, action)
		}
	}

	if e.extractor.HasBookingIntent(message) || intent.HasResetIntent(message) {
		session.ResetBookingData()
		session.SetState(models.StateGreeting)
		return e.handleGreeting(ctx, session, message)
	}

	return completedIdleMessage
}

func (e *Engine) handleTicketAction(session *models.ConversationSession, action TicketAction) string {
	ticket := session.Context.ParsedTicket

	switch action {
	case ActionComparePrices:
		if session.Context.PriceComparison == nil {
			session.Context.PriceComparison = e.inventory.ComparePrices(ticket)
		}
		return priceComparisonMessage(ticket, session.Context.PriceComparison)

	case ActionSearchSimilar:
		flights := e.inventory.Search(ticket.OriginAirport, ticket.DestinationAirport, 1, 0, 0)
		if len(flights) == 0 {
			return noFlightsMessage(ticket.OriginCity, ticket.DestinationCity, ticket.DepartureDate)
		}
		session.Context.AvailableFlights = flights
		return flight.FormatFlights(flights)

	case ActionNewBooking:
		session.ResetBookingData()
		session.SetState(models.StateCollectSource)
		return askSourceMessage

	case ActionBookExact, ActionBookBetter:
		if !e.inventory.ValidateRoute(ticket.OriginAirport, ticket.DestinationAirport) {
			comparison := e.inventory.ComparePrices(ticket)
			return priceComparisonMessage(ticket, comparison)
		}
		session.SetState(models.StateCollectOfficeID)
		return askOfficeIDMessage
	}
	return completedIdleMessage
}

// handleCollectOfficeID finishes a rebooking of the cached ticket's route at
// the current best price. The ticket document is delivered through the
// document collaborator; this is the one place the engine sends anything
// itself.
func (e *Engine) handleCollectOfficeID(ctx context.Context, session *models.ConversationSession, message string) string {
	ticket := session.Context.ParsedTicket
	if ticket == nil {
		session.SetState(models.StateCompleted)
		return completedIdleMessage
	}

	officeID := strings.ToUpper(strings.TrimSpace(message))
	if !officeIDPattern.MatchString(officeID) {
		return e.retryOrEscalate(session, retryOfficeIDMessage)
	}

	flights := e.inventory.Search(ticket.OriginAirport, ticket.DestinationAirport, 1, 0, 0)
	if len(flights) == 0 {
		session.SetState(models.StateCompleted)
		return noFlightsMessage(ticket.OriginCity, ticket.DestinationCity, ticket.DepartureDate)
	}
	best := flights[0]

	passenger := passengerFromTicket(ticket)
	booking := e.ledger.CreateBooking(best, []models.Passenger{passenger},
		"customer@example.com", session.PhoneNumber)

	if err := e.ledger.SetOfficeID(booking.PNR, officeID); err != nil {
		utils.GetLogger().Warn("Failed to attach office ID", zap.String("pnr", booking.PNR), zap.Error(err))
	}
	if err := e.ledger.IssueTicket(booking.PNR); err != nil {
		utils.GetLogger().Warn("Failed to issue ticket", zap.String("pnr", booking.PNR), zap.Error(err))
	}

	session.Data.PNR = booking.PNR
	session.Data.BookingConfirmed = true
	session.SetState(models.StateCompleted)

	confirmed, _ := e.ledger.GetBooking(booking.PNR)
	e.deliverTicketDocument(ctx, session.PhoneNumber, confirmed)

	saved := ticket.TicketPriceNumeric - best.Price
	savedLine := ""
	if saved > 0 {
		savedLine = fmt.Sprintf("\n💰 *You saved:* ₹%s vs your original ticket!", models.FormatAmount(saved))
	}

	return fmt.Sprintf(`🎫 *REBOOKING CONFIRMED!*

📋 *PNR:* %s
🏢 *Office ID:* %s
✈️ *Flight:* %s %s
🛫 *Route:* %s → %s
💵 *New Price:* ₹%s%s

Your e-ticket is on its way! 📄`,
		booking.PNR, officeID,
		best.Airline, best.FlightID,
		best.Origin, best.Destination,
		models.FormatAmount(best.Price), savedLine)
}

func (e *Engine) deliverTicketDocument(ctx context.Context, phone string, booking models.Booking) {
	if e.renderer == nil || e.sender == nil {
		return
	}
	document, err := e.renderer.Render(booking)
	if err != nil {
		utils.GetLogger().Warn("Ticket render failed", zap.String("pnr", booking.PNR), zap.Error(err))
		return
	}
	filename := fmt.Sprintf("ticket_%s.pdf", booking.PNR)
	caption := fmt.Sprintf("🎫 Your e-ticket for %s → %s", booking.Flight.Origin, booking.Flight.Destination)
	if err := e.sender.SendDocument(ctx, phone, filename, document, caption); err != nil {
		utils.GetLogger().Warn("Ticket delivery failed", zap.String("pnr", booking.PNR), zap.Error(err))
	}
}

// passengerFromTicket builds the rebooking passenger record from the parsed
// ticket's name; passport details stay empty since the upload never carries
// them.
func passengerFromTicket(ticket *models.TicketDetails) models.Passenger {
	name := strings.TrimSpace(ticket.PassengerName)
	first, last := name, ""
	if idx := strings.Index(name, " "); idx > 0 {
		first, last = name[:idx], strings.TrimSpace(name[idx+1:])
	}
	return models.Passenger{FirstName: first, LastName: last}
}
