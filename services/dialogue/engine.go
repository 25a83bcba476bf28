package dialogue

import (
	"context"
	"strings"

	"flywise/models"
	"flywise/services/flight"
	"flywise/services/intent"
	"flywise/services/nlu"
	"flywise/services/ticketcache"
	"flywise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultMaxRetries = 3

// TicketRenderer produces a ticket document for a confirmed booking.
type TicketRenderer interface {
	Render(booking models.Booking) ([]byte, error)
}

// DocumentSender delivers a rendered document to the user's chat channel.
// It is the only outbound path the engine ever takes itself; every other
// reply is returned as text for the transport layer to deliver.
type DocumentSender interface {
	SendDocument(ctx context.Context, phone, filename string, document []byte, caption string) error
}

// Engine is the finite-state dialogue controller. It mutates the session
// it is handed for exactly one turn; the caller holds the per-phone lock.
type Engine struct {
	extractor *intent.Extractor
	gateway   *nlu.Gateway
	inventory *flight.Inventory
	ledger    *flight.Ledger
	tickets   ticketcache.Cache
	renderer  TicketRenderer
	sender    DocumentSender

	maxRetries int
}

func NewEngine(extractor *intent.Extractor, gateway *nlu.Gateway, inventory *flight.Inventory,
	ledger *flight.Ledger, tickets ticketcache.Cache, renderer TicketRenderer, sender DocumentSender,
	maxRetries int) *Engine {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &Engine{
		extractor:  extractor,
		gateway:    gateway,
		inventory:  inventory,
		ledger:     ledger,
		tickets:    tickets,
		renderer:   renderer,
		sender:     sender,
		maxRetries: maxRetries,
	}
}

// Process runs one conversation turn and returns the reply text. A panic in
// any handler degrades to a generic failure message rather than killing the
// caller's goroutine.
func (e *Engine) Process(ctx context.Context, session *models.ConversationSession, message string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			utils.TurnFailures.Inc()
			utils.GetLogger().Error("Turn handler panicked",
				zap.Any("panic", r),
				zap.String("phone", utils.MaskPhone(session.PhoneNumber)),
				zap.String("state", string(session.State)))
			reply = turnFailedMessage
		}
	}()

	utils.TurnsProcessed.Inc()
	session.Context.LastMessage = message
	session.Touch()

	// Parsed-ticket context must survive session expiry; restore it from
	// the durable cache before any state handler can act on its absence.
	if session.Context.ParsedTicket == nil && e.tickets != nil {
		if record, ok := e.tickets.Get(ctx, session.PhoneNumber); ok {
			session.Context.ParsedTicket = record.TicketInfo
			session.Context.PriceComparison = record.PriceComparison
		}
	}

	// A new-booking request resets collected slots from any state once
	// slot data exists.
	if intent.HasResetIntent(message) &&
		(session.Data.SourceCity != nil || session.Data.DestinationCity != nil) {
		utils.GetLogger().Info("New booking intent, resetting session data",
			zap.String("phone", utils.MaskPhone(session.PhoneNumber)))
		session.ResetBookingData()
		session.SetState(models.StateGreeting)
		return e.handleGreeting(ctx, session, message)
	}

	switch session.State {
	case models.StateGreeting:
		return e.handleGreeting(ctx, session, message)
	case models.StateCollectSource:
		return e.handleCollectSource(session, message)
	case models.StateCollectDestination:
		return e.handleCollectDestination(session, message)
	case models.StateCollectDate:
		return e.handleCollectDate(session, message)
	case models.StateCollectPassengers:
		return e.handleCollectPassengers(session, message)
	case models.StateShowFlights:
		return e.showFlights(session)
	case models.StateCollectSelection:
		return e.handleCollectSelection(session, message)
	case models.StateCollectPassengerDetails:
		return e.handleCollectPassengerDetails(session, message)
	case models.StateCollectSSR:
		return e.handleCollectSSR(session, message)
	case models.StateConfirmBooking:
		return e.handleConfirmBooking(session, message)
	case models.StateCollectOfficeID:
		return e.handleCollectOfficeID(ctx, session, message)
	case models.StateCompleted:
		return e.handleCompleted(ctx, session, message)
	default:
		utils.GetLogger().Warn("Unknown conversation state", zap.String("state", string(session.State)))
		session.SetState(models.StateGreeting)
		return "🤔 Something seems off. Let's start fresh. How can I help you book a flight?"
	}
}

// handleGreeting combines deterministic extraction with the oracle's read
// of the utterance, then jumps to the first unmet slot.
func (e *Engine) handleGreeting(ctx context.Context, session *models.ConversationSession, message string) string {
	analysis := e.analyze(ctx, session, message)

	if analysis.Intent != models.IntentBooking && !e.extractor.HasBookingIntent(message) {
		return welcomeMessage
	}

	e.mergeSlots(session, message, analysis)
	return e.nextStep(session)
}

func (e *Engine) analyze(ctx context.Context, session *models.ConversationSession, message string) models.NLUAnalysis {
	if e.gateway == nil {
		return nlu.FallbackAnalysis()
	}
	slots := models.NLUSlots{
		DepartureDate: session.Data.DepartureDate,
		Adults:        session.Data.Adults,
		Children:      session.Data.Children,
		Infants:       session.Data.Infants,
	}
	if session.Data.SourceCity != nil {
		slots.SourceCity = session.Data.SourceCity.Name
	}
	if session.Data.DestinationCity != nil {
		slots.DestinationCity = session.Data.DestinationCity.Name
	}
	return e.gateway.Analyze(ctx, message, slots)
}

// mergeSlots applies the oracle's extraction on top of the deterministic
// parsers. A slot already held by the session is never overwritten.
func (e *Engine) mergeSlots(session *models.ConversationSession, message string, analysis models.NLUAnalysis) {
	extracted := analysis.Extracted

	if extracted.SourceCity != "" && session.Data.SourceCity == nil {
		if cities := e.extractor.ExtractCities(extracted.SourceCity); len(cities) > 0 {
			session.Data.SourceCity = &cities[0]
		}
	}
	if extracted.DestinationCity != "" && session.Data.DestinationCity == nil {
		if cities := e.extractor.ExtractCities(extracted.DestinationCity); len(cities) > 0 {
			session.Data.DestinationCity = &cities[0]
		}
	}

	// Deterministic fallback only when the oracle filled neither city.
	if session.Data.SourceCity == nil && session.Data.DestinationCity == nil {
		cities := e.extractor.ExtractCities(message)
		switch {
		case len(cities) >= 2:
			session.Data.SourceCity = &cities[0]
			session.Data.DestinationCity = &cities[1]
		case len(cities) == 1:
			// A lone city named in passing is almost always where the
			// user wants to go.
			session.Data.DestinationCity = &cities[0]
		}
	}

	if session.Data.DepartureDate == "" {
		if extracted.DepartureDate != "" {
			session.Data.DepartureDate = extracted.DepartureDate
		} else if date, ok := e.extractor.ExtractDate(message); ok {
			session.Data.DepartureDate = date
		}
	}

	if session.Data.Adults <= 0 {
		if extracted.Adults > 0 {
			session.Data.Adults = extracted.Adults
			session.Data.Children = extracted.Children
			session.Data.Infants = extracted.Infants
		} else if counts, ok := e.extractor.ExtractPassengerCounts(message); ok && counts.Total() <= 9 {
			session.Data.Adults = counts.Adults
			session.Data.Children = counts.Children
			session.Data.Infants = counts.Infants
		}
	}
}

// nextStep inspects the slot set in fixed priority order and jumps to the
// first unmet requirement, or straight to the flight search when everything
// is filled. A single rich utterance can skip several states this way.
func (e *Engine) nextStep(session *models.ConversationSession) string {
	if session.Data.SourceCity == nil {
		session.SetState(models.StateCollectSource)
		return askSourceMessage
	}
	if session.Data.DestinationCity == nil {
		session.SetState(models.StateCollectDestination)
		return askDestinationMessage(session.Data.SourceCity.Name)
	}
	if session.Data.DepartureDate == "" {
		session.SetState(models.StateCollectDate)
		return askDateMessage(session.Data.DestinationCity.Name)
	}
	if session.Data.Adults <= 0 {
		session.SetState(models.StateCollectPassengers)
		return askPassengersMessage
	}
	session.SetState(models.StateShowFlights)
	return e.showFlights(session)
}

func (e *Engine) handleCollectSource(session *models.ConversationSession, message string) string {
	cities := e.extractor.ExtractCities(message)
	if len(cities) == 0 {
		return e.retryOrEscalate(session, retrySourceMessage)
	}
	session.Data.SourceCity = &cities[0]
	session.ResetRetry()
	return e.nextStep(session)
}

func (e *Engine) handleCollectDestination(session *models.ConversationSession, message string) string {
	cities := e.extractor.ExtractCities(message)
	if len(cities) == 0 {
		return e.retryOrEscalate(session, retryDestinationMessage)
	}

	destination := cities[0]
	source := session.Data.SourceCity

	if source != nil && destination.IATA == source.IATA {
		session.IncrementRetry()
		return sameCityMessage
	}

	if source != nil && !e.inventory.ValidateRoute(source.IATA, destination.IATA) {
		session.IncrementRetry()
		var names []string
		for _, iata := range e.inventory.DestinationsFrom(source.IATA) {
			names = append(names, e.cityName(iata))
		}
		return noRouteMessage(source.Name, destination.Name, names)
	}

	session.Data.DestinationCity = &destination
	session.ResetRetry()
	return e.nextStep(session)
}

func (e *Engine) handleCollectDate(session *models.ConversationSession, message string) string {
	date, ok := e.extractor.ExtractDate(message)
	if !ok {
		return e.retryOrEscalate(session, retryDateMessage)
	}
	session.Data.DepartureDate = date
	session.ResetRetry()
	return e.nextStep(session)
}

func (e *Engine) handleCollectPassengers(session *models.ConversationSession, message string) string {
	counts, ok := e.extractor.ExtractPassengerCounts(message)
	if ok && counts.Total() > 9 {
		session.IncrementRetry()
		return tooManyPassengersMessage
	}
	if !ok || counts.Total() == 0 {
		return e.retryOrEscalate(session, retryPassengersMessage)
	}
	session.Data.Adults = counts.Adults
	session.Data.Children = counts.Children
	session.Data.Infants = counts.Infants
	session.ResetRetry()
	return e.nextStep(session)
}

func (e *Engine) showFlights(session *models.ConversationSession) string {
	data := session.Data
	flights := e.inventory.Search(data.SourceCity.IATA, data.DestinationCity.IATA,
		data.Adults, data.Children, data.Infants)

	if len(flights) == 0 {
		return noFlightsMessage(data.SourceCity.Name, data.DestinationCity.Name, data.DepartureDate)
	}

	session.Context.AvailableFlights = flights
	session.SetState(models.StateCollectSelection)
	return flight.FormatFlights(flights)
}

func (e *Engine) handleCollectSelection(session *models.ConversationSession, message string) string {
	available := session.Context.AvailableFlights
	selection, ok := e.extractor.ExtractSelection(message)

	if !ok || selection < 1 || selection > len(available) {
		session.IncrementRetry()
		if session.Context.RetryCount >= e.maxRetries {
			return e.offerHumanSupport(session)
		}
		return invalidSelectionMessage(len(available))
	}

	selected := available[selection-1]
	session.Data.SelectedFlight = &selected
	session.SetState(models.StateCollectPassengerDetails)
	return flightSelectedMessage(selected, session.Data.Adults)
}

func (e *Engine) handleCollectPassengerDetails(session *models.ConversationSession, message string) string {
	passenger, ok := e.extractor.ExtractPassengerDetails(message)
	if !ok {
		return e.retryOrEscalate(session, passengerDetailsRetryMessage)
	}

	session.Data.Passengers = append(session.Data.Passengers, passenger)
	saved := len(session.Data.Passengers)

	// One record per turn until the adult count is covered.
	if saved < session.Data.Adults {
		session.ResetRetry()
		return nextPassengerMessage(saved, saved+1)
	}

	session.SetState(models.StateCollectSSR)
	return askSSRMessage
}

func (e *Engine) handleCollectSSR(session *models.ConversationSession, message string) string {
	lower := strings.ToLower(message)
	if intent.IsNegative(message) || strings.Contains(lower, "no special") || strings.Contains(lower, "skip") {
		session.Data.SpecialRequests = nil
	} else {
		var requests []models.SpecialServiceRequest
		for _, pref := range e.extractor.ExtractSSRRequests(message) {
			if ssr, ok := models.SSRCatalog[pref.Category][pref.Preference]; ok {
				requests = append(requests, ssr)
			}
		}
		session.Data.SpecialRequests = requests
	}

	session.SetState(models.StateConfirmBooking)
	return bookingSummaryMessage(session)
}

func (e *Engine) handleConfirmBooking(session *models.ConversationSession, message string) string {
	lower := strings.ToLower(message)
	switch {
	case intent.IsAffirmative(message) || strings.Contains(lower, "confirm"):
		return e.processBooking(session)
	case intent.IsNegative(message) || strings.Contains(lower, "cancel"):
		session.SetState(models.StateCompleted)
		return bookingCancelledMessage
	default:
		return confirmRetryMessage
	}
}

func (e *Engine) processBooking(session *models.ConversationSession) string {
	data := session.Data
	if data.SelectedFlight == nil || len(data.Passengers) == 0 {
		return bookingFailedMessage
	}

	booking := e.ledger.CreateBooking(*data.SelectedFlight, data.Passengers,
		"customer@example.com", session.PhoneNumber)

	if len(data.SpecialRequests) > 0 {
		if err := e.ledger.AddSpecialRequests(booking.PNR, data.SpecialRequests); err != nil {
			utils.GetLogger().Warn("Failed to attach special requests",
				zap.String("pnr", booking.PNR), zap.Error(err))
		}
	}
	if err := e.ledger.IssueTicket(booking.PNR); err != nil {
		utils.GetLogger().Warn("Failed to issue ticket", zap.String("pnr", booking.PNR), zap.Error(err))
	}

	session.Data.PNR = booking.PNR
	session.Data.BookingConfirmed = true
	session.SetState(models.StateCompleted)

	confirmed, ok := e.ledger.GetBooking(booking.PNR)
	if !ok {
		return bookingFailedMessage
	}
	return confirmed.ConfirmationMessage()
}

func (e *Engine) retryOrEscalate(session *models.ConversationSession, retryMessage string) string {
	session.IncrementRetry()
	if session.Context.RetryCount >= e.maxRetries {
		return e.offerHumanSupport(session)
	}
	return retryMessage
}

// offerHumanSupport ends the automated flow after repeated failures at one
// collection step, whichever step it was.
func (e *Engine) offerHumanSupport(session *models.ConversationSession) string {
	utils.Escalations.Inc()
	reference := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	utils.GetLogger().Info("Escalating to human support",
		zap.String("phone", utils.MaskPhone(session.PhoneNumber)),
		zap.String("state", string(session.State)),
		zap.String("reference", reference))
	session.SetState(models.StateCompleted)
	return humanSupportMessage(reference)
}

func (e *Engine) cityName(iata string) string {
	if city, ok := e.extractor.CityByIATA(iata); ok {
		return city.Name
	}
	return iata
}
