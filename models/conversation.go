package models

import "time"

// ConversationState identifies where a session sits in the booking dialogue.
type ConversationState string

const (
	StateGreeting                ConversationState = "greeting"
	StateCollectSource           ConversationState = "collect_source"
	StateCollectDestination      ConversationState = "collect_destination"
	StateCollectDate             ConversationState = "collect_date"
	StateCollectPassengers       ConversationState = "collect_passengers"
	StateShowFlights             ConversationState = "show_flights"
	StateCollectSelection        ConversationState = "collect_selection"
	StateCollectPassengerDetails ConversationState = "collect_passenger_details"
	StateCollectSSR              ConversationState = "collect_ssr"
	StateConfirmBooking          ConversationState = "confirm_booking"
	StateCollectOfficeID         ConversationState = "collect_office_id"
	StateCompleted               ConversationState = "completed"
)

// BookingData holds the slots the dialogue collects before a booking can be made.
type BookingData struct {
	SourceCity       *CityRecord             `json:"sourceCity,omitempty"`
	DestinationCity  *CityRecord             `json:"destinationCity,omitempty"`
	DepartureDate    string                  `json:"departureDate,omitempty"` // YYYY-MM-DD
	Adults           int                     `json:"adults"`
	Children         int                     `json:"children"`
	Infants          int                     `json:"infants"`
	SelectedFlight   *Flight                 `json:"selectedFlight,omitempty"`
	Passengers       []Passenger             `json:"passengers,omitempty"`
	SpecialRequests  []SpecialServiceRequest `json:"specialRequests,omitempty"`
	PNR              string                  `json:"pnr,omitempty"`
	BookingConfirmed bool                    `json:"bookingConfirmed"`
}

// SessionContext is the transient working memory of a session. It never
// survives session expiry except through the persistent ticket cache.
type SessionContext struct {
	LastMessage      string           `json:"lastMessage,omitempty"`
	RetryCount       int              `json:"retryCount"`
	AvailableFlights []Flight         `json:"availableFlights,omitempty"`
	ParsedTicket     *TicketDetails   `json:"parsedTicket,omitempty"`
	PriceComparison  *PriceComparison `json:"priceComparison,omitempty"`
}

// ConversationSession is the per-phone-number dialogue state. It is owned by
// the session store; the dialogue engine receives it for one turn at a time
// under the store's per-phone lock.
type ConversationSession struct {
	PhoneNumber  string            `json:"phoneNumber"`
	State        ConversationState `json:"state"`
	CreatedAt    time.Time         `json:"createdAt"`
	LastActivity time.Time         `json:"lastActivity"`
	Data         BookingData       `json:"data"`
	Context      SessionContext    `json:"context"`
}

// NewConversationSession constructs a fresh session in the greeting state.
func NewConversationSession(phoneNumber string) *ConversationSession {
	now := time.Now()
	return &ConversationSession{
		PhoneNumber:  phoneNumber,
		State:        StateGreeting,
		CreatedAt:    now,
		LastActivity: now,
	}
}

// Touch advances the last-activity timestamp. LastActivity is monotonic
// non-decreasing; a stale clock reading never moves it backwards.
func (s *ConversationSession) Touch() {
	if now := time.Now(); now.After(s.LastActivity) {
		s.LastActivity = now
	}
}

// IsExpired reports whether the session has been idle longer than ttl.
func (s *ConversationSession) IsExpired(ttl time.Duration) bool {
	return time.Since(s.LastActivity) > ttl
}

// SetState moves the session to a new state and resets the retry counter.
func (s *ConversationSession) SetState(state ConversationState) {
	s.State = state
	s.Context.RetryCount = 0
	s.Touch()
}

// IncrementRetry bumps the retry counter for the current state.
func (s *ConversationSession) IncrementRetry() {
	s.Context.RetryCount++
	s.Touch()
}

// ResetRetry clears the retry counter without changing state.
func (s *ConversationSession) ResetRetry() {
	s.Context.RetryCount = 0
	s.Touch()
}

// ResetBookingData clears all collected slots so a new booking can start.
// Transient ticket context is preserved; post-booking questions about an
// uploaded ticket must keep working after a reset.
func (s *ConversationSession) ResetBookingData() {
	s.Data = BookingData{}
	s.Context.AvailableFlights = nil
	s.Touch()
}

// TotalPassengers returns the combined passenger count across categories.
func (s *ConversationSession) TotalPassengers() int {
	return s.Data.Adults + s.Data.Children + s.Data.Infants
}
