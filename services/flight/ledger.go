package flight

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"flywise/models"
	"flywise/utils"

	"go.uber.org/zap"
)

const pnrAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const pnrLength = 6

// BookingArchiver persists confirmed bookings outside the ledger's memory.
// Archive failures are logged, never surfaced to the conversation.
type BookingArchiver interface {
	Archive(ctx context.Context, booking models.Booking) error
}

// Ledger issues PNRs and owns the booking records for this process.
type Ledger struct {
	mu       sync.RWMutex
	bookings map[string]*models.Booking
	rng      *rand.Rand
	archiver BookingArchiver
}

func NewLedger(archiver BookingArchiver) *Ledger {
	return &Ledger{
		bookings: make(map[string]*models.Booking),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		archiver: archiver,
	}
}

// SetRandSource replaces the PNR generator's randomness. Tests use this to
// force collisions.
func (l *Ledger) SetRandSource(src rand.Source) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rng = rand.New(src)
}

// generatePNR must be called with l.mu held.
func (l *Ledger) generatePNR() string {
	for {
		b := make([]byte, pnrLength)
		for i := range b {
			b[i] = pnrAlphabet[l.rng.Intn(len(pnrAlphabet))]
		}
		pnr := string(b)
		if _, exists := l.bookings[pnr]; !exists {
			return pnr
		}
	}
}

// CreateBooking records a confirmed booking under a freshly issued PNR.
func (l *Ledger) CreateBooking(flight models.Flight, passengers []models.Passenger, contactEmail, contactPhone string) *models.Booking {
	l.mu.Lock()
	pnr := l.generatePNR()
	booking := &models.Booking{
		PNR:          pnr,
		Flight:       flight,
		Passengers:   passengers,
		ContactEmail: contactEmail,
		ContactPhone: contactPhone,
		BookingDate:  time.Now().UTC(),
		Status:       models.BookingStatusConfirmed,
	}
	l.bookings[pnr] = booking
	l.mu.Unlock()

	utils.BookingsIssued.Inc()
	utils.GetLogger().Info("Booking created",
		zap.String("pnr", pnr),
		zap.String("flight", flight.FlightID),
		zap.String("route", flight.Origin+"-"+flight.Destination))

	if l.archiver != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := l.archiver.Archive(ctx, *booking); err != nil {
			utils.GetLogger().Warn("Booking archive failed", zap.String("pnr", pnr), zap.Error(err))
		}
	}
	return booking
}

// AddSpecialRequests appends SSR records to an existing booking.
func (l *Ledger) AddSpecialRequests(pnr string, requests []models.SpecialServiceRequest) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	booking, ok := l.bookings[pnr]
	if !ok {
		return fmt.Errorf("unknown PNR %s", pnr)
	}
	booking.SpecialRequests = append(booking.SpecialRequests, requests...)
	return nil
}

// IssueTicket marks the booking's ticket as issued.
func (l *Ledger) IssueTicket(pnr string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	booking, ok := l.bookings[pnr]
	if !ok {
		return fmt.Errorf("unknown PNR %s", pnr)
	}
	booking.TicketIssued = true
	return nil
}

// SetOfficeID attaches a corporate office reference to an existing booking.
func (l *Ledger) SetOfficeID(pnr, officeID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	booking, ok := l.bookings[pnr]
	if !ok {
		return fmt.Errorf("unknown PNR %s", pnr)
	}
	booking.OfficeID = officeID
	return nil
}

// GetBooking returns a copy of the booking for a PNR.
func (l *Ledger) GetBooking(pnr string) (models.Booking, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	booking, ok := l.bookings[pnr]
	if !ok {
		return models.Booking{}, false
	}
	return *booking, true
}

// Count returns the number of bookings held in memory.
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings)
}
