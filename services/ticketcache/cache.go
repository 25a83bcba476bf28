package ticketcache

import (
	"context"
	"time"

	"flywise/models"
)

// DefaultTTL bounds how long parsed-ticket context outlives the session
// that produced it.
const DefaultTTL = 24 * time.Hour

// Cache holds parsed-ticket records keyed by normalized phone number.
// A missing, expired or corrupt record is always reported as a plain miss.
type Cache interface {
	Store(ctx context.Context, phone string, ticket *models.TicketDetails, comparison *models.PriceComparison) error
	Get(ctx context.Context, phone string) (*models.TicketRecord, bool)
	Clear(ctx context.Context, phone string) error
	CleanupExpired(ctx context.Context) (int, error)
}

func newRecord(phone string, ticket *models.TicketDetails, comparison *models.PriceComparison, ttl time.Duration) models.TicketRecord {
	now := time.Now().UTC()
	return models.TicketRecord{
		PhoneNumber:     phone,
		StoredAt:        now,
		ExpiresAt:       now.Add(ttl),
		TicketInfo:      ticket,
		PriceComparison: comparison,
	}
}
