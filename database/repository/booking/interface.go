package bookingRepo

import (
	"context"

	"flywise/database"
	"flywise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingArchiveRepository persists confirmed bookings for audit and lookup
// beyond the in-memory ledger's lifetime.
type BookingArchiveRepository interface {
	Archive(ctx context.Context, booking models.Booking) error
	GetByPNR(ctx context.Context, pnr string) (*models.Booking, error)
	GetByPhone(ctx context.Context, phone string) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingArchiveRepository instance using MongoDB.
func NewMongoBookingRepo() BookingArchiveRepository {
	db := database.MongoClient.Database("flywise")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
