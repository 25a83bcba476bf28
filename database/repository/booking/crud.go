package bookingRepo

import (
	"context"

	"flywise/models"
	"flywise/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Archive upserts a booking keyed by PNR.
func (r *mongoBookingRepo) Archive(ctx context.Context, booking models.Booking) error {
	booking.ContactPhone = utils.NormalizePhone(booking.ContactPhone)
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"pnr": booking.PNR}, booking, opts)
	return err
}

// GetByPNR returns an archived booking by its PNR.
func (r *mongoBookingRepo) GetByPNR(ctx context.Context, pnr string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"pnr": pnr}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByPhone fetches all archived bookings for a phone number.
func (r *mongoBookingRepo) GetByPhone(ctx context.Context, phone string) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"contactPhone": utils.NormalizePhone(phone)})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
