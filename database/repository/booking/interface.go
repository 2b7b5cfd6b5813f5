// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"bookmychair/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Fields the peak-hours rollup can group on.
const (
	HourFieldDate      = "date"
	HourFieldCreatedAt = "createdAt"
)

// BookingRepository is the booking ledger store. Create fails with
// repository.ErrDuplicate when a confirmed booking already holds the slot.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	ExistsConfirmed(ctx context.Context, key models.SlotKey) (bool, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
	SetStatus(ctx context.Context, id, status string) (*models.Booking, error)
	CountByChairType(ctx context.Context) ([]models.ChairTypeCount, error)
	CountByHour(ctx context.Context, field string) ([]models.HourCount, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB BookingRepository on db.bookings.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
