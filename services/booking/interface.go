package booking

import (
	"context"

	"bookmychair/models"
)

// BookingService is the booking ledger with its conflict guard.
type BookingService interface {
	CreateBooking(ctx context.Context, user models.User, in models.NewBookingInput) (*models.Booking, error)
	ListMyBookings(ctx context.Context, userID string) ([]models.Booking, error)
	ListAllBookings(ctx context.Context) ([]models.Booking, error)
	CancelBooking(ctx context.Context, actor models.User, bookingID string) (*models.Booking, error)
}

// CancelPolicy switches the hardened cancellation rules on.
type CancelPolicy struct {
	// StrictCancel rejects cancelling an already cancelled booking.
	StrictCancel bool
	// RequireOwner stops employees cancelling other users' bookings.
	// Admins are never restricted.
	RequireOwner bool
}
