package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Health gin.HandlerFunc

	// Booking endpoints
	BookChair      gin.HandlerFunc
	GetMyBookings  gin.HandlerFunc
	GetAllBookings gin.HandlerFunc
	CancelBooking  gin.HandlerFunc

	// Chair endpoints
	AddChair       gin.HandlerFunc
	GetChairs      gin.HandlerFunc
	BlockChair     gin.HandlerFunc
	SetChairStatus gin.HandlerFunc
	DeleteChair    gin.HandlerFunc

	// Analytics endpoints
	PopularChairs gin.HandlerFunc
	PeakHours     gin.HandlerFunc

	// Change notifications
	Events gin.HandlerFunc
}

// NewHandlerBundle wires the handler methods into a bundle.
func NewHandlerBundle(b *BookingHandler, ch *ChairHandler, a *AnalyticsHandler, ev *EventsHandler, health gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		Health: health,

		BookChair:      b.BookChairHandler,
		GetMyBookings:  b.GetMyBookingsHandler,
		GetAllBookings: b.GetAllBookingsHandler,
		CancelBooking:  b.CancelBookingHandler,

		AddChair:       ch.AddChairHandler,
		GetChairs:      ch.GetChairsHandler,
		BlockChair:     ch.BlockChairHandler,
		SetChairStatus: ch.SetChairStatusHandler,
		DeleteChair:    ch.DeleteChairHandler,

		PopularChairs: a.PopularChairsHandler,
		PeakHours:     a.PeakHoursHandler,

		Events: ev.StreamHandler,
	}
}
