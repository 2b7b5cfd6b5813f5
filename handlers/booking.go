package handlers

import (
	"net/http"
	"time"

	"bookmychair/models"
	"bookmychair/services/booking"
	"bookmychair/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the booking ledger.
type BookingHandler struct {
	Service booking.BookingService
	Now     func() time.Time
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc, Now: time.Now}
}

// BookChairHandler handles POST /bookings.
func (h *BookingHandler) BookChairHandler(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	var in models.NewBookingInput
	if !bindBody(c, &in, "All fields required.") {
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), user, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking confirmed.", "booking": created})
}

// GetMyBookingsHandler handles GET /bookings/me. Each booking carries its
// phase as of the request.
func (h *BookingHandler) GetMyBookingsHandler(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	bookings, err := h.Service.ListMyBookings(c.Request.Context(), user.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": models.ViewsAt(bookings, h.Now())})
}

// GetAllBookingsHandler handles GET /bookings.
func (h *BookingHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListAllBookings(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBookingHandler handles PUT /bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	user, ok := mustUser(c)
	if !ok {
		return
	}
	cancelled, err := h.Service.CancelBooking(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled.", "booking": cancelled})
}
