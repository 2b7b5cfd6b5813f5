package models

import (
	"strings"
	"time"
)

// Booking statuses. Cancelled is terminal.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking is a reservation of one chair for one date and time slot. The chair
// fields are a snapshot taken when the booking was made.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	ChairID       string    `bson:"chairId" json:"chairId"`
	ChairName     string    `bson:"chairName" json:"chairName"`
	ChairType     string    `bson:"chairType" json:"chairType"`
	ChairLocation string    `bson:"chairLocation" json:"chairLocation"`
	ChairFeatures []string  `bson:"chairFeatures" json:"chairFeatures"`
	ChairStatus   string    `bson:"chairStatus" json:"chairStatus"`
	Date          string    `bson:"date" json:"date"`
	TimeSlot      string    `bson:"timeSlot" json:"timeSlot"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SlotKey identifies the (chair, date, slot) triple a confirmed booking holds.
type SlotKey struct {
	ChairID  string
	Date     string
	TimeSlot string
}

func (b Booking) SlotKey() SlotKey {
	return SlotKey{ChairID: b.ChairID, Date: b.Date, TimeSlot: b.TimeSlot}
}

func (k SlotKey) String() string {
	return k.ChairID + "|" + k.Date + "|" + k.TimeSlot
}

// NewBookingInput is the body of a book-chair request.
type NewBookingInput struct {
	ChairID       string   `json:"chairId" binding:"required"`
	ChairName     string   `json:"chairName" binding:"required"`
	ChairType     string   `json:"chairType" binding:"required"`
	ChairLocation string   `json:"chairLocation" binding:"required"`
	ChairFeatures []string `json:"chairFeatures" binding:"required"`
	ChairStatus   string   `json:"chairStatus" binding:"required,oneof=available booked maintenance"`
	Date          string   `json:"date" binding:"required"`
	TimeSlot      string   `json:"timeSlot" binding:"required"`
}

func (in *NewBookingInput) Normalize() {
	in.ChairID = strings.TrimSpace(in.ChairID)
	in.ChairName = strings.TrimSpace(in.ChairName)
	in.ChairType = strings.TrimSpace(in.ChairType)
	in.ChairLocation = strings.TrimSpace(in.ChairLocation)
	in.ChairStatus = strings.TrimSpace(in.ChairStatus)
	in.Date = strings.TrimSpace(in.Date)
	in.TimeSlot = strings.TrimSpace(in.TimeSlot)
}

// Complete reports whether every field is present.
func (in NewBookingInput) Complete() bool {
	return in.ChairID != "" && in.ChairName != "" && in.ChairType != "" &&
		in.ChairLocation != "" && in.ChairFeatures != nil && in.ChairStatus != "" &&
		in.Date != "" && in.TimeSlot != ""
}

// ValidSnapshotStatus reports whether s may be recorded on a booking.
// Blocked chairs cannot be booked.
func ValidSnapshotStatus(s string) bool {
	switch s {
	case ChairAvailable, ChairBooked, ChairMaintenance:
		return true
	}
	return false
}
