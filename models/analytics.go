package models

import (
	"fmt"
	"time"
)

// ChairTypeCount is one row of the popular-chairs report.
type ChairTypeCount struct {
	Type     string `bson:"type" json:"type"`
	Bookings int    `bson:"bookings" json:"bookings"`
}

// HourCount is a raw peak-hours row; Hour is 0-23.
type HourCount struct {
	Hour     int `bson:"hour" json:"hour"`
	Bookings int `bson:"bookings" json:"bookings"`
}

// PeakHour is a formatted peak-hours row, e.g. {"9:00 AM", 23}.
type PeakHour struct {
	Hour     string `json:"hour"`
	Bookings int    `json:"bookings"`
}

// FormatHour renders 0-23 on a 12-hour clock: 0 is "12:00 AM", 12 is "12:00 PM".
func FormatHour(hour int) string {
	h := hour % 12
	if h == 0 {
		h = 12
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d:00 %s", h, suffix)
}

var storedDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseStoredDate reads a booking date the way the store's date conversion
// does: a bare calendar date is midnight UTC.
func ParseStoredDate(s string) (time.Time, bool) {
	for _, layout := range storedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
