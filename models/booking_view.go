package models

import (
	"strings"
	"time"
)

// Read-side phases of a booking. Computed per request, never stored.
const (
	PhaseUpcoming  = "upcoming"
	PhaseActive    = "active"
	PhaseCompleted = "completed"
	PhaseCancelled = "cancelled"
)

const (
	dateLayout = "2006-01-02"
	slotLayout = "15:04"
)

// BookingView is a booking plus its phase at the time of the read.
type BookingView struct {
	Booking `bson:",inline"`
	Phase   string `json:"phase"`
}

// SlotBounds returns the start and end of a booking's slot on its date, in
// loc. ok is false when either the date or the slot does not parse.
func SlotBounds(date, timeSlot string, loc *time.Location) (start, end time.Time, ok bool) {
	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	from, to, found := strings.Cut(timeSlot, "-")
	if !found {
		return time.Time{}, time.Time{}, false
	}
	s, err := time.Parse(slotLayout, strings.TrimSpace(from))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	e, err := time.Parse(slotLayout, strings.TrimSpace(to))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	start = day.Add(time.Duration(s.Hour())*time.Hour + time.Duration(s.Minute())*time.Minute)
	end = day.Add(time.Duration(e.Hour())*time.Hour + time.Duration(e.Minute())*time.Minute)
	if !end.After(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// PhaseAt derives the phase of b at now. Unparseable dates or slots leave a
// confirmed booking upcoming.
func PhaseAt(b Booking, now time.Time) string {
	if b.Status == BookingCancelled {
		return PhaseCancelled
	}
	start, end, ok := SlotBounds(b.Date, b.TimeSlot, now.Location())
	switch {
	case !ok, now.Before(start):
		return PhaseUpcoming
	case now.Before(end):
		return PhaseActive
	default:
		return PhaseCompleted
	}
}

// ViewsAt projects bookings into views at now, preserving order.
func ViewsAt(bookings []Booking, now time.Time) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, BookingView{Booking: b, Phase: PhaseAt(b, now)})
	}
	return views
}
