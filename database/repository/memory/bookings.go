package memoryRepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"bookmychair/database/repository"
	bookingRepo "bookmychair/database/repository/booking"
	"bookmychair/models"

	"github.com/google/uuid"
)

type BookingStore struct {
	mu       sync.RWMutex
	bookings []models.Booking
	now      func() time.Time
}

var _ bookingRepo.BookingRepository = (*BookingStore)(nil)

func NewBookingStore() *BookingStore {
	return &BookingStore{now: time.Now}
}

// WithClock overrides the creation timestamp source.
func (s *BookingStore) WithClock(now func() time.Time) *BookingStore {
	s.now = now
	return s
}

func (s *BookingStore) Create(_ context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if booking.Status == models.BookingConfirmed && s.confirmedLocked(booking.SlotKey()) {
		return fmt.Errorf("slot %s: %w", booking.SlotKey(), repository.ErrDuplicate)
	}
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := s.now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	s.bookings = append(s.bookings, cloneBooking(*booking))
	return nil
}

func (s *BookingStore) ExistsConfirmed(_ context.Context, key models.SlotKey) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.confirmedLocked(key), nil
}

func (s *BookingStore) confirmedLocked(key models.SlotKey) bool {
	for _, b := range s.bookings {
		if b.Status == models.BookingConfirmed && b.SlotKey() == key {
			return true
		}
	}
	return false
}

func (s *BookingStore) GetByID(_ context.Context, id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			c := cloneBooking(b)
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *BookingStore) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (s *BookingStore) ListAll(_ context.Context) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, cloneBooking(b))
	}
	return out, nil
}

func (s *BookingStore) SetStatus(_ context.Context, id, status string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		b := &s.bookings[i]
		if status == models.BookingConfirmed && b.Status != models.BookingConfirmed && s.confirmedLocked(b.SlotKey()) {
			return nil, fmt.Errorf("booking %s: %w", id, repository.ErrDuplicate)
		}
		b.Status = status
		b.UpdatedAt = s.now().UTC()
		c := cloneBooking(*b)
		return &c, nil
	}
	return nil, repository.ErrNotFound
}

func (s *BookingStore) CountByChairType(_ context.Context) ([]models.ChairTypeCount, error) {
	s.mu.RLock()
	counts := map[string]int{}
	for _, b := range s.bookings {
		counts[b.ChairType]++
	}
	s.mu.RUnlock()

	rows := make([]models.ChairTypeCount, 0, len(counts))
	for t, n := range counts {
		rows = append(rows, models.ChairTypeCount{Type: t, Bookings: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Bookings != rows[j].Bookings {
			return rows[i].Bookings > rows[j].Bookings
		}
		return rows[i].Type < rows[j].Type
	})
	return rows, nil
}

func (s *BookingStore) CountByHour(_ context.Context, field string) ([]models.HourCount, error) {
	var counts [24]int
	s.mu.RLock()
	for _, b := range s.bookings {
		var (
			at time.Time
			ok bool
		)
		switch field {
		case bookingRepo.HourFieldDate:
			at, ok = models.ParseStoredDate(b.Date)
		case bookingRepo.HourFieldCreatedAt:
			at, ok = b.CreatedAt.UTC(), !b.CreatedAt.IsZero()
		default:
			s.mu.RUnlock()
			return nil, fmt.Errorf("unsupported hour field %q", field)
		}
		if ok {
			counts[at.Hour()]++
		}
	}
	s.mu.RUnlock()

	rows := []models.HourCount{}
	for h, n := range counts {
		if n > 0 {
			rows = append(rows, models.HourCount{Hour: h, Bookings: n})
		}
	}
	return rows, nil
}

func (s *BookingStore) EnsureIndexes(context.Context) error { return nil }

func cloneBooking(b models.Booking) models.Booking {
	if b.ChairFeatures != nil {
		b.ChairFeatures = append([]string{}, b.ChairFeatures...)
	}
	return b
}
