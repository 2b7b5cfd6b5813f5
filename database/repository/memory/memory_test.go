package memoryRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookmychair/database/repository"
	bookingRepo "bookmychair/database/repository/booking"
	"bookmychair/models"
)

func newBooking(chairType, date, slot string) *models.Booking {
	return &models.Booking{
		UserID:        "u1",
		ChairID:       "C-" + chairType,
		ChairType:     chairType,
		ChairFeatures: []string{"armrest"},
		Date:          date,
		TimeSlot:      slot,
		Status:        models.BookingConfirmed,
	}
}

func TestChairStoreRefMatchesIDOrCode(t *testing.T) {
	ctx := context.Background()
	s := NewChairStore()
	c := &models.Chair{ChairID: "C-1", ChairType: "Ergonomic", ChairStatus: models.ChairAvailable, ChairFeatures: []string{}}
	if err := s.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == "" {
		t.Fatal("Create did not assign an id")
	}

	for _, ref := range []string{c.ID, "C-1"} {
		got, err := s.GetByRef(ctx, ref)
		if err != nil || got.ChairID != "C-1" {
			t.Fatalf("GetByRef(%q) = %v, %v", ref, got, err)
		}
	}

	if err := s.Create(ctx, &models.Chair{ChairID: "C-1"}); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("duplicate code err = %v", err)
	}

	updated, err := s.UpdateStatus(ctx, "C-1", models.ChairBlocked)
	if err != nil || updated.ChairStatus != models.ChairBlocked {
		t.Fatalf("UpdateStatus = %v, %v", updated, err)
	}
	if _, err := s.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.GetByRef(ctx, "C-1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("after delete err = %v", err)
	}
}

func TestChairStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewChairStore()
	_ = s.Create(ctx, &models.Chair{ChairID: "C-1", ChairFeatures: []string{"a"}})

	got, _ := s.GetByRef(ctx, "C-1")
	got.ChairFeatures[0] = "mutated"

	again, _ := s.GetByRef(ctx, "C-1")
	if again.ChairFeatures[0] != "a" {
		t.Fatal("store leaked its internal slice")
	}
}

func TestBookingStoreRejectsSecondConfirmed(t *testing.T) {
	ctx := context.Background()
	s := NewBookingStore()

	first := newBooking("Ergonomic", "2025-07-01", "09:00 - 12:00")
	if err := s.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Create(ctx, newBooking("Ergonomic", "2025-07-01", "09:00 - 12:00")); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("second confirmed err = %v", err)
	}

	if _, err := s.SetStatus(ctx, first.ID, models.BookingCancelled); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if taken, _ := s.ExistsConfirmed(ctx, first.SlotKey()); taken {
		t.Fatal("cancelled booking still holds the slot")
	}
	if err := s.Create(ctx, newBooking("Ergonomic", "2025-07-01", "09:00 - 12:00")); err != nil {
		t.Fatalf("rebook after cancel: %v", err)
	}

	all, _ := s.ListAll(ctx)
	if len(all) != 2 {
		t.Fatalf("ListAll len = %d, want 2", len(all))
	}
	if all[0].ID != first.ID {
		t.Fatal("ListAll is not in insertion order")
	}
}

func TestBookingStoreCountByChairType(t *testing.T) {
	ctx := context.Background()
	s := NewBookingStore()
	_ = s.Create(ctx, newBooking("Ergonomic", "2025-07-01", "09:00 - 10:00"))
	_ = s.Create(ctx, newBooking("Ergonomic", "2025-07-02", "09:00 - 10:00"))
	_ = s.Create(ctx, newBooking("BeanBag", "2025-07-01", "09:00 - 10:00"))

	rows, err := s.CountByChairType(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []models.ChairTypeCount{{Type: "Ergonomic", Bookings: 2}, {Type: "BeanBag", Bookings: 1}}
	if len(rows) != len(want) {
		t.Fatalf("rows = %v", rows)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("rows[%d] = %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestBookingStoreCountByHour(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 6, 30, 15, 20, 0, 0, time.UTC)
	s := NewBookingStore().WithClock(func() time.Time { return created })

	_ = s.Create(ctx, newBooking("A", "2025-07-01", "09:00 - 10:00"))
	_ = s.Create(ctx, newBooking("B", "2025-07-01T09:15:00Z", "09:00 - 10:00"))
	_ = s.Create(ctx, newBooking("C", "next week", "09:00 - 10:00"))

	byDate, err := s.CountByHour(ctx, bookingRepo.HourFieldDate)
	if err != nil {
		t.Fatal(err)
	}
	want := []models.HourCount{{Hour: 0, Bookings: 1}, {Hour: 9, Bookings: 1}}
	if len(byDate) != len(want) || byDate[0] != want[0] || byDate[1] != want[1] {
		t.Fatalf("by date = %v, want %v", byDate, want)
	}

	byCreated, err := s.CountByHour(ctx, bookingRepo.HourFieldCreatedAt)
	if err != nil {
		t.Fatal(err)
	}
	if len(byCreated) != 1 || byCreated[0] != (models.HourCount{Hour: 15, Bookings: 3}) {
		t.Fatalf("by createdAt = %v", byCreated)
	}

	if _, err := s.CountByHour(ctx, "chairType"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}
