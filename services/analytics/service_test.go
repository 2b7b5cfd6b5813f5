package analytics

import (
	"context"
	"testing"
	"time"

	bookingRepo "bookmychair/database/repository/booking"
	memoryRepo "bookmychair/database/repository/memory"
	"bookmychair/models"
)

func seed(t *testing.T, store *memoryRepo.BookingStore, rows ...[3]string) {
	t.Helper()
	for i, r := range rows {
		b := &models.Booking{
			UserID:    "u",
			ChairID:   r[0] + "-" + string(rune('a'+i)),
			ChairType: r[0],
			Date:      r[1],
			TimeSlot:  r[2],
			Status:    models.BookingConfirmed,
		}
		if err := store.Create(context.Background(), b); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestPopularChairTypes(t *testing.T) {
	store := memoryRepo.NewBookingStore()
	seed(t, store,
		[3]string{"Ergonomic", "2025-07-01", "09:00 - 10:00"},
		[3]string{"Ergonomic", "2025-07-01", "10:00 - 11:00"},
		[3]string{"BeanBag", "2025-07-01", "09:00 - 10:00"},
	)
	svc := &DefaultAnalyticsService{Repo: store}

	rows, err := svc.PopularChairTypes(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []models.ChairTypeCount{{Type: "Ergonomic", Bookings: 2}, {Type: "BeanBag", Bookings: 1}}
	if len(rows) != 2 || rows[0] != want[0] || rows[1] != want[1] {
		t.Fatalf("rows = %v, want %v", rows, want)
	}

	total := 0
	for _, r := range rows {
		total += r.Bookings
	}
	all, _ := store.ListAll(context.Background())
	if total != len(all) {
		t.Fatalf("counts sum to %d, ledger has %d", total, len(all))
	}
}

func TestPopularChairTypesEmpty(t *testing.T) {
	svc := &DefaultAnalyticsService{Repo: memoryRepo.NewBookingStore()}
	rows, err := svc.PopularChairTypes(context.Background())
	if err != nil || rows == nil || len(rows) != 0 {
		t.Fatalf("rows = %#v, %v", rows, err)
	}
}

func TestPeakHoursByDate(t *testing.T) {
	store := memoryRepo.NewBookingStore()
	seed(t, store,
		[3]string{"A", "2025-07-01", "09:00 - 10:00"},
		[3]string{"B", "2025-07-02", "09:00 - 10:00"},
		[3]string{"C", "2025-07-01T13:30:00Z", "13:00 - 14:00"},
		[3]string{"D", "someday", "13:00 - 14:00"},
	)
	svc := &DefaultAnalyticsService{Repo: store}

	rows, err := svc.PeakHours(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []models.PeakHour{{Hour: "12:00 AM", Bookings: 2}, {Hour: "1:00 PM", Bookings: 1}}
	if len(rows) != len(want) {
		t.Fatalf("rows = %v, want %v", rows, want)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("rows[%d] = %v, want %v", i, rows[i], want[i])
		}
		if rows[i].Hour == "0:00 AM" {
			t.Error("midnight rendered as 0:00 AM")
		}
	}
}

func TestPeakHoursByCreatedAt(t *testing.T) {
	store := memoryRepo.NewBookingStore().WithClock(func() time.Time {
		return time.Date(2025, 6, 30, 12, 5, 0, 0, time.UTC)
	})
	seed(t, store, [3]string{"A", "2025-07-01", "09:00 - 10:00"})
	svc := &DefaultAnalyticsService{Repo: store, HourSource: bookingRepo.HourFieldCreatedAt}

	rows, err := svc.PeakHours(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0] != (models.PeakHour{Hour: "12:00 PM", Bookings: 1}) {
		t.Fatalf("rows = %v", rows)
	}
}
