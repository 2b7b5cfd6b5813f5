package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	memoryRepo "bookmychair/database/repository/memory"
	"bookmychair/models"
	"bookmychair/services/apperr"
)

var (
	alice = models.User{ID: "alice", Role: models.RoleEmployee}
	bob   = models.User{ID: "bob", Role: models.RoleEmployee}
	admin = models.User{ID: "root", Role: models.RoleAdmin}
)

func validInput() models.NewBookingInput {
	return models.NewBookingInput{
		ChairID:       "C-101",
		ChairName:     "Aeron",
		ChairType:     "Ergonomic",
		ChairLocation: "Floor 1",
		ChairFeatures: []string{"Lumbar support"},
		ChairStatus:   models.ChairAvailable,
		Date:          "2025-07-01",
		TimeSlot:      "09:00 - 12:00",
	}
}

func newService(policy CancelPolicy) *DefaultBookingService {
	return NewBookingService(memoryRepo.NewBookingStore(), policy, nil)
}

func TestCreateBookingRequiresAllFields(t *testing.T) {
	svc := newService(CancelPolicy{})
	for _, mutate := range []func(*models.NewBookingInput){
		func(in *models.NewBookingInput) { in.ChairID = "" },
		func(in *models.NewBookingInput) { in.ChairFeatures = nil },
		func(in *models.NewBookingInput) { in.Date = "  " },
		func(in *models.NewBookingInput) { in.TimeSlot = "" },
		func(in *models.NewBookingInput) { in.ChairStatus = "" },
	} {
		in := validInput()
		mutate(&in)
		_, err := svc.CreateBooking(context.Background(), alice, in)
		var verr *apperr.ValidationError
		if !errors.As(err, &verr) || verr.Message != "All fields required." {
			t.Fatalf("err = %v, want validation", err)
		}
	}
}

func TestCreateBookingRejectsBlockedSnapshot(t *testing.T) {
	in := validInput()
	in.ChairStatus = models.ChairBlocked
	_, err := newService(CancelPolicy{}).CreateBooking(context.Background(), alice, in)
	var verr *apperr.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestCreateBookingConflictAndRebook(t *testing.T) {
	ctx := context.Background()
	svc := newService(CancelPolicy{})

	first, err := svc.CreateBooking(ctx, alice, validInput())
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if first.Status != models.BookingConfirmed || first.UserID != "alice" {
		t.Fatalf("unexpected booking %+v", first)
	}

	_, err = svc.CreateBooking(ctx, bob, validInput())
	var conflict *apperr.ConflictError
	if !errors.As(err, &conflict) || conflict.Message != "Chair is already booked for this time slot." {
		t.Fatalf("second booking err = %v", err)
	}

	other := validInput()
	other.TimeSlot = "13:00 - 17:00"
	if _, err := svc.CreateBooking(ctx, bob, other); err != nil {
		t.Fatalf("different slot: %v", err)
	}

	if _, err := svc.CancelBooking(ctx, alice, first.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.CreateBooking(ctx, bob, validInput()); err != nil {
		t.Fatalf("rebook after cancel: %v", err)
	}
}

func TestCreateBookingConcurrentSameSlot(t *testing.T) {
	ctx := context.Background()
	svc := newService(CancelPolicy{})

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateBooking(ctx, alice, validInput())
			var conflict *apperr.ConflictError
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.As(err, &conflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if ok != 1 || conflicts != workers-1 {
		t.Fatalf("ok=%d conflicts=%d", ok, conflicts)
	}
	if n := svc.locks.size(); n != 0 {
		t.Fatalf("%d slot locks left behind", n)
	}
}

func TestCancelBookingNotFound(t *testing.T) {
	_, err := newService(CancelPolicy{}).CancelBooking(context.Background(), alice, "missing")
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) || nf.Resource != "Booking" {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestCancelTwice(t *testing.T) {
	ctx := context.Background()

	t.Run("lenient", func(t *testing.T) {
		svc := newService(CancelPolicy{})
		b, _ := svc.CreateBooking(ctx, alice, validInput())
		if _, err := svc.CancelBooking(ctx, alice, b.ID); err != nil {
			t.Fatal(err)
		}
		again, err := svc.CancelBooking(ctx, alice, b.ID)
		if err != nil {
			t.Fatalf("second cancel: %v", err)
		}
		if again.Status != models.BookingCancelled {
			t.Fatalf("status = %s", again.Status)
		}
	})

	t.Run("strict", func(t *testing.T) {
		svc := newService(CancelPolicy{StrictCancel: true})
		b, _ := svc.CreateBooking(ctx, alice, validInput())
		if _, err := svc.CancelBooking(ctx, alice, b.ID); err != nil {
			t.Fatal(err)
		}
		_, err := svc.CancelBooking(ctx, alice, b.ID)
		var conflict *apperr.ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("second cancel err = %v, want conflict", err)
		}
	})
}

func TestCancelOwnership(t *testing.T) {
	ctx := context.Background()

	lenient := newService(CancelPolicy{})
	b, _ := lenient.CreateBooking(ctx, alice, validInput())
	if _, err := lenient.CancelBooking(ctx, bob, b.ID); err != nil {
		t.Fatalf("default policy lets anyone cancel: %v", err)
	}

	strict := newService(CancelPolicy{RequireOwner: true})
	b, _ = strict.CreateBooking(ctx, alice, validInput())
	_, err := strict.CancelBooking(ctx, bob, b.ID)
	var forbidden *apperr.ForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("non-owner err = %v, want forbidden", err)
	}
	if _, err := strict.CancelBooking(ctx, admin, b.ID); err != nil {
		t.Fatalf("admin cancel: %v", err)
	}
}

func TestListMyBookingsOnlyOwn(t *testing.T) {
	ctx := context.Background()
	svc := newService(CancelPolicy{})
	_, _ = svc.CreateBooking(ctx, alice, validInput())
	other := validInput()
	other.ChairID = "C-102"
	_, _ = svc.CreateBooking(ctx, bob, other)

	mine, err := svc.ListMyBookings(ctx, "alice")
	if err != nil || len(mine) != 1 || mine[0].ChairID != "C-101" {
		t.Fatalf("ListMyBookings = %v, %v", mine, err)
	}
	all, err := svc.ListAllBookings(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("ListAllBookings = %v, %v", all, err)
	}
}
