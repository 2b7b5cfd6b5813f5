package booking

import (
	"context"
	"errors"
	"fmt"

	"bookmychair/database/repository"
	bookingRepo "bookmychair/database/repository/booking"
	"bookmychair/models"
	"bookmychair/services/apperr"

	"go.uber.org/zap"
)

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Policy CancelPolicy
	Logger *zap.Logger

	locks *slotLocks
}

func NewBookingService(repo bookingRepo.BookingRepository, policy CancelPolicy, logger *zap.Logger) *DefaultBookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Repo:   repo,
		Policy: policy,
		Logger: logger,
		locks:  newSlotLocks(),
	}
}

// CreateBooking confirms a booking unless a confirmed one already holds the
// same chair, date and slot. The check and insert run under a per-slot lock,
// and the store's unique index catches writers in other processes.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, user models.User, in models.NewBookingInput) (*models.Booking, error) {
	in.Normalize()
	if user.ID == "" || !in.Complete() {
		return nil, apperr.Validation(msgAllFieldsRequired)
	}
	if !models.ValidSnapshotStatus(in.ChairStatus) {
		return nil, apperr.Validation(msgBadChairStatus)
	}

	booking := &models.Booking{
		UserID:        user.ID,
		ChairID:       in.ChairID,
		ChairName:     in.ChairName,
		ChairType:     in.ChairType,
		ChairLocation: in.ChairLocation,
		ChairFeatures: in.ChairFeatures,
		ChairStatus:   in.ChairStatus,
		Date:          in.Date,
		TimeSlot:      in.TimeSlot,
		Status:        models.BookingConfirmed,
	}
	key := booking.SlotKey()

	unlock := s.locks.Lock(key.String())
	defer unlock()

	taken, err := s.Repo.ExistsConfirmed(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("CreateBooking: %w", err)
	}
	if taken {
		return nil, apperr.Conflict(msgSlotTaken)
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.Logger.Info("slot taken by concurrent writer", zap.String("slot", key.String()))
			return nil, apperr.Conflict(msgSlotTaken)
		}
		return nil, fmt.Errorf("CreateBooking: %w", err)
	}

	s.Logger.Info("booking confirmed",
		zap.String("bookingId", booking.ID),
		zap.String("userId", user.ID),
		zap.String("slot", key.String()),
	)
	return booking, nil
}

func (s *DefaultBookingService) ListMyBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ListMyBookings: %w", err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListAllBookings: %w", err)
	}
	return bookings, nil
}

// CancelBooking moves a booking to cancelled. Cancelling twice succeeds
// unless Policy.StrictCancel is set.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, actor models.User, bookingID string) (*models.Booking, error) {
	existing, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Booking", bookingID)
		}
		return nil, fmt.Errorf("CancelBooking: %w", err)
	}

	if s.Policy.RequireOwner && !actor.IsAdmin() && existing.UserID != actor.ID {
		s.Logger.Warn("cancel refused for non-owner",
			zap.String("bookingId", bookingID), zap.String("actor", actor.ID))
		return nil, apperr.Forbidden(msgNotOwner)
	}

	if existing.Status == models.BookingCancelled {
		if s.Policy.StrictCancel {
			return nil, apperr.Conflict(msgAlreadyCancelled)
		}
		return existing, nil
	}

	updated, err := s.Repo.SetStatus(ctx, bookingID, models.BookingCancelled)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Booking", bookingID)
		}
		return nil, fmt.Errorf("CancelBooking: %w", err)
	}

	s.Logger.Info("booking cancelled", zap.String("bookingId", bookingID), zap.String("actor", actor.ID))
	return updated, nil
}
