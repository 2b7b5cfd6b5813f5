// Package analytics rolls the booking ledger up into usage reports.
package analytics

import (
	"context"
	"fmt"

	bookingRepo "bookmychair/database/repository/booking"
	"bookmychair/models"
)

type AnalyticsService interface {
	PopularChairTypes(ctx context.Context) ([]models.ChairTypeCount, error)
	PeakHours(ctx context.Context) ([]models.PeakHour, error)
}

// DefaultAnalyticsService counts every booking regardless of status.
// HourSource picks the field peak hours group on; empty means the booking date.
type DefaultAnalyticsService struct {
	Repo       bookingRepo.BookingRepository
	HourSource string
}

// PopularChairTypes returns booking counts per chair type, busiest first.
func (s *DefaultAnalyticsService) PopularChairTypes(ctx context.Context) ([]models.ChairTypeCount, error) {
	rows, err := s.Repo.CountByChairType(ctx)
	if err != nil {
		return nil, fmt.Errorf("PopularChairTypes: %w", err)
	}
	if rows == nil {
		rows = []models.ChairTypeCount{}
	}
	return rows, nil
}

// PeakHours returns booking counts per hour of day, earliest hour first,
// with hours labelled on a 12-hour clock.
func (s *DefaultAnalyticsService) PeakHours(ctx context.Context) ([]models.PeakHour, error) {
	rows, err := s.Repo.CountByHour(ctx, s.hourField())
	if err != nil {
		return nil, fmt.Errorf("PeakHours: %w", err)
	}
	out := make([]models.PeakHour, 0, len(rows))
	for _, r := range rows {
		if r.Hour < 0 || r.Hour > 23 {
			continue
		}
		out = append(out, models.PeakHour{Hour: models.FormatHour(r.Hour), Bookings: r.Bookings})
	}
	return out, nil
}

func (s *DefaultAnalyticsService) hourField() string {
	if s.HourSource == bookingRepo.HourFieldCreatedAt {
		return bookingRepo.HourFieldCreatedAt
	}
	return bookingRepo.HourFieldDate
}
