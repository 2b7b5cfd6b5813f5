package cmd

import (
	"context"
	"fmt"

	"bookmychair/config"
	"bookmychair/database"
	bookingRepo "bookmychair/database/repository/booking"
	chairRepo "bookmychair/database/repository/chair"
	memoryRepo "bookmychair/database/repository/memory"

	"go.uber.org/zap"
)

// stores bundles the two repositories and how to release them.
type stores struct {
	Chairs   chairRepo.ChairRepository
	Bookings bookingRepo.BookingRepository
	Memory   bool
	close    func(ctx context.Context) error
}

func (s *stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// openStores returns in-process stores for memory:// URLs and MongoDB
// repositories with their indexes ensured otherwise.
func openStores(ctx context.Context) (*stores, error) {
	if config.AppConfig.UsesMemoryStore() {
		logger.Warn("using in-memory store; data is lost on restart")
		return &stores{
			Chairs:   memoryRepo.NewChairStore(),
			Bookings: memoryRepo.NewBookingStore(),
			Memory:   true,
		}, nil
	}

	if _, err := database.InitDB(ctx); err != nil {
		return nil, err
	}
	db := database.Database()
	s := &stores{
		Chairs:   chairRepo.NewMongoChairRepo(db),
		Bookings: bookingRepo.NewMongoBookingRepo(db),
		close:    database.CloseDB,
	}
	if err := s.Chairs.EnsureIndexes(ctx); err != nil {
		_ = s.Close(ctx)
		return nil, fmt.Errorf("chair indexes: %w", err)
	}
	if err := s.Bookings.EnsureIndexes(ctx); err != nil {
		_ = s.Close(ctx)
		return nil, fmt.Errorf("booking indexes: %w", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", config.AppConfig.DatabaseName))
	return s, nil
}
