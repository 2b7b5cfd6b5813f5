package chair

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookmychair/database/repository"
	chairRepo "bookmychair/database/repository/chair"
	"bookmychair/models"
	"bookmychair/services/apperr"
	"bookmychair/services/notification"

	"go.uber.org/zap"
)

// DefaultChairService is the production ChairService. Cache may be nil.
type DefaultChairService struct {
	Repo     chairRepo.ChairRepository
	Notifier notification.Broadcaster
	Cache    ListCache
	Logger   *zap.Logger
}

func (s *DefaultChairService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultChairService) AddChair(ctx context.Context, in models.NewChairInput) (*models.Chair, error) {
	in.Normalize()
	if missing := in.Missing(); len(missing) > 0 {
		return nil, apperr.Validation("Missing required fields: %s.", strings.Join(missing, ", "))
	}
	if !models.ValidChairStatus(in.ChairStatus) {
		return nil, apperr.Validation("Invalid chair status %q.", in.ChairStatus)
	}

	chair := &models.Chair{
		ChairID:       in.ChairID,
		ChairName:     in.ChairName,
		ChairType:     in.ChairType,
		ChairLocation: in.ChairLocation,
		ChairFeatures: in.ChairFeatures,
		ChairStatus:   in.ChairStatus,
	}
	if err := s.Repo.Create(ctx, chair); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Validation("Chair code %q already exists.", in.ChairID)
		}
		return nil, fmt.Errorf("AddChair: %w", err)
	}

	s.logger().Info("chair added", zap.String("chairId", chair.ChairID), zap.String("id", chair.ID))
	s.changed(ctx)
	return chair, nil
}

func (s *DefaultChairService) ListChairs(ctx context.Context, filter models.ChairFilter) ([]models.Chair, error) {
	filter.Type = strings.TrimSpace(filter.Type)
	filter.Status = strings.TrimSpace(filter.Status)

	var cacheKey string
	if s.Cache != nil {
		chairs, key, ok := s.Cache.Get(ctx, filter)
		if ok {
			return chairs, nil
		}
		cacheKey = key
	}
	chairs, err := s.Repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("ListChairs: %w", err)
	}
	if s.Cache != nil && cacheKey != "" {
		s.Cache.Set(ctx, cacheKey, chairs)
	}
	return chairs, nil
}

func (s *DefaultChairService) SetStatus(ctx context.Context, ref, status string) (*models.Chair, error) {
	if !models.ValidChairStatus(status) {
		return nil, apperr.Validation("Invalid chair status %q.", status)
	}
	chair, err := s.Repo.UpdateStatus(ctx, ref, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Chair", ref)
		}
		return nil, fmt.Errorf("SetStatus: %w", err)
	}

	s.logger().Info("chair status changed", zap.String("chairId", chair.ChairID), zap.String("status", status))
	s.changed(ctx)
	return chair, nil
}

func (s *DefaultChairService) BlockChair(ctx context.Context, ref string) (*models.Chair, error) {
	return s.SetStatus(ctx, ref, models.ChairBlocked)
}

func (s *DefaultChairService) DeleteChair(ctx context.Context, ref string) error {
	chair, err := s.Repo.Delete(ctx, ref)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Chair", ref)
		}
		return fmt.Errorf("DeleteChair: %w", err)
	}

	s.logger().Info("chair deleted", zap.String("chairId", chair.ChairID))
	s.changed(ctx)
	return nil
}

// changed drops cached listings and sends one broadcast. A failed broadcast
// does not fail the mutation.
func (s *DefaultChairService) changed(ctx context.Context) {
	if s.Cache != nil {
		s.Cache.Invalidate(ctx)
	}
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.BroadcastChairsChanged(ctx); err != nil {
		s.logger().Warn("chairs changed broadcast failed", zap.Error(err))
	}
}
