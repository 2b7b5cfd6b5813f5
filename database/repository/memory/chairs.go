// Package memoryRepo keeps chairs and bookings in process memory. It honours
// the same uniqueness rules as the Mongo indexes and backs local runs and tests.
package memoryRepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bookmychair/database/repository"
	chairRepo "bookmychair/database/repository/chair"
	"bookmychair/models"

	"github.com/google/uuid"
)

type ChairStore struct {
	mu     sync.RWMutex
	chairs []models.Chair
}

var _ chairRepo.ChairRepository = (*ChairStore)(nil)

func NewChairStore() *ChairStore {
	return &ChairStore{}
}

func (s *ChairStore) Create(_ context.Context, chair *models.Chair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.chairs {
		if c.ChairID == chair.ChairID {
			return fmt.Errorf("chair %s: %w", chair.ChairID, repository.ErrDuplicate)
		}
	}
	if chair.ID == "" {
		chair.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	chair.CreatedAt = now
	chair.UpdatedAt = now
	s.chairs = append(s.chairs, cloneChair(*chair))
	return nil
}

func (s *ChairStore) Find(_ context.Context, filter models.ChairFilter) ([]models.Chair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Chair{}
	for _, c := range s.chairs {
		if filter.Matches(c) {
			out = append(out, cloneChair(c))
		}
	}
	return out, nil
}

func (s *ChairStore) GetByRef(_ context.Context, ref string) (*models.Chair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(ref)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	c := cloneChair(s.chairs[i])
	return &c, nil
}

func (s *ChairStore) UpdateStatus(_ context.Context, ref, status string) (*models.Chair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(ref)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	s.chairs[i].ChairStatus = status
	s.chairs[i].UpdatedAt = time.Now().UTC()
	c := cloneChair(s.chairs[i])
	return &c, nil
}

func (s *ChairStore) Delete(_ context.Context, ref string) (*models.Chair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(ref)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	c := s.chairs[i]
	s.chairs = append(s.chairs[:i], s.chairs[i+1:]...)
	return &c, nil
}

func (s *ChairStore) EnsureIndexes(context.Context) error { return nil }

// indexOf matches the system id first, then the chair code. Caller holds mu.
func (s *ChairStore) indexOf(ref string) int {
	for i, c := range s.chairs {
		if c.ID == ref {
			return i
		}
	}
	for i, c := range s.chairs {
		if c.ChairID == ref {
			return i
		}
	}
	return -1
}

func cloneChair(c models.Chair) models.Chair {
	if c.ChairFeatures != nil {
		c.ChairFeatures = append([]string{}, c.ChairFeatures...)
	}
	return c
}
