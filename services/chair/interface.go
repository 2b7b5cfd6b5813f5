package chair

import (
	"context"

	"bookmychair/models"
)

// ChairService manages the chair directory.
type ChairService interface {
	AddChair(ctx context.Context, in models.NewChairInput) (*models.Chair, error)
	ListChairs(ctx context.Context, filter models.ChairFilter) ([]models.Chair, error)
	SetStatus(ctx context.Context, ref, status string) (*models.Chair, error)
	BlockChair(ctx context.Context, ref string) (*models.Chair, error)
	DeleteChair(ctx context.Context, ref string) error
}

// ListCache stores ListChairs results per filter. Invalidate drops them all.
//
// Get returns the key it looked up even on a miss; the caller hands that key
// back to Set so a result read before an Invalidate never lands under the
// newer generation. An empty key means the result must not be stored.
type ListCache interface {
	Get(ctx context.Context, filter models.ChairFilter) (chairs []models.Chair, key string, ok bool)
	Set(ctx context.Context, key string, chairs []models.Chair)
	Invalidate(ctx context.Context)
}
