// File: database/repository/chair/interface.go
package chairRepo

import (
	"context"

	"bookmychair/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ChairRepository is the chair directory store. A ref is either the system
// id or the chair code.
type ChairRepository interface {
	Create(ctx context.Context, chair *models.Chair) error
	Find(ctx context.Context, filter models.ChairFilter) ([]models.Chair, error)
	GetByRef(ctx context.Context, ref string) (*models.Chair, error)
	UpdateStatus(ctx context.Context, ref, status string) (*models.Chair, error)
	Delete(ctx context.Context, ref string) (*models.Chair, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoChairRepo struct {
	coll *mongo.Collection
}

// NewMongoChairRepo constructs a MongoDB ChairRepository on db.chairs.
func NewMongoChairRepo(db *mongo.Database) ChairRepository {
	return &mongoChairRepo{
		coll: db.Collection("chairs"),
	}
}
