// FILE: database/repository/chair/indexes.go
package chairRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the chairs collection.
func (r *mongoChairRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Chair codes are assigned by admins and must not repeat.
		{
			Keys:    bson.D{{Key: "chairId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_chair_code"),
		},
		{
			Keys:    bson.D{{Key: "chairType", Value: 1}, {Key: "chairStatus", Value: 1}},
			Options: options.Index().SetName("type_status_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create chair indexes: %w", err)
	}
	return nil
}
