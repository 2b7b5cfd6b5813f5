// File: database/repository/chair/crud.go
package chairRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookmychair/database/repository"
	"bookmychair/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func refFilter(ref string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"id": ref},
		bson.M{"chairId": ref},
	}}
}

func (r *mongoChairRepo) Create(ctx context.Context, chair *models.Chair) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if chair.ID == "" {
		chair.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	chair.CreatedAt = now
	chair.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, chair); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("chair %s: %w", chair.ChairID, repository.ErrDuplicate)
		}
		return fmt.Errorf("failed to create chair: %w", err)
	}
	return nil
}

func (r *mongoChairRepo) Find(ctx context.Context, filter models.ChairFilter) ([]models.Chair, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Type != "" {
		query["chairType"] = filter.Type
	}
	if filter.Status != "" {
		query["chairStatus"] = filter.Status
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chairs: %w", err)
	}
	defer cursor.Close(ctx)

	chairs := []models.Chair{}
	if err := cursor.All(ctx, &chairs); err != nil {
		return nil, fmt.Errorf("error decoding chairs: %w", err)
	}
	return chairs, nil
}

func (r *mongoChairRepo) GetByRef(ctx context.Context, ref string) (*models.Chair, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var chair models.Chair
	if err := r.coll.FindOne(ctx, refFilter(ref)).Decode(&chair); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch chair %s: %w", ref, err)
	}
	return &chair, nil
}

func (r *mongoChairRepo) UpdateStatus(ctx context.Context, ref, status string) (*models.Chair, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"chairStatus": status,
		"updatedAt":   time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var chair models.Chair
	if err := r.coll.FindOneAndUpdate(ctx, refFilter(ref), update, opts).Decode(&chair); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update chair %s: %w", ref, err)
	}
	return &chair, nil
}

func (r *mongoChairRepo) Delete(ctx context.Context, ref string) (*models.Chair, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var chair models.Chair
	if err := r.coll.FindOneAndDelete(ctx, refFilter(ref)).Decode(&chair); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete chair %s: %w", ref, err)
	}
	return &chair, nil
}
