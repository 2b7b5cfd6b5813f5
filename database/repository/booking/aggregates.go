package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"bookmychair/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CountByChairType counts every booking, any status, per chair type. Most
// booked first; ties by type name.
func (r *mongoBookingRepo) CountByChairType(ctx context.Context) ([]models.ChairTypeCount, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":      "$chairType",
			"bookings": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"type":     "$_id",
			"bookings": 1,
			"_id":      0,
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "bookings", Value: -1},
			{Key: "type", Value: 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate chair types: %w", err)
	}
	defer cursor.Close(ctx)

	rows := []models.ChairTypeCount{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	return rows, nil
}

// CountByHour counts bookings per UTC hour of field, ascending by hour.
// Documents whose field does not convert to a date are left out.
func (r *mongoBookingRepo) CountByHour(ctx context.Context, field string) ([]models.HourCount, error) {
	if field != HourFieldDate && field != HourFieldCreatedAt {
		return nil, fmt.Errorf("unsupported hour field %q", field)
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$project", Value: bson.M{
			"at": bson.M{"$convert": bson.M{
				"input":   "$" + field,
				"to":      "date",
				"onError": nil,
				"onNull":  nil,
			}},
		}}},
		{{Key: "$match", Value: bson.M{"at": bson.M{"$ne": nil}}}},
		{{Key: "$group", Value: bson.M{
			"_id":      bson.M{"$hour": "$at"},
			"bookings": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"hour":     "$_id",
			"bookings": 1,
			"_id":      0,
		}}},
		{{Key: "$sort", Value: bson.M{"hour": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate peak hours: %w", err)
	}
	defer cursor.Close(ctx)

	rows := []models.HourCount{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	return rows, nil
}
