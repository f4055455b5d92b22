package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sudhakarm/stonemine/internal/domain/models"
)

// CreateTrip inserts a transport trip. Diesel total is recomputed from
// quantity and rate when the client leaves it at zero.
func (r *Repository) CreateTrip(ctx context.Context, trip *models.Trip) error {
	now := time.Now().UTC()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	trip.Date = Day(trip.Date)
	if trip.DieselTotal == 0 {
		trip.DieselTotal = trip.DieselQty * trip.DieselRate
	}

	res, err := r.db.Collection(collTrips).InsertOne(ctx, trip)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	trip.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListTrips returns all trips, most recent first.
func (r *Repository) ListTrips(ctx context.Context) ([]models.Trip, error) {
	cur, err := r.db.Collection(collTrips).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	var trips []models.Trip
	if err := cur.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %w", err)
	}
	return trips, nil
}

// DeleteTrip removes a trip record.
func (r *Repository) DeleteTrip(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.db.Collection(collTrips).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
