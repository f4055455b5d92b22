package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sudhakarm/stonemine/internal/domain/models"
)

// CreateLabour inserts a labour master record.
func (r *Repository) CreateLabour(ctx context.Context, labour *models.Labour) error {
	now := time.Now().UTC()
	labour.CreatedAt = now
	labour.UpdatedAt = now

	res, err := r.db.Collection(collLabours).InsertOne(ctx, labour)
	if err != nil {
		return fmt.Errorf("failed to insert labour: %w", err)
	}
	labour.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListLabours returns all labour records ordered by name.
func (r *Repository) ListLabours(ctx context.Context) ([]models.Labour, error) {
	cur, err := r.db.Collection(collLabours).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list labours: %w", err)
	}

	var labours []models.Labour
	if err := cur.All(ctx, &labours); err != nil {
		return nil, fmt.Errorf("failed to decode labours: %w", err)
	}
	return labours, nil
}

// UpdateLabour replaces the mutable fields of a labour record.
func (r *Repository) UpdateLabour(ctx context.Context, id primitive.ObjectID, labour *models.Labour) error {
	update := bson.M{"$set": bson.M{
		"name":        labour.Name,
		"work_type":   labour.WorkType,
		"wage_amount": labour.WageAmount,
		"wage_type":   labour.WageType,
		"join_date":   labour.JoinDate,
		"status":      labour.Status,
		"updated_at":  time.Now().UTC(),
	}}

	res, err := r.db.Collection(collLabours).UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("failed to update labour: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DeleteLabour removes a labour record. Attendance and advances referencing
// it are left in place; aggregations report them under "Unknown".
func (r *Repository) DeleteLabour(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.db.Collection(collLabours).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete labour: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// MarkAttendance inserts one attendance record. A second record for the same
// labour and date violates the unique index and is rejected as a duplicate.
func (r *Repository) MarkAttendance(ctx context.Context, att *models.Attendance) error {
	att.Date = Day(att.Date)
	att.CreatedAt = time.Now().UTC()

	res, err := r.db.Collection(collAttendance).InsertOne(ctx, att)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicateAttendance
		}
		return fmt.Errorf("failed to insert attendance: %w", err)
	}
	att.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListAttendanceForPeriod returns attendance records falling inside a month,
// boundary-inclusive.
func (r *Repository) ListAttendanceForPeriod(ctx context.Context, month, year int) ([]models.Attendance, error) {
	start, end := monthBounds(month, year)
	cur, err := r.db.Collection(collAttendance).Find(ctx, bson.M{"date": dateRange(start, end)})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	var records []models.Attendance
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance: %w", err)
	}
	return records, nil
}

// CreateAdvance appends an advance ledger entry. Advances are never mutated.
func (r *Repository) CreateAdvance(ctx context.Context, adv *models.Advance) error {
	adv.Date = Day(adv.Date)
	adv.CreatedAt = time.Now().UTC()

	res, err := r.db.Collection(collAdvances).InsertOne(ctx, adv)
	if err != nil {
		return fmt.Errorf("failed to insert advance: %w", err)
	}
	adv.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListAdvancesForPeriod returns advances falling inside a month.
func (r *Repository) ListAdvancesForPeriod(ctx context.Context, month, year int) ([]models.Advance, error) {
	start, end := monthBounds(month, year)
	cur, err := r.db.Collection(collAdvances).Find(ctx, bson.M{"date": dateRange(start, end)})
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}

	var advances []models.Advance
	if err := cur.All(ctx, &advances); err != nil {
		return nil, fmt.Errorf("failed to decode advances: %w", err)
	}
	return advances, nil
}

// ListAdvancesForRange returns advances between two dates, inclusive.
func (r *Repository) ListAdvancesForRange(ctx context.Context, start, end time.Time) ([]models.Advance, error) {
	cur, err := r.db.Collection(collAdvances).Find(ctx, bson.M{"date": dateRange(start, end)})
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}

	var advances []models.Advance
	if err := cur.All(ctx, &advances); err != nil {
		return nil, fmt.Errorf("failed to decode advances: %w", err)
	}
	return advances, nil
}
