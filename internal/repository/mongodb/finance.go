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

// CreateExpense inserts an expense record.
func (r *Repository) CreateExpense(ctx context.Context, exp *models.Expense) error {
	now := time.Now().UTC()
	exp.CreatedAt = now
	exp.UpdatedAt = now
	exp.Date = Day(exp.Date)

	res, err := r.db.Collection(collExpenses).InsertOne(ctx, exp)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	exp.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListExpensesForRange returns expenses dated inside [start, end].
func (r *Repository) ListExpensesForRange(ctx context.Context, start, end time.Time) ([]models.Expense, error) {
	cur, err := r.db.Collection(collExpenses).Find(ctx, bson.M{"date": dateRange(start, end)},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	var expenses []models.Expense
	if err := cur.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("failed to decode expenses: %w", err)
	}
	return expenses, nil
}

// DeleteExpense removes an expense record.
func (r *Repository) DeleteExpense(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.db.Collection(collExpenses).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// CreateIncome inserts an income record.
func (r *Repository) CreateIncome(ctx context.Context, inc *models.Income) error {
	now := time.Now().UTC()
	inc.CreatedAt = now
	inc.UpdatedAt = now
	inc.Date = Day(inc.Date)

	res, err := r.db.Collection(collIncome).InsertOne(ctx, inc)
	if err != nil {
		return fmt.Errorf("failed to insert income: %w", err)
	}
	inc.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListIncomeForRange returns income records dated inside [start, end].
func (r *Repository) ListIncomeForRange(ctx context.Context, start, end time.Time) ([]models.Income, error) {
	cur, err := r.db.Collection(collIncome).Find(ctx, bson.M{"date": dateRange(start, end)},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}

	var income []models.Income
	if err := cur.All(ctx, &income); err != nil {
		return nil, fmt.Errorf("failed to decode income: %w", err)
	}
	return income, nil
}

// DeleteIncome removes an income record.
func (r *Repository) DeleteIncome(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.db.Collection(collIncome).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// SaveDailySummary upserts the nightly-close snapshot keyed by date, so a
// re-run of the same close replaces rather than duplicates.
func (r *Repository) SaveDailySummary(ctx context.Context, summary models.DailySummary) error {
	summary.Date = Day(summary.Date)
	summary.CreatedAt = time.Now().UTC()

	_, err := r.db.Collection(collDailyClose).UpdateOne(ctx,
		bson.M{"date": summary.Date},
		bson.M{"$set": summary},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save daily summary: %w", err)
	}
	return nil
}
