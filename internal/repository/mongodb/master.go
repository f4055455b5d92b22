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

// CreateCustomer inserts a customer master record.
func (r *Repository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	res, err := r.db.Collection(collCustomers).InsertOne(ctx, customer)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	customer.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListCustomers returns all customers ordered by name.
func (r *Repository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	cur, err := r.db.Collection(collCustomers).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	var customers []models.Customer
	if err := cur.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	return customers, nil
}

// DeleteCustomer removes a customer master record.
func (r *Repository) DeleteCustomer(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.db.Collection(collCustomers).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// CreateMasterItem inserts a lookup-list entry.
func (r *Repository) CreateMasterItem(ctx context.Context, item *models.MasterItem) error {
	item.CreatedAt = time.Now().UTC()

	res, err := r.db.Collection(collMasterItems).InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to insert master item: %w", err)
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListMasterItems returns lookup entries for one category ordered by name.
func (r *Repository) ListMasterItems(ctx context.Context, category string) ([]models.MasterItem, error) {
	cur, err := r.db.Collection(collMasterItems).Find(ctx, bson.M{"category": category},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list master items: %w", err)
	}

	var items []models.MasterItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode master items: %w", err)
	}
	return items, nil
}

// DeleteMasterItem removes a lookup-list entry.
func (r *Repository) DeleteMasterItem(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.db.Collection(collMasterItems).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete master item: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
