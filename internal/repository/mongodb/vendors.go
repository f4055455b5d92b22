package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sudhakarm/stonemine/internal/domain/models"
)

// CreateVendor inserts a vendor ledger head.
func (r *Repository) CreateVendor(ctx context.Context, vendor *models.Vendor) error {
	now := time.Now().UTC()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	res, err := r.db.Collection(collVendors).InsertOne(ctx, vendor)
	if err != nil {
		return fmt.Errorf("failed to insert vendor: %w", err)
	}
	vendor.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// ListVendors returns all vendors, optionally restricted to one type.
func (r *Repository) ListVendors(ctx context.Context, vendorType models.VendorType) ([]models.Vendor, error) {
	filter := bson.M{}
	if vendorType != "" {
		filter["type"] = vendorType
	}

	cur, err := r.db.Collection(collVendors).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}

	var vendors []models.Vendor
	if err := cur.All(ctx, &vendors); err != nil {
		return nil, fmt.Errorf("failed to decode vendors: %w", err)
	}
	return vendors, nil
}

// UpdateVendor replaces the mutable fields of a vendor, including its
// contract and vehicle sub-records.
func (r *Repository) UpdateVendor(ctx context.Context, id primitive.ObjectID, vendor *models.Vendor) error {
	update := bson.M{"$set": bson.M{
		"name":            vendor.Name,
		"type":            vendor.Type,
		"phone":           vendor.Phone,
		"contracts":       vendor.Contracts,
		"vehicles":        vendor.Vehicles,
		"opening_balance": vendor.OpeningBalance,
		"total_invoice":   vendor.TotalInvoice,
		"total_paid":      vendor.TotalPaid,
		"advance_paid":    vendor.AdvancePaid,
		"updated_at":      time.Now().UTC(),
	}}

	res, err := r.db.Collection(collVendors).UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("failed to update vendor: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// DeleteVendor removes a vendor ledger head.
func (r *Repository) DeleteVendor(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.db.Collection(collVendors).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
