package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is a buyer of quarried material.
type Customer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	Address   string             `bson:"address" json:"address"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Master-data categories for lookup lists rendered in forms.
const (
	MasterCategoryWorkType     = "work-type"
	MasterCategoryMaterialType = "material-type"
	MasterCategoryPaymentMode  = "payment-mode"
	MasterCategoryExpenseType  = "expense-type"
)

// MasterItem is one entry of a lookup list (work types, material types,
// payment modes, expense types).
type MasterItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Category    string             `bson:"category" json:"category"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
