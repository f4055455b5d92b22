package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip is one transport run carrying material out of the mine.
// Diesel is tracked separately from the other cost fields; whether it counts
// against profit is a policy decision, not a property of the record.
type Trip struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleNumber string             `bson:"vehicle_number" json:"vehicleNumber"`
	Date          time.Time          `bson:"date" json:"date"`
	MaterialType  string             `bson:"material_type" json:"materialType"`
	TripRate      float64            `bson:"trip_rate" json:"tripRate"`
	DriverAmount  float64            `bson:"driver_amount" json:"driverAmount"`
	DriverBata    float64            `bson:"driver_bata" json:"driverBata"`
	DieselQty     float64            `bson:"diesel_qty" json:"dieselQty"`
	DieselRate    float64            `bson:"diesel_rate" json:"dieselRate"`
	DieselTotal   float64            `bson:"diesel_total" json:"dieselTotal"`
	OtherExpenses float64            `bson:"other_expenses" json:"otherExpenses"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// TripProfit is the derived per-trip profitability line.
type TripProfit struct {
	TripID        string          `json:"tripId"`
	VehicleNumber string          `json:"vehicleNumber"`
	Date          time.Time       `json:"date"`
	MaterialType  string          `json:"materialType"`
	TripRate      decimal.Decimal `json:"tripRate"`
	DriverCost    decimal.Decimal `json:"driverCost"`
	DieselTotal   decimal.Decimal `json:"dieselTotal"`
	OtherExpenses decimal.Decimal `json:"otherExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// TripStats aggregates profitability across a set of trips.
type TripStats struct {
	Trips              []TripProfit    `json:"trips"`
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalDriverPayment decimal.Decimal `json:"totalDriverPayment"`
	TotalBata          decimal.Decimal `json:"totalBata"`
	TotalDiesel        decimal.Decimal `json:"totalDiesel"`
	TotalProfit        decimal.Decimal `json:"totalProfit"`
}
