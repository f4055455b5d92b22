package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VendorType classifies a vendor by the kind of service supplied to the mine.
type VendorType string

const (
	VendorTypeExplosiveSupplier VendorType = "ExplosiveSupplier"
	VendorTypeLabourContractor  VendorType = "LabourContractor"
	VendorTypeTransportVendor   VendorType = "TransportVendor"
)

// VendorContract is a labour-contractor agreement: a rate agreed per head for
// a count of supplied labourers.
type VendorContract struct {
	Description string  `bson:"description" json:"description"`
	AgreedRate  float64 `bson:"agreed_rate" json:"agreedRate"`
	LabourCount int     `bson:"labour_count" json:"labourCount"`
}

// VendorVehicle is a transport-vendor vehicle with its per-trip rate and the
// padi kasu (per-trip loading allowance) owed alongside it.
type VendorVehicle struct {
	VehicleNumber string  `bson:"vehicle_number" json:"vehicleNumber"`
	RatePerTrip   float64 `bson:"rate_per_trip" json:"ratePerTrip"`
	PadiKasu      float64 `bson:"padi_kasu" json:"padiKasu"`
}

// Vendor is a supplier ledger head. OpeningBalance seeds the ledger; invoiced
// and paid totals accumulate against it. The single source of "amount owed"
// is: opening + invoiced + potential cost - paid - advance.
type Vendor struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Type           VendorType         `bson:"type" json:"type"`
	Phone          string             `bson:"phone" json:"phone"`
	Contracts      []VendorContract   `bson:"contracts,omitempty" json:"contracts,omitempty"`
	Vehicles       []VendorVehicle    `bson:"vehicles,omitempty" json:"vehicles,omitempty"`
	OpeningBalance float64            `bson:"opening_balance" json:"openingBalance"`
	TotalInvoice   float64            `bson:"total_invoice" json:"totalInvoice"`
	TotalPaid      float64            `bson:"total_paid" json:"totalPaid"`
	AdvancePaid    float64            `bson:"advance_paid" json:"advancePaid"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}

// VendorOutstanding is the derived per-vendor position.
type VendorOutstanding struct {
	VendorID      string          `json:"vendorId"`
	Name          string          `json:"name"`
	Type          VendorType      `json:"type"`
	PotentialCost decimal.Decimal `json:"potentialCost"`
	TotalInvoice  decimal.Decimal `json:"totalInvoice"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	Balance       decimal.Decimal `json:"balance"`
}

// OutstandingReport lists vendor positions with the sum of balances across
// the filtered set.
type OutstandingReport struct {
	Vendors      []VendorOutstanding `json:"vendors"`
	TotalBalance decimal.Decimal     `json:"totalBalance"`
}
