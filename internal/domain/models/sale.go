package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus tracks how much of an invoice has been settled.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPartial PaymentStatus = "Partial"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

// Sale is a customer invoice. BalanceAmount is always recomputed server-side
// as GrandTotal - AmountPaid; the stored value is never trusted from clients.
type Sale struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerID    primitive.ObjectID `bson:"customer_id" json:"customerId"`
	CustomerName  string             `bson:"customer_name" json:"customerName"`
	InvoiceNumber string             `bson:"invoice_number" json:"invoiceNumber"`
	Date          time.Time          `bson:"date" json:"date"`
	MaterialType  string             `bson:"material_type" json:"materialType"`
	GrandTotal    float64            `bson:"grand_total" json:"grandTotal"`
	AmountPaid    float64            `bson:"amount_paid" json:"amountPaid"`
	BalanceAmount float64            `bson:"balance_amount" json:"balanceAmount"`
	PaymentStatus PaymentStatus      `bson:"payment_status" json:"paymentStatus"`
	DueDate       time.Time          `bson:"due_date" json:"dueDate"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Payment is the append-only record of one settlement applied to an invoice.
type Payment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InvoiceID primitive.ObjectID `bson:"invoice_id" json:"invoiceId"`
	Amount    float64            `bson:"amount" json:"amount"`
	Date      time.Time          `bson:"date" json:"date"`
	Mode      string             `bson:"mode" json:"mode"`
	Reference string             `bson:"reference" json:"reference"`
	Notes     string             `bson:"notes" json:"notes"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// PaymentRequest is the inbound payload for recording a payment.
type PaymentRequest struct {
	Amount    float64   `json:"amount" binding:"required,gt=0"`
	Date      time.Time `json:"date" binding:"required"`
	Mode      string    `json:"mode" binding:"required"`
	Reference string    `json:"reference"`
	Notes     string    `json:"notes"`
}

// CustomerPending groups a customer's open invoices with running totals.
type CustomerPending struct {
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Invoices     []Sale          `json:"invoices"`
	TotalSales   decimal.Decimal `json:"totalSales"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
}

// PendingPaymentsReport lists customers with outstanding balances, largest
// balance first.
type PendingPaymentsReport struct {
	Customers    []CustomerPending `json:"customers"`
	TotalBalance decimal.Decimal   `json:"totalBalance"`
}
