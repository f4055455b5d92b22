package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense is a cash outflow recorded against a category.
type Expense struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date        time.Time          `bson:"date" json:"date"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	Amount      float64            `bson:"amount" json:"amount"`
	PaymentMode string             `bson:"payment_mode" json:"paymentMode"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Income is a cash inflow outside the invoicing flow (scrap sales, interest).
type Income struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date        time.Time          `bson:"date" json:"date"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	Amount      float64            `bson:"amount" json:"amount"`
	PaymentMode string             `bson:"payment_mode" json:"paymentMode"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// BookEntry is one line of a day book: a dated amount with its source noted.
type BookEntry struct {
	Source      string          `json:"source"`
	Description string          `json:"description"`
	Mode        string          `json:"mode"`
	Amount      decimal.Decimal `json:"amount"`
}

// DayBook is the income and expense picture for a single calendar date.
type DayBook struct {
	Date           time.Time       `json:"date"`
	IncomeEntries  []BookEntry     `json:"incomeEntries"`
	ExpenseEntries []BookEntry     `json:"expenseEntries"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	Net            decimal.Decimal `json:"net"`
}

// CategoryTotal is an amount rolled up under one category label.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ProfitLossReport covers a date range: revenue against expenses by category.
type ProfitLossReport struct {
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	Revenue      []CategoryTotal `json:"revenue"`
	Expenses     []CategoryTotal `json:"expenses"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetProfit    decimal.Decimal `json:"netProfit"`
}

// CashFlowDay is one day's inflow/outflow in a cash-flow series.
type CashFlowDay struct {
	Date    time.Time       `json:"date"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Net     decimal.Decimal `json:"net"`
}

// CashFlowReport is a dated series of cash movement with range totals.
type CashFlowReport struct {
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	Days         []CashFlowDay   `json:"days"`
	TotalInflow  decimal.Decimal `json:"totalInflow"`
	TotalOutflow decimal.Decimal `json:"totalOutflow"`
	Net          decimal.Decimal `json:"net"`
}

// MonthSummary is one month's totals inside a yearly summary.
type MonthSummary struct {
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// YearlySummary is the month-by-month income/expense/profit view for a year.
type YearlySummary struct {
	Year         int             `json:"year"`
	Months       []MonthSummary  `json:"months"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`
}

// DailySummary is the persisted nightly-close snapshot, one document per
// calendar date (upserts keep the close idempotent).
type DailySummary struct {
	Date         time.Time `bson:"date" json:"date"`
	TotalIncome  float64   `bson:"total_income" json:"totalIncome"`
	TotalExpense float64   `bson:"total_expense" json:"totalExpense"`
	Net          float64   `bson:"net" json:"net"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
