package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WageType discriminates how a labour's wage amount is interpreted.
type WageType string

const (
	WageTypeDaily   WageType = "Daily"
	WageTypeMonthly WageType = "Monthly"
)

// AttendanceStatus is the per-day presence marker for a labour.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceHalfDay AttendanceStatus = "Half Day"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

// Labour is a worker registered against the mine.
type Labour struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	WorkType   string             `bson:"work_type" json:"workType"`
	WageAmount float64            `bson:"wage_amount" json:"wageAmount"`
	WageType   WageType           `bson:"wage_type" json:"wageType"`
	JoinDate   time.Time          `bson:"join_date" json:"joinDate"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Attendance is one presence record per labour per calendar date.
// Dates are normalized to midnight UTC; uniqueness of (labour_id, date)
// is enforced by the store.
type Attendance struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LabourID      primitive.ObjectID `bson:"labour_id" json:"labourId"`
	Date          time.Time          `bson:"date" json:"date"`
	Status        AttendanceStatus   `bson:"status" json:"status"`
	OvertimeHours float64            `bson:"overtime_hours" json:"overtimeHours"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

// Advance is an append-only cash advance against future wages. Advances are
// never mutated after creation.
type Advance struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LabourID    primitive.ObjectID `bson:"labour_id" json:"labourId"`
	Date        time.Time          `bson:"date" json:"date"`
	Amount      float64            `bson:"amount" json:"amount"`
	PaymentMode string             `bson:"payment_mode" json:"paymentMode"`
	Remarks     string             `bson:"remarks" json:"remarks"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

// WageSummary is the derived net-payable figure for one labour over a period.
// It is recomputed on every request and never persisted.
type WageSummary struct {
	LabourID     string          `json:"labourId"`
	Name         string          `json:"name"`
	WorkType     string          `json:"workType"`
	WageType     WageType        `json:"wageType"`
	WageAmount   decimal.Decimal `json:"wageAmount"`
	PresentDays  int             `json:"presentDays"`
	HalfDays     int             `json:"halfDays"`
	WorkedDays   decimal.Decimal `json:"workedDays"`
	TotalWages   decimal.Decimal `json:"totalWages"`
	TotalAdvance decimal.Decimal `json:"totalAdvance"`
	NetPayable   decimal.Decimal `json:"netPayable"`
}

// WageReport bundles per-labour summaries for a month with the grand total.
type WageReport struct {
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Summaries  []WageSummary   `json:"summaries"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}
