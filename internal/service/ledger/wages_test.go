package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sudhakarm/stonemine/internal/config"
	"github.com/sudhakarm/stonemine/internal/domain/models"
	"github.com/sudhakarm/stonemine/internal/service/ledger"
)

func newLedger(store ledger.Store, cfg config.LedgerConfig) *ledger.Service {
	return ledger.NewService(store, cfg, nil)
}

func attendanceRun(labourID primitive.ObjectID, year int, month time.Month, startDay, count int, status models.AttendanceStatus) []models.Attendance {
	out := make([]models.Attendance, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, models.Attendance{
			LabourID: labourID,
			Date:     date(year, month, startDay+i),
			Status:   status,
		})
	}
	return out
}

func TestWagesSummaryDailyWage(t *testing.T) {
	ravi := primitive.NewObjectID()
	store := &stubStore{
		labours: []models.Labour{{
			ID: ravi, Name: "Ravi", WorkType: "Driller", WageAmount: 500, WageType: models.WageTypeDaily,
		}},
	}
	store.attendance = append(store.attendance, attendanceRun(ravi, 2026, time.March, 1, 20, models.AttendancePresent)...)
	store.attendance = append(store.attendance, attendanceRun(ravi, 2026, time.March, 21, 2, models.AttendanceHalfDay)...)
	// Absent markings are on record but contribute no day-equivalents.
	store.attendance = append(store.attendance, attendanceRun(ravi, 2026, time.March, 23, 3, models.AttendanceAbsent)...)
	store.advances = []models.Advance{
		{LabourID: ravi, Date: date(2026, time.March, 10), Amount: 600},
		{LabourID: ravi, Date: date(2026, time.March, 20), Amount: 400},
	}

	report, err := newLedger(store, config.LedgerConfig{}).WagesSummary(context.Background(), 3, 2026, "")
	if err != nil {
		t.Fatalf("WagesSummary: %v", err)
	}
	if len(report.Summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(report.Summaries))
	}

	got := report.Summaries[0]
	if got.PresentDays != 20 || got.HalfDays != 2 {
		t.Errorf("attendance breakdown = %d present, %d half", got.PresentDays, got.HalfDays)
	}
	if want := decimal.NewFromInt(21); !got.WorkedDays.Equal(want) {
		t.Errorf("worked days = %s, want %s", got.WorkedDays, want)
	}
	if want := decimal.NewFromInt(10500); !got.TotalWages.Equal(want) {
		t.Errorf("total wages = %s, want %s", got.TotalWages, want)
	}
	if want := decimal.NewFromInt(1000); !got.TotalAdvance.Equal(want) {
		t.Errorf("total advance = %s, want %s", got.TotalAdvance, want)
	}
	if want := decimal.NewFromInt(9500); !got.NetPayable.Equal(want) {
		t.Errorf("net payable = %s, want %s", got.NetPayable, want)
	}
	if !report.GrandTotal.Equal(got.NetPayable) {
		t.Errorf("grand total = %s, want %s", report.GrandTotal, got.NetPayable)
	}
}

func TestWagesSummaryPeriodBoundariesInclusive(t *testing.T) {
	id := primitive.NewObjectID()
	store := &stubStore{
		labours: []models.Labour{{ID: id, Name: "Mani", WageAmount: 400, WageType: models.WageTypeDaily}},
		attendance: []models.Attendance{
			{LabourID: id, Date: date(2026, time.April, 1), Status: models.AttendancePresent},
			{LabourID: id, Date: date(2026, time.April, 30), Status: models.AttendancePresent},
			// Neighbouring months must not leak in.
			{LabourID: id, Date: date(2026, time.March, 31), Status: models.AttendancePresent},
			{LabourID: id, Date: date(2026, time.May, 1), Status: models.AttendancePresent},
		},
		advances: []models.Advance{
			{LabourID: id, Date: date(2026, time.April, 1), Amount: 100},
			{LabourID: id, Date: date(2026, time.April, 30), Amount: 100},
			{LabourID: id, Date: date(2026, time.May, 1), Amount: 999},
		},
	}

	report, err := newLedger(store, config.LedgerConfig{}).WagesSummary(context.Background(), 4, 2026, "")
	if err != nil {
		t.Fatalf("WagesSummary: %v", err)
	}

	got := report.Summaries[0]
	if want := decimal.NewFromInt(800); !got.TotalWages.Equal(want) {
		t.Errorf("total wages = %s, want %s", got.TotalWages, want)
	}
	if want := decimal.NewFromInt(200); !got.TotalAdvance.Equal(want) {
		t.Errorf("total advance = %s, want %s", got.TotalAdvance, want)
	}
}

func TestWagesSummaryNegativeNetPayable(t *testing.T) {
	id := primitive.NewObjectID()
	store := &stubStore{
		labours: []models.Labour{{ID: id, Name: "Selvam", WageAmount: 300, WageType: models.WageTypeDaily}},
		attendance: []models.Attendance{
			{LabourID: id, Date: date(2026, time.June, 2), Status: models.AttendancePresent},
		},
		advances: []models.Advance{
			{LabourID: id, Date: date(2026, time.June, 5), Amount: 1000},
		},
	}

	report, err := newLedger(store, config.LedgerConfig{}).WagesSummary(context.Background(), 6, 2026, "")
	if err != nil {
		t.Fatalf("WagesSummary: %v", err)
	}

	if want := decimal.NewFromInt(-700); !report.Summaries[0].NetPayable.Equal(want) {
		t.Errorf("net payable = %s, want %s (no floor applied)", report.Summaries[0].NetPayable, want)
	}
}

func TestWagesSummaryMonthlyProration(t *testing.T) {
	id := primitive.NewObjectID()
	base := &stubStore{
		labours: []models.Labour{{ID: id, Name: "Kumar", WageAmount: 15000, WageType: models.WageTypeMonthly}},
	}
	// 15 full days worked in a 30-day month.
	base.attendance = attendanceRun(id, 2026, time.June, 1, 15, models.AttendancePresent)

	t.Run("prorated", func(t *testing.T) {
		svc := newLedger(base, config.LedgerConfig{WageProration: config.ProrationMonthly})
		report, err := svc.WagesSummary(context.Background(), 6, 2026, "")
		if err != nil {
			t.Fatalf("WagesSummary: %v", err)
		}
		if want := decimal.NewFromInt(7500); !report.Summaries[0].TotalWages.Equal(want) {
			t.Errorf("prorated wages = %s, want %s", report.Summaries[0].TotalWages, want)
		}
	})

	t.Run("daily-only pays flat", func(t *testing.T) {
		svc := newLedger(base, config.LedgerConfig{WageProration: config.ProrationDailyOnly})
		report, err := svc.WagesSummary(context.Background(), 6, 2026, "")
		if err != nil {
			t.Fatalf("WagesSummary: %v", err)
		}
		if want := decimal.NewFromInt(15000); !report.Summaries[0].TotalWages.Equal(want) {
			t.Errorf("flat wages = %s, want %s", report.Summaries[0].TotalWages, want)
		}
	})
}

func TestWagesSummaryOrphanedLabourReference(t *testing.T) {
	ghost := primitive.NewObjectID()
	store := &stubStore{
		advances: []models.Advance{
			{LabourID: ghost, Date: date(2026, time.July, 3), Amount: 250},
		},
	}

	report, err := newLedger(store, config.LedgerConfig{}).WagesSummary(context.Background(), 7, 2026, "")
	if err != nil {
		t.Fatalf("WagesSummary: %v", err)
	}
	if len(report.Summaries) != 1 {
		t.Fatalf("expected orphaned advance to surface, got %d summaries", len(report.Summaries))
	}

	got := report.Summaries[0]
	if got.Name != "Unknown" {
		t.Errorf("name = %q, want Unknown", got.Name)
	}
	if want := decimal.NewFromInt(-250); !got.NetPayable.Equal(want) {
		t.Errorf("net payable = %s, want %s", got.NetPayable, want)
	}
}

func TestWagesSummaryEmptyPeriod(t *testing.T) {
	store := &stubStore{
		labours: []models.Labour{{ID: primitive.NewObjectID(), Name: "Idle", WageAmount: 500, WageType: models.WageTypeDaily}},
	}

	report, err := newLedger(store, config.LedgerConfig{}).WagesSummary(context.Background(), 1, 2026, "")
	if err != nil {
		t.Fatalf("WagesSummary: %v", err)
	}
	if len(report.Summaries) != 0 {
		t.Errorf("expected empty summary list, got %d entries", len(report.Summaries))
	}
	if !report.GrandTotal.IsZero() {
		t.Errorf("grand total = %s, want 0", report.GrandTotal)
	}
}

func TestWagesSummarySingleLabourFilterAndOrdering(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	store := &stubStore{
		labours: []models.Labour{
			{ID: a, Name: "Zakir", WageAmount: 500, WageType: models.WageTypeDaily},
			{ID: b, Name: "Anand", WageAmount: 600, WageType: models.WageTypeDaily},
		},
		attendance: []models.Attendance{
			{LabourID: a, Date: date(2026, time.August, 3), Status: models.AttendancePresent},
			{LabourID: b, Date: date(2026, time.August, 3), Status: models.AttendancePresent},
		},
	}
	svc := newLedger(store, config.LedgerConfig{})

	report, err := svc.WagesSummary(context.Background(), 8, 2026, "")
	if err != nil {
		t.Fatalf("WagesSummary: %v", err)
	}
	if len(report.Summaries) != 2 || report.Summaries[0].Name != "Anand" {
		t.Errorf("expected name-ordered summaries, got %+v", report.Summaries)
	}

	filtered, err := svc.WagesSummary(context.Background(), 8, 2026, a.Hex())
	if err != nil {
		t.Fatalf("WagesSummary filtered: %v", err)
	}
	if len(filtered.Summaries) != 1 || filtered.Summaries[0].Name != "Zakir" {
		t.Errorf("expected only Zakir, got %+v", filtered.Summaries)
	}
}

func TestWagesSummaryRejectsBadMonth(t *testing.T) {
	svc := newLedger(&stubStore{}, config.LedgerConfig{})
	if _, err := svc.WagesSummary(context.Background(), 13, 2026, ""); err == nil {
		t.Fatal("expected error for month 13")
	}
	if _, err := svc.WagesSummary(context.Background(), 0, 2026, ""); err == nil {
		t.Fatal("expected error for month 0")
	}
}
