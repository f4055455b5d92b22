package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sudhakarm/stonemine/internal/domain/models"
	"github.com/sudhakarm/stonemine/internal/service/reports"
)

type stubStore struct {
	income   []models.Income
	expenses []models.Expense
	payments []models.Payment
	advances []models.Advance
	sales    []models.Sale
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func (s *stubStore) ListIncomeForRange(_ context.Context, start, end time.Time) ([]models.Income, error) {
	var out []models.Income
	for _, r := range s.income {
		if within(r.Date, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubStore) ListExpensesForRange(_ context.Context, start, end time.Time) ([]models.Expense, error) {
	var out []models.Expense
	for _, r := range s.expenses {
		if within(r.Date, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubStore) ListPaymentsForRange(_ context.Context, start, end time.Time) ([]models.Payment, error) {
	var out []models.Payment
	for _, r := range s.payments {
		if within(r.Date, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubStore) ListAdvancesForRange(_ context.Context, start, end time.Time) ([]models.Advance, error) {
	var out []models.Advance
	for _, r := range s.advances {
		if within(r.Date, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubStore) ListSalesForRange(_ context.Context, start, end time.Time) ([]models.Sale, error) {
	var out []models.Sale
	for _, r := range s.sales {
		if within(r.Date, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayBook(t *testing.T) {
	target := day(2026, time.May, 10)
	store := &stubStore{
		income: []models.Income{
			{Date: target, Description: "scrap sale", Amount: 1500, PaymentMode: "Cash"},
			{Date: day(2026, time.May, 11), Description: "next day", Amount: 999},
		},
		payments: []models.Payment{
			{Date: target, Reference: "INV-12", Amount: 6000, Mode: "Bank"},
		},
		expenses: []models.Expense{
			{Date: target, Description: "diesel", Amount: 2000, PaymentMode: "Cash"},
		},
		advances: []models.Advance{
			{Date: target, Remarks: "advance to Ravi", Amount: 500, PaymentMode: "Cash"},
		},
	}

	book, err := reports.NewService(store, nil).DayBook(context.Background(), target)
	if err != nil {
		t.Fatalf("DayBook: %v", err)
	}

	if len(book.IncomeEntries) != 2 {
		t.Errorf("income entries = %d, want 2", len(book.IncomeEntries))
	}
	if len(book.ExpenseEntries) != 2 {
		t.Errorf("expense entries = %d, want 2", len(book.ExpenseEntries))
	}
	if want := decimal.NewFromInt(7500); !book.TotalIncome.Equal(want) {
		t.Errorf("total income = %s, want %s", book.TotalIncome, want)
	}
	if want := decimal.NewFromInt(2500); !book.TotalExpense.Equal(want) {
		t.Errorf("total expense = %s, want %s", book.TotalExpense, want)
	}
	if want := decimal.NewFromInt(5000); !book.Net.Equal(want) {
		t.Errorf("net = %s, want %s", book.Net, want)
	}
}

func TestProfitLossByCategory(t *testing.T) {
	start, end := day(2026, time.May, 1), day(2026, time.May, 31)
	store := &stubStore{
		sales: []models.Sale{
			{Date: day(2026, time.May, 3), MaterialType: "M-Sand", GrandTotal: 40000},
			{Date: day(2026, time.May, 9), MaterialType: "M-Sand", GrandTotal: 25000},
			{Date: day(2026, time.May, 12), MaterialType: "Blue Metal", GrandTotal: 30000},
		},
		income: []models.Income{
			{Date: day(2026, time.May, 20), Category: "Scrap", Amount: 5000},
		},
		expenses: []models.Expense{
			{Date: day(2026, time.May, 5), Category: "Diesel", Amount: 12000},
			{Date: day(2026, time.May, 6), Category: "Diesel", Amount: 8000},
			{Date: day(2026, time.May, 7), Category: "Maintenance", Amount: 3000},
		},
	}

	report, err := reports.NewService(store, nil).ProfitLoss(context.Background(), start, end)
	if err != nil {
		t.Fatalf("ProfitLoss: %v", err)
	}

	if want := decimal.NewFromInt(100000); !report.TotalRevenue.Equal(want) {
		t.Errorf("total revenue = %s, want %s", report.TotalRevenue, want)
	}
	if want := decimal.NewFromInt(23000); !report.TotalExpense.Equal(want) {
		t.Errorf("total expense = %s, want %s", report.TotalExpense, want)
	}
	if want := decimal.NewFromInt(77000); !report.NetProfit.Equal(want) {
		t.Errorf("net profit = %s, want %s", report.NetProfit, want)
	}

	// Categories ordered largest first.
	if report.Revenue[0].Category != "M-Sand" || !report.Revenue[0].Amount.Equal(decimal.NewFromInt(65000)) {
		t.Errorf("top revenue category = %+v, want M-Sand 65000", report.Revenue[0])
	}
	if report.Expenses[0].Category != "Diesel" || !report.Expenses[0].Amount.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("top expense category = %+v, want Diesel 20000", report.Expenses[0])
	}
}

func TestCashFlowSeries(t *testing.T) {
	start, end := day(2026, time.May, 1), day(2026, time.May, 31)
	store := &stubStore{
		payments: []models.Payment{
			{Date: day(2026, time.May, 2), Amount: 10000},
			{Date: day(2026, time.May, 4), Amount: 2000},
		},
		income: []models.Income{
			{Date: day(2026, time.May, 2), Amount: 1000},
		},
		expenses: []models.Expense{
			{Date: day(2026, time.May, 2), Amount: 4000},
		},
		advances: []models.Advance{
			{Date: day(2026, time.May, 4), Amount: 500},
		},
	}

	report, err := reports.NewService(store, nil).CashFlow(context.Background(), start, end)
	if err != nil {
		t.Fatalf("CashFlow: %v", err)
	}

	if len(report.Days) != 2 {
		t.Fatalf("expected 2 active days, got %d", len(report.Days))
	}
	if !report.Days[0].Date.Before(report.Days[1].Date) {
		t.Error("days must be in chronological order")
	}

	may2 := report.Days[0]
	if want := decimal.NewFromInt(11000); !may2.Inflow.Equal(want) {
		t.Errorf("may 2 inflow = %s, want %s", may2.Inflow, want)
	}
	if want := decimal.NewFromInt(7000); !may2.Net.Equal(want) {
		t.Errorf("may 2 net = %s, want %s", may2.Net, want)
	}

	if want := decimal.NewFromInt(13000); !report.TotalInflow.Equal(want) {
		t.Errorf("total inflow = %s, want %s", report.TotalInflow, want)
	}
	if want := decimal.NewFromInt(4500); !report.TotalOutflow.Equal(want) {
		t.Errorf("total outflow = %s, want %s", report.TotalOutflow, want)
	}
	if want := decimal.NewFromInt(8500); !report.Net.Equal(want) {
		t.Errorf("net = %s, want %s", report.Net, want)
	}
}

func TestYearlySummary(t *testing.T) {
	store := &stubStore{
		payments: []models.Payment{
			{Date: day(2026, time.January, 15), Amount: 50000},
			{Date: day(2026, time.March, 2), Amount: 20000},
		},
		expenses: []models.Expense{
			{Date: day(2026, time.January, 20), Amount: 30000},
			// Outside the year, must be excluded.
			{Date: day(2025, time.December, 31), Amount: 99999},
		},
	}

	summary, err := reports.NewService(store, nil).YearlySummary(context.Background(), 2026)
	if err != nil {
		t.Fatalf("YearlySummary: %v", err)
	}

	if len(summary.Months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(summary.Months))
	}

	jan := summary.Months[0]
	if !jan.Income.Equal(decimal.NewFromInt(50000)) || !jan.Expense.Equal(decimal.NewFromInt(30000)) {
		t.Errorf("january = %+v, want income 50000 expense 30000", jan)
	}
	if !jan.Profit.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("january profit = %s, want 20000", jan.Profit)
	}

	feb := summary.Months[1]
	if !feb.Income.IsZero() || !feb.Expense.IsZero() {
		t.Errorf("february should be empty, got %+v", feb)
	}

	if want := decimal.NewFromInt(70000); !summary.TotalIncome.Equal(want) {
		t.Errorf("total income = %s, want %s", summary.TotalIncome, want)
	}
	if want := decimal.NewFromInt(40000); !summary.TotalProfit.Equal(want) {
		t.Errorf("total profit = %s, want %s", summary.TotalProfit, want)
	}
}
