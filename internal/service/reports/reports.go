// Package reports builds the bookkeeping views: day book, profit and loss,
// cash flow and the yearly month-by-month summary. Like the ledger
// aggregators these are recomputed from raw records on every request.
package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sudhakarm/stonemine/internal/domain/models"
)

// Store is the slice of the record store the reports read from.
type Store interface {
	ListIncomeForRange(ctx context.Context, start, end time.Time) ([]models.Income, error)
	ListExpensesForRange(ctx context.Context, start, end time.Time) ([]models.Expense, error)
	ListPaymentsForRange(ctx context.Context, start, end time.Time) ([]models.Payment, error)
	ListAdvancesForRange(ctx context.Context, start, end time.Time) ([]models.Advance, error)
	ListSalesForRange(ctx context.Context, start, end time.Time) ([]models.Sale, error)
}

// Service exposes the report computations.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService wires a new reports service instance.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// DayBook assembles the income and expense entries for one calendar date.
// Income side: income records and invoice payments received that day.
// Expense side: expense records and labour advances paid out that day.
func (s *Service) DayBook(ctx context.Context, date time.Time) (*models.DayBook, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	income, err := s.store.ListIncomeForRange(ctx, day, day)
	if err != nil {
		return nil, fmt.Errorf("load income: %w", err)
	}
	payments, err := s.store.ListPaymentsForRange(ctx, day, day)
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	expenses, err := s.store.ListExpensesForRange(ctx, day, day)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	advances, err := s.store.ListAdvancesForRange(ctx, day, day)
	if err != nil {
		return nil, fmt.Errorf("load advances: %w", err)
	}

	book := &models.DayBook{
		Date:         day,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, in := range income {
		entry := models.BookEntry{
			Source:      "income",
			Description: in.Description,
			Mode:        in.PaymentMode,
			Amount:      dec(in.Amount),
		}
		book.IncomeEntries = append(book.IncomeEntries, entry)
		book.TotalIncome = book.TotalIncome.Add(entry.Amount)
	}
	for _, p := range payments {
		entry := models.BookEntry{
			Source:      "payment",
			Description: fmt.Sprintf("invoice payment %s", p.Reference),
			Mode:        p.Mode,
			Amount:      dec(p.Amount),
		}
		book.IncomeEntries = append(book.IncomeEntries, entry)
		book.TotalIncome = book.TotalIncome.Add(entry.Amount)
	}
	for _, e := range expenses {
		entry := models.BookEntry{
			Source:      "expense",
			Description: e.Description,
			Mode:        e.PaymentMode,
			Amount:      dec(e.Amount),
		}
		book.ExpenseEntries = append(book.ExpenseEntries, entry)
		book.TotalExpense = book.TotalExpense.Add(entry.Amount)
	}
	for _, a := range advances {
		entry := models.BookEntry{
			Source:      "advance",
			Description: a.Remarks,
			Mode:        a.PaymentMode,
			Amount:      dec(a.Amount),
		}
		book.ExpenseEntries = append(book.ExpenseEntries, entry)
		book.TotalExpense = book.TotalExpense.Add(entry.Amount)
	}

	book.Net = book.TotalIncome.Sub(book.TotalExpense)
	return book, nil
}

// ProfitLoss rolls revenue (invoice grand totals plus other income) and
// expenses up by category over a date range.
func (s *Service) ProfitLoss(ctx context.Context, start, end time.Time) (*models.ProfitLossReport, error) {
	sales, err := s.store.ListSalesForRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	income, err := s.store.ListIncomeForRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load income: %w", err)
	}
	expenses, err := s.store.ListExpensesForRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}

	revenue := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		category := sale.MaterialType
		if category == "" {
			category = "Sales"
		}
		revenue[category] = revenue[category].Add(dec(sale.GrandTotal))
	}
	for _, in := range income {
		category := in.Category
		if category == "" {
			category = "Other Income"
		}
		revenue[category] = revenue[category].Add(dec(in.Amount))
	}

	spend := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		category := e.Category
		if category == "" {
			category = "Uncategorized"
		}
		spend[category] = spend[category].Add(dec(e.Amount))
	}

	report := &models.ProfitLossReport{
		StartDate:    start,
		EndDate:      end,
		Revenue:      categoryTotals(revenue),
		Expenses:     categoryTotals(spend),
		TotalRevenue: decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, c := range report.Revenue {
		report.TotalRevenue = report.TotalRevenue.Add(c.Amount)
	}
	for _, c := range report.Expenses {
		report.TotalExpense = report.TotalExpense.Add(c.Amount)
	}
	report.NetProfit = report.TotalRevenue.Sub(report.TotalExpense)

	return report, nil
}

// CashFlow builds a per-day inflow/outflow series over a date range.
// Inflows are payments and income; outflows are expenses and advances.
func (s *Service) CashFlow(ctx context.Context, start, end time.Time) (*models.CashFlowReport, error) {
	income, err := s.store.ListIncomeForRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load income: %w", err)
	}
	payments, err := s.store.ListPaymentsForRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	expenses, err := s.store.ListExpensesForRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	advances, err := s.store.ListAdvancesForRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load advances: %w", err)
	}

	type movement struct{ in, out decimal.Decimal }
	byDay := make(map[time.Time]*movement)
	at := func(t time.Time) *movement {
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		m, ok := byDay[day]
		if !ok {
			m = &movement{in: decimal.Zero, out: decimal.Zero}
			byDay[day] = m
		}
		return m
	}

	for _, in := range income {
		m := at(in.Date)
		m.in = m.in.Add(dec(in.Amount))
	}
	for _, p := range payments {
		m := at(p.Date)
		m.in = m.in.Add(dec(p.Amount))
	}
	for _, e := range expenses {
		m := at(e.Date)
		m.out = m.out.Add(dec(e.Amount))
	}
	for _, a := range advances {
		m := at(a.Date)
		m.out = m.out.Add(dec(a.Amount))
	}

	report := &models.CashFlowReport{
		StartDate:    start,
		EndDate:      end,
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
	}
	for day, m := range byDay {
		report.Days = append(report.Days, models.CashFlowDay{
			Date:    day,
			Inflow:  m.in,
			Outflow: m.out,
			Net:     m.in.Sub(m.out),
		})
		report.TotalInflow = report.TotalInflow.Add(m.in)
		report.TotalOutflow = report.TotalOutflow.Add(m.out)
	}
	sort.Slice(report.Days, func(i, j int) bool { return report.Days[i].Date.Before(report.Days[j].Date) })
	report.Net = report.TotalInflow.Sub(report.TotalOutflow)

	return report, nil
}

// YearlySummary returns income, expense and profit totals for each month of
// the given year.
func (s *Service) YearlySummary(ctx context.Context, year int) (*models.YearlySummary, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	flow, err := s.CashFlow(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := &models.YearlySummary{
		Year:         year,
		Months:       make([]models.MonthSummary, 12),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for i := range summary.Months {
		summary.Months[i] = models.MonthSummary{
			Month:   i + 1,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
			Profit:  decimal.Zero,
		}
	}

	for _, day := range flow.Days {
		m := &summary.Months[int(day.Date.Month())-1]
		m.Income = m.Income.Add(day.Inflow)
		m.Expense = m.Expense.Add(day.Outflow)
		m.Profit = m.Income.Sub(m.Expense)
	}

	summary.TotalIncome = flow.TotalInflow
	summary.TotalExpense = flow.TotalOutflow
	summary.TotalProfit = summary.TotalIncome.Sub(summary.TotalExpense)

	return summary, nil
}

func categoryTotals(m map[string]decimal.Decimal) []models.CategoryTotal {
	totals := make([]models.CategoryTotal, 0, len(m))
	for category, amount := range m {
		totals = append(totals, models.CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Amount.Equal(totals[j].Amount) {
			return totals[i].Amount.GreaterThan(totals[j].Amount)
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
