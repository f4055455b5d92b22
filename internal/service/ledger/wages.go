package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sudhakarm/stonemine/internal/config"
	"github.com/sudhakarm/stonemine/internal/domain/models"
)

var half = decimal.NewFromFloat(0.5)

// WagesSummary computes net payable wages for every labour active in the
// given month, or for a single labour when labourID is non-empty. A period
// with no attendance and no advances yields an empty report, not an error.
func (s *Service) WagesSummary(ctx context.Context, month, year int, labourID string) (*models.WageReport, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}

	labours, err := s.store.ListLabours(ctx)
	if err != nil {
		return nil, fmt.Errorf("load labours: %w", err)
	}
	attendance, err := s.store.ListAttendanceForPeriod(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}
	advances, err := s.store.ListAdvancesForPeriod(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("load advances: %w", err)
	}

	labourByID := make(map[string]models.Labour, len(labours))
	for _, l := range labours {
		labourByID[l.ID.Hex()] = l
	}

	type tally struct {
		present int
		halfDay int
		advance decimal.Decimal
	}
	tallies := make(map[string]*tally)
	get := func(id string) *tally {
		t, ok := tallies[id]
		if !ok {
			t = &tally{advance: decimal.Zero}
			tallies[id] = t
		}
		return t
	}

	for _, a := range attendance {
		t := get(a.LabourID.Hex())
		switch a.Status {
		case models.AttendancePresent:
			t.present++
		case models.AttendanceHalfDay:
			t.halfDay++
		}
	}
	for _, adv := range advances {
		t := get(adv.LabourID.Hex())
		t.advance = t.advance.Add(dec(adv.Amount))
	}

	report := &models.WageReport{Month: month, Year: year, GrandTotal: decimal.Zero}
	for id, t := range tallies {
		if labourID != "" && id != labourID {
			continue
		}

		summary := s.summarize(id, labourByID, t.present, t.halfDay, t.advance, month, year)
		report.Summaries = append(report.Summaries, summary)
		report.GrandTotal = report.GrandTotal.Add(summary.NetPayable)
	}

	sort.Slice(report.Summaries, func(i, j int) bool {
		if report.Summaries[i].Name != report.Summaries[j].Name {
			return report.Summaries[i].Name < report.Summaries[j].Name
		}
		return report.Summaries[i].LabourID < report.Summaries[j].LabourID
	})

	return report, nil
}

func (s *Service) summarize(id string, labourByID map[string]models.Labour, present, halfDay int, advance decimal.Decimal, month, year int) models.WageSummary {
	workedDays := decimal.NewFromInt(int64(present)).Add(half.Mul(decimal.NewFromInt(int64(halfDay))))

	summary := models.WageSummary{
		LabourID:     id,
		Name:         "Unknown",
		PresentDays:  present,
		HalfDays:     halfDay,
		WorkedDays:   workedDays,
		WageAmount:   decimal.Zero,
		TotalWages:   decimal.Zero,
		TotalAdvance: advance,
	}

	labour, ok := labourByID[id]
	if !ok {
		// Orphaned reference: the labour was deleted after the records were
		// written. Advances still count against the ledger.
		s.logger.Warn("labour reference not found", zap.String("labour_id", id))
		summary.NetPayable = summary.TotalWages.Sub(advance)
		return summary
	}

	summary.Name = labour.Name
	summary.WorkType = labour.WorkType
	summary.WageType = labour.WageType
	summary.WageAmount = dec(labour.WageAmount)

	switch labour.WageType {
	case models.WageTypeMonthly:
		summary.TotalWages = s.monthlyWages(dec(labour.WageAmount), workedDays, month, year)
	default:
		summary.TotalWages = workedDays.Mul(dec(labour.WageAmount))
	}

	// No floor is applied: a labour who drew more advance than earned carries
	// a negative net payable into the next settlement.
	summary.NetPayable = summary.TotalWages.Sub(advance)
	return summary
}

func (s *Service) monthlyWages(monthlyWage, workedDays decimal.Decimal, month, year int) decimal.Decimal {
	switch s.cfg.WageProration {
	case config.ProrationDailyOnly:
		// Flat monthly amount for any period with recorded attendance.
		if workedDays.IsZero() {
			return decimal.Zero
		}
		return monthlyWage
	default:
		days := daysInMonth(month, year)
		return monthlyWage.Mul(workedDays).DivRound(decimal.NewFromInt(int64(days)), 2)
	}
}

func daysInMonth(month, year int) int {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}
