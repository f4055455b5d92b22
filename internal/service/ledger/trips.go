package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sudhakarm/stonemine/internal/domain/models"
)

// TripStats computes net profit per trip and totals across all trips.
// Diesel is always totalled separately; it reduces per-trip profit only when
// the IncludeDieselInProfit policy is on.
func (s *Service) TripStats(ctx context.Context) (*models.TripStats, error) {
	trips, err := s.store.ListTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}

	stats := &models.TripStats{
		TotalIncome:        decimal.Zero,
		TotalDriverPayment: decimal.Zero,
		TotalBata:          decimal.Zero,
		TotalDiesel:        decimal.Zero,
		TotalProfit:        decimal.Zero,
	}

	for _, t := range trips {
		driverCost := dec(t.DriverAmount).Add(dec(t.DriverBata))
		profit := dec(t.TripRate).Sub(driverCost).Sub(dec(t.OtherExpenses))
		if s.cfg.IncludeDieselInProfit {
			profit = profit.Sub(dec(t.DieselTotal))
		}

		stats.Trips = append(stats.Trips, models.TripProfit{
			TripID:        t.ID.Hex(),
			VehicleNumber: t.VehicleNumber,
			Date:          t.Date,
			MaterialType:  t.MaterialType,
			TripRate:      dec(t.TripRate),
			DriverCost:    driverCost,
			DieselTotal:   dec(t.DieselTotal),
			OtherExpenses: dec(t.OtherExpenses),
			NetProfit:     profit,
		})

		stats.TotalIncome = stats.TotalIncome.Add(dec(t.TripRate))
		stats.TotalDriverPayment = stats.TotalDriverPayment.Add(dec(t.DriverAmount))
		stats.TotalBata = stats.TotalBata.Add(dec(t.DriverBata))
		stats.TotalDiesel = stats.TotalDiesel.Add(dec(t.DieselTotal))
		stats.TotalProfit = stats.TotalProfit.Add(profit)
	}

	return stats, nil
}
