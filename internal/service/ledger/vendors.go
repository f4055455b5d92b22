package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sudhakarm/stonemine/internal/domain/models"
)

// Outstanding computes the amount owed to each vendor. The position per
// vendor is a single ledger equation: opening balance + invoiced + potential
// cost from unbilled contract obligations, less payments and advances.
// filter is a case-insensitive substring match on vendor name or type; empty
// matches everything.
func (s *Service) Outstanding(ctx context.Context, filter string) (*models.OutstandingReport, error) {
	vendors, err := s.store.ListVendors(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("load vendors: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(filter))

	report := &models.OutstandingReport{TotalBalance: decimal.Zero}
	for _, v := range vendors {
		if needle != "" &&
			!strings.Contains(strings.ToLower(v.Name), needle) &&
			!strings.Contains(strings.ToLower(string(v.Type)), needle) {
			continue
		}

		potential := PotentialCost(v)
		invoiced := dec(v.OpeningBalance).Add(dec(v.TotalInvoice)).Add(potential)
		paid := dec(v.TotalPaid).Add(dec(v.AdvancePaid))

		position := models.VendorOutstanding{
			VendorID:      v.ID.Hex(),
			Name:          v.Name,
			Type:          v.Type,
			PotentialCost: potential,
			TotalInvoice:  invoiced,
			TotalPaid:     paid,
			Balance:       invoiced.Sub(paid),
		}

		report.Vendors = append(report.Vendors, position)
		report.TotalBalance = report.TotalBalance.Add(position.Balance)
	}

	sort.Slice(report.Vendors, func(i, j int) bool {
		a, b := report.Vendors[i], report.Vendors[j]
		if !a.Balance.Equal(b.Balance) {
			return a.Balance.GreaterThan(b.Balance)
		}
		return a.Name < b.Name
	})

	return report, nil
}

// PotentialCost estimates the unbilled liability a vendor's contract
// structure implies. Explosive suppliers carry no sub-contract structure, so
// their potential cost is always zero.
func PotentialCost(v models.Vendor) decimal.Decimal {
	total := decimal.Zero
	switch v.Type {
	case models.VendorTypeTransportVendor:
		for _, vehicle := range v.Vehicles {
			total = total.Add(dec(vehicle.RatePerTrip)).Add(dec(vehicle.PadiKasu))
		}
	case models.VendorTypeLabourContractor:
		for _, contract := range v.Contracts {
			total = total.Add(dec(contract.AgreedRate).Mul(decimal.NewFromInt(int64(contract.LabourCount))))
		}
	}
	return total
}
