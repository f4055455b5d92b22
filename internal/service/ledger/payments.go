package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/sudhakarm/stonemine/internal/domain/models"
)

// PendingPayments groups open invoices by customer with running totals,
// customers with the largest outstanding balance first.
func (s *Service) PendingPayments(ctx context.Context) (*models.PendingPaymentsReport, error) {
	sales, err := s.store.ListPendingSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pending sales: %w", err)
	}

	grouped := make(map[string]*models.CustomerPending)
	for _, sale := range sales {
		key := sale.CustomerID.Hex()
		entry, ok := grouped[key]
		if !ok {
			name := sale.CustomerName
			if name == "" {
				name = "Unknown"
			}
			entry = &models.CustomerPending{
				CustomerID:   key,
				CustomerName: name,
				TotalSales:   decimal.Zero,
				TotalPaid:    decimal.Zero,
				TotalBalance: decimal.Zero,
			}
			grouped[key] = entry
		}

		entry.Invoices = append(entry.Invoices, sale)
		entry.TotalSales = entry.TotalSales.Add(dec(sale.GrandTotal))
		entry.TotalPaid = entry.TotalPaid.Add(dec(sale.AmountPaid))
		entry.TotalBalance = entry.TotalBalance.Add(dec(sale.BalanceAmount))
	}

	report := &models.PendingPaymentsReport{TotalBalance: decimal.Zero}
	for _, entry := range grouped {
		report.Customers = append(report.Customers, *entry)
		report.TotalBalance = report.TotalBalance.Add(entry.TotalBalance)
	}

	sort.Slice(report.Customers, func(i, j int) bool {
		a, b := report.Customers[i], report.Customers[j]
		if !a.TotalBalance.Equal(b.TotalBalance) {
			return a.TotalBalance.GreaterThan(b.TotalBalance)
		}
		return a.CustomerName < b.CustomerName
	})

	return report, nil
}

// RecordPayment applies a settlement against an invoice. The amount must be
// positive and no greater than the current balance; the store enforces the
// upper bound atomically so concurrent submissions cannot overdraw.
func (s *Service) RecordPayment(ctx context.Context, invoiceID string, req models.PaymentRequest) (*models.Sale, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive, got %v", req.Amount)
	}

	oid, err := primitive.ObjectIDFromHex(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid invoice id %q: %w", invoiceID, err)
	}

	payment := &models.Payment{
		Amount:    req.Amount,
		Date:      req.Date,
		Mode:      req.Mode,
		Reference: req.Reference,
		Notes:     req.Notes,
	}

	sale, err := s.store.ApplyPayment(ctx, oid, payment)
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment recorded",
		zap.String("invoice_id", invoiceID),
		zap.Float64("amount", req.Amount),
		zap.String("status", string(sale.PaymentStatus)))

	return sale, nil
}
