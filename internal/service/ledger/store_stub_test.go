package ledger_test

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sudhakarm/stonemine/internal/domain/models"
)

// stubStore serves canned records and mimics the store's filtering and the
// atomic payment semantics in memory.
type stubStore struct {
	labours    []models.Labour
	attendance []models.Attendance
	advances   []models.Advance
	sales      []models.Sale
	vendors    []models.Vendor
	trips      []models.Trip
	err        error
}

func (s *stubStore) ListLabours(context.Context) ([]models.Labour, error) {
	return s.labours, s.err
}

func (s *stubStore) ListAttendanceForPeriod(_ context.Context, month, year int) ([]models.Attendance, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Attendance
	for _, a := range s.attendance {
		if inMonth(a.Date, month, year) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubStore) ListAdvancesForPeriod(_ context.Context, month, year int) ([]models.Advance, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Advance
	for _, a := range s.advances {
		if inMonth(a.Date, month, year) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubStore) ListPendingSales(context.Context) ([]models.Sale, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Sale
	for _, sale := range s.sales {
		if sale.BalanceAmount > 0 {
			out = append(out, sale)
		}
	}
	return out, nil
}

func (s *stubStore) ApplyPayment(_ context.Context, invoiceID primitive.ObjectID, payment *models.Payment) (*models.Sale, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.sales {
		if s.sales[i].ID != invoiceID {
			continue
		}
		if s.sales[i].BalanceAmount < payment.Amount {
			return nil, models.ErrOverpayment
		}
		s.sales[i].AmountPaid += payment.Amount
		s.sales[i].BalanceAmount = s.sales[i].GrandTotal - s.sales[i].AmountPaid
		if s.sales[i].BalanceAmount <= 0 {
			s.sales[i].PaymentStatus = models.PaymentStatusPaid
		} else {
			s.sales[i].PaymentStatus = models.PaymentStatusPartial
		}
		sale := s.sales[i]
		return &sale, nil
	}
	return nil, models.ErrNotFound
}

func (s *stubStore) ListVendors(context.Context, models.VendorType) ([]models.Vendor, error) {
	return s.vendors, s.err
}

func (s *stubStore) ListTrips(context.Context) ([]models.Trip, error) {
	return s.trips, s.err
}

func inMonth(t time.Time, month, year int) bool {
	return t.Year() == year && int(t.Month()) == month
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
