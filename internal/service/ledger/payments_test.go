package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sudhakarm/stonemine/internal/config"
	"github.com/sudhakarm/stonemine/internal/domain/models"
)

func pendingSale(customer primitive.ObjectID, name string, total, paid float64) models.Sale {
	return models.Sale{
		ID:            primitive.NewObjectID(),
		CustomerID:    customer,
		CustomerName:  name,
		GrandTotal:    total,
		AmountPaid:    paid,
		BalanceAmount: total - paid,
		PaymentStatus: models.PaymentStatusPartial,
	}
}

func TestPendingPaymentsGroupsByCustomer(t *testing.T) {
	murugan, ganesh := primitive.NewObjectID(), primitive.NewObjectID()
	store := &stubStore{sales: []models.Sale{
		pendingSale(murugan, "Murugan Traders", 10000, 4000),
		pendingSale(murugan, "Murugan Traders", 5000, 1000),
		pendingSale(ganesh, "Ganesh Blue Metals", 20000, 0),
		// Fully settled invoices never reach the report.
		{ID: primitive.NewObjectID(), CustomerID: ganesh, CustomerName: "Ganesh Blue Metals",
			GrandTotal: 7000, AmountPaid: 7000, BalanceAmount: 0, PaymentStatus: models.PaymentStatusPaid},
	}}

	report, err := newLedger(store, config.LedgerConfig{}).PendingPayments(context.Background())
	if err != nil {
		t.Fatalf("PendingPayments: %v", err)
	}
	if len(report.Customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(report.Customers))
	}

	// Largest outstanding balance first.
	first := report.Customers[0]
	if first.CustomerName != "Ganesh Blue Metals" {
		t.Errorf("first customer = %q, want Ganesh Blue Metals", first.CustomerName)
	}
	if want := decimal.NewFromInt(20000); !first.TotalBalance.Equal(want) {
		t.Errorf("first balance = %s, want %s", first.TotalBalance, want)
	}

	second := report.Customers[1]
	if want := decimal.NewFromInt(15000); !second.TotalSales.Equal(want) {
		t.Errorf("murugan sales = %s, want %s", second.TotalSales, want)
	}
	if want := decimal.NewFromInt(5000); !second.TotalPaid.Equal(want) {
		t.Errorf("murugan paid = %s, want %s", second.TotalPaid, want)
	}
	if want := decimal.NewFromInt(10000); !second.TotalBalance.Equal(want) {
		t.Errorf("murugan balance = %s, want %s", second.TotalBalance, want)
	}
	if len(second.Invoices) != 2 {
		t.Errorf("murugan invoices = %d, want 2", len(second.Invoices))
	}

	if want := decimal.NewFromInt(30000); !report.TotalBalance.Equal(want) {
		t.Errorf("global balance = %s, want %s", report.TotalBalance, want)
	}
}

func TestRecordPaymentPartialThenPaid(t *testing.T) {
	invoice := pendingSale(primitive.NewObjectID(), "Murugan Traders", 10000, 4000)
	store := &stubStore{sales: []models.Sale{invoice}}
	svc := newLedger(store, config.LedgerConfig{})

	req := models.PaymentRequest{Amount: 2000, Date: time.Now(), Mode: "Cash"}
	sale, err := svc.RecordPayment(context.Background(), invoice.ID.Hex(), req)
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if sale.BalanceAmount != 4000 {
		t.Errorf("balance = %v, want 4000", sale.BalanceAmount)
	}
	if sale.PaymentStatus != models.PaymentStatusPartial {
		t.Errorf("status = %s, want Partial", sale.PaymentStatus)
	}
	if sale.GrandTotal-sale.AmountPaid != sale.BalanceAmount {
		t.Errorf("balance invariant broken: %v - %v != %v", sale.GrandTotal, sale.AmountPaid, sale.BalanceAmount)
	}

	req.Amount = 4000
	sale, err = svc.RecordPayment(context.Background(), invoice.ID.Hex(), req)
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if sale.BalanceAmount != 0 {
		t.Errorf("balance = %v, want 0", sale.BalanceAmount)
	}
	if sale.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("status = %s, want Paid", sale.PaymentStatus)
	}
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	invoice := pendingSale(primitive.NewObjectID(), "Murugan Traders", 10000, 4000)
	store := &stubStore{sales: []models.Sale{invoice}}
	svc := newLedger(store, config.LedgerConfig{})

	req := models.PaymentRequest{Amount: 7000, Date: time.Now(), Mode: "Cash"}
	if _, err := svc.RecordPayment(context.Background(), invoice.ID.Hex(), req); !errors.Is(err, models.ErrOverpayment) {
		t.Fatalf("expected ErrOverpayment, got %v", err)
	}

	// The invoice must be untouched after the rejection.
	if store.sales[0].BalanceAmount != 6000 {
		t.Errorf("balance mutated to %v after rejected payment", store.sales[0].BalanceAmount)
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	invoice := pendingSale(primitive.NewObjectID(), "Murugan Traders", 10000, 0)
	store := &stubStore{sales: []models.Sale{invoice}}
	svc := newLedger(store, config.LedgerConfig{})

	if _, err := svc.RecordPayment(context.Background(), invoice.ID.Hex(),
		models.PaymentRequest{Amount: 0, Date: time.Now(), Mode: "Cash"}); err == nil {
		t.Error("expected error for zero amount")
	}
	if _, err := svc.RecordPayment(context.Background(), invoice.ID.Hex(),
		models.PaymentRequest{Amount: -50, Date: time.Now(), Mode: "Cash"}); err == nil {
		t.Error("expected error for negative amount")
	}
	if _, err := svc.RecordPayment(context.Background(), "not-an-id",
		models.PaymentRequest{Amount: 100, Date: time.Now(), Mode: "Cash"}); err == nil {
		t.Error("expected error for malformed invoice id")
	}
	if _, err := svc.RecordPayment(context.Background(), primitive.NewObjectID().Hex(),
		models.PaymentRequest{Amount: 100, Date: time.Now(), Mode: "Cash"}); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown invoice, got %v", err)
	}
}
