package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sudhakarm/stonemine/internal/domain/models"
)

// CreateSale inserts an invoice. Balance and payment status are recomputed
// here from the grand total; client-supplied values are ignored.
func (r *Repository) CreateSale(ctx context.Context, sale *models.Sale) error {
	now := time.Now().UTC()
	sale.CreatedAt = now
	sale.UpdatedAt = now
	sale.Date = Day(sale.Date)
	sale.BalanceAmount = sale.GrandTotal - sale.AmountPaid
	sale.PaymentStatus = statusForBalance(sale.AmountPaid, sale.BalanceAmount)

	res, err := r.db.Collection(collSales).InsertOne(ctx, sale)
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}
	sale.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetSale fetches one invoice by id.
func (r *Repository) GetSale(ctx context.Context, id primitive.ObjectID) (*models.Sale, error) {
	var sale models.Sale
	err := r.db.Collection(collSales).FindOne(ctx, bson.M{"_id": id}).Decode(&sale)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	return &sale, nil
}

// ListSales returns all invoices, most recent first.
func (r *Repository) ListSales(ctx context.Context) ([]models.Sale, error) {
	cur, err := r.db.Collection(collSales).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	var sales []models.Sale
	if err := cur.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("failed to decode sales: %w", err)
	}
	return sales, nil
}

// ListPendingSales returns invoices still carrying a balance.
func (r *Repository) ListPendingSales(ctx context.Context) ([]models.Sale, error) {
	cur, err := r.db.Collection(collSales).Find(ctx, bson.M{"balance_amount": bson.M{"$gt": 0}})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending sales: %w", err)
	}

	var sales []models.Sale
	if err := cur.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("failed to decode pending sales: %w", err)
	}
	return sales, nil
}

// ListSalesForRange returns invoices dated inside [start, end].
func (r *Repository) ListSalesForRange(ctx context.Context, start, end time.Time) ([]models.Sale, error) {
	cur, err := r.db.Collection(collSales).Find(ctx, bson.M{"date": dateRange(start, end)})
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	var sales []models.Sale
	if err := cur.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("failed to decode sales: %w", err)
	}
	return sales, nil
}

// ApplyPayment atomically applies a payment to an invoice. The filter admits
// the update only while balance_amount >= amount, so concurrent payments can
// never drive a balance negative; the pipeline recomputes the balance from
// grand_total - amount_paid to keep the invariant exact.
func (r *Repository) ApplyPayment(ctx context.Context, invoiceID primitive.ObjectID, payment *models.Payment) (*models.Sale, error) {
	filter := bson.M{"_id": invoiceID, "balance_amount": bson.M{"$gte": payment.Amount}}
	pipeline := bson.A{
		bson.M{"$set": bson.M{
			"amount_paid": bson.M{"$add": bson.A{"$amount_paid", payment.Amount}},
			"updated_at":  time.Now().UTC(),
		}},
		bson.M{"$set": bson.M{
			"balance_amount": bson.M{"$subtract": bson.A{"$grand_total", "$amount_paid"}},
		}},
		bson.M{"$set": bson.M{
			"payment_status": bson.M{"$cond": bson.A{
				bson.M{"$lte": bson.A{"$balance_amount", 0}},
				string(models.PaymentStatusPaid),
				string(models.PaymentStatusPartial),
			}},
		}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var sale models.Sale
	err := r.db.Collection(collSales).FindOneAndUpdate(ctx, filter, pipeline, opts).Decode(&sale)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Either the invoice does not exist or the payment overshoots the
			// balance; look once more to tell the two apart.
			count, countErr := r.db.Collection(collSales).CountDocuments(ctx, bson.M{"_id": invoiceID})
			if countErr != nil {
				return nil, fmt.Errorf("failed to check invoice: %w", countErr)
			}
			if count == 0 {
				return nil, models.ErrNotFound
			}
			return nil, models.ErrOverpayment
		}
		return nil, fmt.Errorf("failed to apply payment: %w", err)
	}

	payment.InvoiceID = invoiceID
	payment.Date = Day(payment.Date)
	payment.CreatedAt = time.Now().UTC()
	if _, err := r.db.Collection(collPayments).InsertOne(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	return &sale, nil
}

// ListPaymentsForRange returns payment records dated inside [start, end].
func (r *Repository) ListPaymentsForRange(ctx context.Context, start, end time.Time) ([]models.Payment, error) {
	cur, err := r.db.Collection(collPayments).Find(ctx, bson.M{"date": dateRange(start, end)})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	var payments []models.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

func statusForBalance(paid, balance float64) models.PaymentStatus {
	switch {
	case balance <= 0:
		return models.PaymentStatusPaid
	case paid > 0:
		return models.PaymentStatusPartial
	default:
		return models.PaymentStatusPending
	}
}
