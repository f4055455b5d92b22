package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names within the record store.
const (
	collLabours     = "labours"
	collAttendance  = "attendance"
	collAdvances    = "advances"
	collSales       = "sales"
	collPayments    = "payments"
	collVendors     = "vendors"
	collTrips       = "trips"
	collExpenses    = "expenses"
	collIncome      = "income"
	collCustomers   = "customers"
	collMasterItems = "master_items"
	collDailyClose  = "daily_summaries"
)

// Repository is the MongoDB-backed record store. It owns persistence only;
// derived figures are computed by the ledger services on every request.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewRepository connects to MongoDB and verifies the connection.
func NewRepository(ctx context.Context, uri, dbName string) (*Repository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// EnsureIndexes creates the indexes the business rules depend on. The unique
// compound index on attendance is what rejects duplicate markings.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(collAttendance).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "labour_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create attendance index: %w", err)
	}

	_, err = r.db.Collection(collDailyClose).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create daily summary index: %w", err)
	}

	for _, ix := range []struct {
		coll string
		keys bson.D
	}{
		{collAdvances, bson.D{{Key: "labour_id", Value: 1}, {Key: "date", Value: 1}}},
		{collSales, bson.D{{Key: "customer_id", Value: 1}, {Key: "payment_status", Value: 1}}},
		{collPayments, bson.D{{Key: "date", Value: 1}}},
		{collTrips, bson.D{{Key: "date", Value: 1}}},
		{collExpenses, bson.D{{Key: "date", Value: 1}}},
		{collIncome, bson.D{{Key: "date", Value: 1}}},
	} {
		if _, err := r.db.Collection(ix.coll).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: ix.keys}); err != nil {
			return fmt.Errorf("failed to create %s index: %w", ix.coll, err)
		}
	}

	return nil
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// Day truncates t to midnight UTC. All date-keyed records are stored this way
// so that range filters stay boundary-inclusive.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dateRange builds a boundary-inclusive filter on the date field.
func dateRange(start, end time.Time) bson.M {
	return bson.M{"$gte": Day(start), "$lte": Day(end)}
}

// monthBounds returns the first and last day of a month.
func monthBounds(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}
