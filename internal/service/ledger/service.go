// Package ledger turns raw transactional records into summarized financial
// figures: net payable wages, pending customer payments, vendor outstanding
// positions and trip profitability. Every computation is a pure function over
// a snapshot of records read at request time; nothing derived is persisted.
package ledger

import (
	"context"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/sudhakarm/stonemine/internal/config"
	"github.com/sudhakarm/stonemine/internal/domain/models"
)

// Store is the slice of the record store the aggregators read from, plus the
// single atomic write (payment application) the ledger owns.
type Store interface {
	ListLabours(ctx context.Context) ([]models.Labour, error)
	ListAttendanceForPeriod(ctx context.Context, month, year int) ([]models.Attendance, error)
	ListAdvancesForPeriod(ctx context.Context, month, year int) ([]models.Advance, error)
	ListPendingSales(ctx context.Context) ([]models.Sale, error)
	ApplyPayment(ctx context.Context, invoiceID primitive.ObjectID, payment *models.Payment) (*models.Sale, error)
	ListVendors(ctx context.Context, vendorType models.VendorType) ([]models.Vendor, error)
	ListTrips(ctx context.Context) ([]models.Trip, error)
}

// Service exposes the ledger aggregations.
type Service struct {
	store  Store
	cfg    config.LedgerConfig
	logger *zap.Logger
}

// NewService wires a new ledger service instance.
func NewService(store Store, cfg config.LedgerConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, cfg: cfg, logger: logger}
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
