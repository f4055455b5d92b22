package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/sudhakarm/stonemine/internal/domain/models"
	"github.com/sudhakarm/stonemine/internal/service/ledger"
)

// TripStore is the slice of the record store this handler writes through.
type TripStore interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	ListTrips(ctx context.Context) ([]models.Trip, error)
	DeleteTrip(ctx context.Context, id primitive.ObjectID) error
}

// TripHandler serves transport trips and their profitability stats.
type TripHandler struct {
	repo   TripStore
	svc    *ledger.Service
	logger *zap.Logger
}

// NewTripHandler constructs the HTTP handler adapter.
func NewTripHandler(repo TripStore, svc *ledger.Service, logger *zap.Logger) *TripHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TripHandler{repo: repo, svc: svc, logger: logger}
}

type tripRequest struct {
	VehicleNumber string    `json:"vehicleNumber" binding:"required"`
	Date          time.Time `json:"date" binding:"required"`
	MaterialType  string    `json:"materialType"`
	TripRate      float64   `json:"tripRate" binding:"required,gt=0"`
	DriverAmount  float64   `json:"driverAmount" binding:"gte=0"`
	DriverBata    float64   `json:"driverBata" binding:"gte=0"`
	DieselQty     float64   `json:"dieselQty" binding:"gte=0"`
	DieselRate    float64   `json:"dieselRate" binding:"gte=0"`
	OtherExpenses float64   `json:"otherExpenses" binding:"gte=0"`
}

// Create records a trip.
func (h *TripHandler) Create(c *gin.Context) {
	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	trip := models.Trip{
		VehicleNumber: req.VehicleNumber,
		Date:          req.Date,
		MaterialType:  req.MaterialType,
		TripRate:      req.TripRate,
		DriverAmount:  req.DriverAmount,
		DriverBata:    req.DriverBata,
		DieselQty:     req.DieselQty,
		DieselRate:    req.DieselRate,
		OtherExpenses: req.OtherExpenses,
	}

	if err := h.repo.CreateTrip(c.Request.Context(), &trip); err != nil {
		h.logger.Error("failed creating trip", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondCreated(c, trip)
}

// List returns all trips.
func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.repo.ListTrips(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing trips", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondOK(c, trips)
}

// Delete removes a trip.
func (h *TripHandler) Delete(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	if err := h.repo.DeleteTrip(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": id.Hex()})
}

// Stats computes per-trip profit and totals.
func (h *TripHandler) Stats(c *gin.Context) {
	stats, err := h.svc.TripStats(c.Request.Context())
	if err != nil {
		h.logger.Error("failed computing trip stats", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondOK(c, stats)
}
