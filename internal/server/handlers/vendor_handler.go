package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/sudhakarm/stonemine/internal/domain/models"
	"github.com/sudhakarm/stonemine/internal/service/ledger"
)

// VendorStore is the slice of the record store this handler writes through.
type VendorStore interface {
	CreateVendor(ctx context.Context, vendor *models.Vendor) error
	ListVendors(ctx context.Context, vendorType models.VendorType) ([]models.Vendor, error)
	UpdateVendor(ctx context.Context, id primitive.ObjectID, vendor *models.Vendor) error
	DeleteVendor(ctx context.Context, id primitive.ObjectID) error
}

// VendorHandler serves vendor masters and the outstanding computation.
type VendorHandler struct {
	repo   VendorStore
	svc    *ledger.Service
	logger *zap.Logger
}

// NewVendorHandler constructs the HTTP handler adapter.
func NewVendorHandler(repo VendorStore, svc *ledger.Service, logger *zap.Logger) *VendorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VendorHandler{repo: repo, svc: svc, logger: logger}
}

type vendorRequest struct {
	Name           string                  `json:"name" binding:"required"`
	Phone          string                  `json:"phone"`
	Contracts      []models.VendorContract `json:"contracts"`
	Vehicles       []models.VendorVehicle  `json:"vehicles"`
	OpeningBalance float64                 `json:"openingBalance"`
	TotalInvoice   float64                 `json:"totalInvoice" binding:"gte=0"`
	TotalPaid      float64                 `json:"totalPaid" binding:"gte=0"`
	AdvancePaid    float64                 `json:"advancePaid" binding:"gte=0"`
}

// Create registers a vendor of the type named in the route.
func (h *VendorHandler) Create(vendorType models.VendorType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req vendorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		vendor := models.Vendor{
			Name:           req.Name,
			Type:           vendorType,
			Phone:          req.Phone,
			Contracts:      req.Contracts,
			Vehicles:       req.Vehicles,
			OpeningBalance: req.OpeningBalance,
			TotalInvoice:   req.TotalInvoice,
			TotalPaid:      req.TotalPaid,
			AdvancePaid:    req.AdvancePaid,
		}

		if err := h.repo.CreateVendor(c.Request.Context(), &vendor); err != nil {
			h.logger.Error("failed creating vendor", zap.Error(err), zap.String("type", string(vendorType)))
			respondStoreError(c, err)
			return
		}
		respondCreated(c, vendor)
	}
}

// List returns vendors of the type named in the route.
func (h *VendorHandler) List(vendorType models.VendorType) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendors, err := h.repo.ListVendors(c.Request.Context(), vendorType)
		if err != nil {
			h.logger.Error("failed listing vendors", zap.Error(err))
			respondStoreError(c, err)
			return
		}
		respondOK(c, vendors)
	}
}

// Update edits a vendor of the type named in the route.
func (h *VendorHandler) Update(vendorType models.VendorType) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := objectIDParam(c)
		if !ok {
			return
		}

		var req vendorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		vendor := models.Vendor{
			Name:           req.Name,
			Type:           vendorType,
			Phone:          req.Phone,
			Contracts:      req.Contracts,
			Vehicles:       req.Vehicles,
			OpeningBalance: req.OpeningBalance,
			TotalInvoice:   req.TotalInvoice,
			TotalPaid:      req.TotalPaid,
			AdvancePaid:    req.AdvancePaid,
		}

		if err := h.repo.UpdateVendor(c.Request.Context(), id, &vendor); err != nil {
			respondStoreError(c, err)
			return
		}
		vendor.ID = id
		respondOK(c, vendor)
	}
}

// Delete removes a vendor.
func (h *VendorHandler) Delete(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	if err := h.repo.DeleteVendor(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": id.Hex()})
}

// Outstanding computes per-vendor balances, with ?q= as a case-insensitive
// name/type filter.
func (h *VendorHandler) Outstanding(c *gin.Context) {
	report, err := h.svc.Outstanding(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.logger.Error("failed computing vendor outstanding", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondOK(c, report)
}
