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

// SalesStore is the slice of the record store this handler writes through.
type SalesStore interface {
	CreateSale(ctx context.Context, sale *models.Sale) error
	ListSales(ctx context.Context) ([]models.Sale, error)
}

// SalesHandler serves invoices, pending payments and payment recording.
type SalesHandler struct {
	repo   SalesStore
	svc    *ledger.Service
	logger *zap.Logger
}

// NewSalesHandler constructs the HTTP handler adapter.
func NewSalesHandler(repo SalesStore, svc *ledger.Service, logger *zap.Logger) *SalesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesHandler{repo: repo, svc: svc, logger: logger}
}

type saleRequest struct {
	CustomerID    string    `json:"customerId" binding:"required,objectid"`
	CustomerName  string    `json:"customerName" binding:"required"`
	InvoiceNumber string    `json:"invoiceNumber" binding:"required"`
	Date          time.Time `json:"date" binding:"required"`
	MaterialType  string    `json:"materialType"`
	GrandTotal    float64   `json:"grandTotal" binding:"required,gt=0"`
	AmountPaid    float64   `json:"amountPaid" binding:"gte=0"`
	DueDate       time.Time `json:"dueDate"`
}

// Create registers an invoice. The balance is computed server-side from
// grandTotal - amountPaid regardless of what the client sends.
func (h *SalesHandler) Create(c *gin.Context) {
	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.AmountPaid > req.GrandTotal {
		respondError(c, http.StatusUnprocessableEntity, "amountPaid cannot exceed grandTotal")
		return
	}

	customerID, _ := primitive.ObjectIDFromHex(req.CustomerID)
	sale := models.Sale{
		CustomerID:    customerID,
		CustomerName:  req.CustomerName,
		InvoiceNumber: req.InvoiceNumber,
		Date:          req.Date,
		MaterialType:  req.MaterialType,
		GrandTotal:    req.GrandTotal,
		AmountPaid:    req.AmountPaid,
		DueDate:       req.DueDate,
	}

	if err := h.repo.CreateSale(c.Request.Context(), &sale); err != nil {
		h.logger.Error("failed creating sale", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondCreated(c, sale)
}

// List returns all invoices.
func (h *SalesHandler) List(c *gin.Context) {
	sales, err := h.repo.ListSales(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing sales", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondOK(c, sales)
}

// PendingPayments groups open invoices by customer, largest balance first.
func (h *SalesHandler) PendingPayments(c *gin.Context) {
	report, err := h.svc.PendingPayments(c.Request.Context())
	if err != nil {
		h.logger.Error("failed computing pending payments", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondOK(c, report)
}

// RecordPayment applies a payment to an invoice. Overpayment is rejected
// with 422; the store applies the amount atomically.
func (h *SalesHandler) RecordPayment(c *gin.Context) {
	if _, err := primitive.ObjectIDFromHex(c.Param("id")); err != nil {
		respondError(c, http.StatusBadRequest, "invalid invoice id")
		return
	}

	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	sale, err := h.svc.RecordPayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, sale)
}
