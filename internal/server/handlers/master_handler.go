package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/sudhakarm/stonemine/internal/domain/models"
)

// MasterStore is the slice of the record store this handler writes through.
type MasterStore interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	DeleteCustomer(ctx context.Context, id primitive.ObjectID) error
	CreateMasterItem(ctx context.Context, item *models.MasterItem) error
	ListMasterItems(ctx context.Context, category string) ([]models.MasterItem, error)
	DeleteMasterItem(ctx context.Context, id primitive.ObjectID) error
}

// MasterHandler serves customers and the lookup lists behind the forms.
type MasterHandler struct {
	repo   MasterStore
	logger *zap.Logger
}

// NewMasterHandler constructs the HTTP handler adapter.
func NewMasterHandler(repo MasterStore, logger *zap.Logger) *MasterHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MasterHandler{repo: repo, logger: logger}
}

type customerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CreateCustomer registers a customer.
func (h *MasterHandler) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	customer := models.Customer{Name: req.Name, Phone: req.Phone, Address: req.Address}
	if err := h.repo.CreateCustomer(c.Request.Context(), &customer); err != nil {
		h.logger.Error("failed creating customer", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondCreated(c, customer)
}

// ListCustomers returns all customers.
func (h *MasterHandler) ListCustomers(c *gin.Context) {
	customers, err := h.repo.ListCustomers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing customers", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondOK(c, customers)
}

// DeleteCustomer removes a customer. Their invoices are kept; pending
// payment grouping reports them by the name stored on the invoice.
func (h *MasterHandler) DeleteCustomer(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": id.Hex()})
}

type masterItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

var masterCategories = map[string]bool{
	models.MasterCategoryWorkType:     true,
	models.MasterCategoryMaterialType: true,
	models.MasterCategoryPaymentMode:  true,
	models.MasterCategoryExpenseType:  true,
}

// CreateItem adds an entry to the lookup list named in the route.
func (h *MasterHandler) CreateItem(c *gin.Context) {
	category := c.Param("category")
	if !masterCategories[category] {
		respondError(c, http.StatusNotFound, "unknown master category")
		return
	}

	var req masterItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item := models.MasterItem{Category: category, Name: req.Name, Description: req.Description}
	if err := h.repo.CreateMasterItem(c.Request.Context(), &item); err != nil {
		h.logger.Error("failed creating master item", zap.Error(err), zap.String("category", category))
		respondStoreError(c, err)
		return
	}
	respondCreated(c, item)
}

// ListItems returns the lookup list named in the route.
func (h *MasterHandler) ListItems(c *gin.Context) {
	category := c.Param("category")
	if !masterCategories[category] {
		respondError(c, http.StatusNotFound, "unknown master category")
		return
	}

	items, err := h.repo.ListMasterItems(c.Request.Context(), category)
	if err != nil {
		h.logger.Error("failed listing master items", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondOK(c, items)
}

// DeleteItem removes a lookup entry.
func (h *MasterHandler) DeleteItem(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteMasterItem(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": id.Hex()})
}
