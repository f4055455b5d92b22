package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/sudhakarm/stonemine/internal/domain/models"
)

// FinanceStore is the slice of the record store this handler writes through.
type FinanceStore interface {
	CreateExpense(ctx context.Context, exp *models.Expense) error
	ListExpensesForRange(ctx context.Context, start, end time.Time) ([]models.Expense, error)
	DeleteExpense(ctx context.Context, id primitive.ObjectID) error
	CreateIncome(ctx context.Context, inc *models.Income) error
	ListIncomeForRange(ctx context.Context, start, end time.Time) ([]models.Income, error)
	DeleteIncome(ctx context.Context, id primitive.ObjectID) error
}

// FinanceHandler serves direct expense and income records.
type FinanceHandler struct {
	repo   FinanceStore
	logger *zap.Logger
}

// NewFinanceHandler constructs the HTTP handler adapter.
func NewFinanceHandler(repo FinanceStore, logger *zap.Logger) *FinanceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinanceHandler{repo: repo, logger: logger}
}

type moneyEntryRequest struct {
	Date        time.Time `json:"date" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	PaymentMode string    `json:"paymentMode" binding:"required"`
}

// CreateExpense records an expense.
func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var req moneyEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	exp := models.Expense{
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		PaymentMode: req.PaymentMode,
	}
	if err := h.repo.CreateExpense(c.Request.Context(), &exp); err != nil {
		h.logger.Error("failed creating expense", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondCreated(c, exp)
}

// ListExpenses returns expenses, optionally bounded by ?startDate&endDate.
func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	start, end, ok := rangeParams(c)
	if !ok {
		return
	}

	expenses, err := h.repo.ListExpensesForRange(c.Request.Context(), start, end)
	if err != nil {
		h.logger.Error("failed listing expenses", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondOK(c, expenses)
}

// DeleteExpense removes an expense record.
func (h *FinanceHandler) DeleteExpense(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteExpense(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": id.Hex()})
}

// CreateIncome records a non-invoice income entry.
func (h *FinanceHandler) CreateIncome(c *gin.Context) {
	var req moneyEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	inc := models.Income{
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		PaymentMode: req.PaymentMode,
	}
	if err := h.repo.CreateIncome(c.Request.Context(), &inc); err != nil {
		h.logger.Error("failed creating income", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondCreated(c, inc)
}

// ListIncome returns income entries, optionally bounded by ?startDate&endDate.
func (h *FinanceHandler) ListIncome(c *gin.Context) {
	start, end, ok := rangeParams(c)
	if !ok {
		return
	}

	income, err := h.repo.ListIncomeForRange(c.Request.Context(), start, end)
	if err != nil {
		h.logger.Error("failed listing income", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondOK(c, income)
}

// DeleteIncome removes an income record.
func (h *FinanceHandler) DeleteIncome(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteIncome(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": id.Hex()})
}

const dateLayout = "2006-01-02"

// rangeParams parses optional startDate/endDate query params; the default
// range is wide open.
func rangeParams(c *gin.Context) (time.Time, time.Time, bool) {
	start := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Now().UTC().AddDate(10, 0, 0)

	if v := c.Query("startDate"); v != "" {
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
			return start, end, false
		}
		start = parsed
	}
	if v := c.Query("endDate"); v != "" {
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "endDate must be YYYY-MM-DD")
			return start, end, false
		}
		end = parsed
	}
	return start, end, true
}
