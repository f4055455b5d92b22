package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sudhakarm/stonemine/internal/service/reports"
)

// ReportHandler serves the bookkeeping reports.
type ReportHandler struct {
	svc    *reports.Service
	logger *zap.Logger
}

// NewReportHandler constructs the HTTP handler adapter.
func NewReportHandler(svc *reports.Service, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{svc: svc, logger: logger}
}

// DayBook returns the income/expense picture for ?date= (default today).
func (h *ReportHandler) DayBook(c *gin.Context) {
	date := time.Now().UTC()
	if v := c.Query("date"); v != "" {
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	book, err := h.svc.DayBook(c.Request.Context(), date)
	if err != nil {
		h.logger.Error("failed building day book", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondOK(c, book)
}

// ProfitLoss returns revenue vs expense by category over ?startDate&endDate.
func (h *ReportHandler) ProfitLoss(c *gin.Context) {
	start, end, ok := rangeParams(c)
	if !ok {
		return
	}

	report, err := h.svc.ProfitLoss(c.Request.Context(), start, end)
	if err != nil {
		h.logger.Error("failed building profit-loss report", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondOK(c, report)
}

// CashFlow returns the per-day inflow/outflow series over ?startDate&endDate.
func (h *ReportHandler) CashFlow(c *gin.Context) {
	start, end, ok := rangeParams(c)
	if !ok {
		return
	}

	report, err := h.svc.CashFlow(c.Request.Context(), start, end)
	if err != nil {
		h.logger.Error("failed building cash-flow report", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondOK(c, report)
}

// YearlySummary returns month-by-month totals for ?year= (default current).
func (h *ReportHandler) YearlySummary(c *gin.Context) {
	year := time.Now().UTC().Year()
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "year must be a number")
			return
		}
		year = parsed
	}

	summary, err := h.svc.YearlySummary(c.Request.Context(), year)
	if err != nil {
		h.logger.Error("failed building yearly summary", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondOK(c, summary)
}
