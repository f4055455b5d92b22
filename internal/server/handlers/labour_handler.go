package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/sudhakarm/stonemine/internal/domain/models"
	"github.com/sudhakarm/stonemine/internal/service/ledger"
)

// LabourStore is the slice of the record store this handler writes through.
type LabourStore interface {
	CreateLabour(ctx context.Context, labour *models.Labour) error
	ListLabours(ctx context.Context) ([]models.Labour, error)
	UpdateLabour(ctx context.Context, id primitive.ObjectID, labour *models.Labour) error
	DeleteLabour(ctx context.Context, id primitive.ObjectID) error
	MarkAttendance(ctx context.Context, att *models.Attendance) error
	CreateAdvance(ctx context.Context, adv *models.Advance) error
}

// LabourHandler serves labour master data, attendance, advances and the
// wages summary.
type LabourHandler struct {
	repo   LabourStore
	svc    *ledger.Service
	logger *zap.Logger
}

// NewLabourHandler constructs the HTTP handler adapter.
func NewLabourHandler(repo LabourStore, svc *ledger.Service, logger *zap.Logger) *LabourHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LabourHandler{repo: repo, svc: svc, logger: logger}
}

type labourRequest struct {
	Name       string    `json:"name" binding:"required"`
	WorkType   string    `json:"workType" binding:"required"`
	WageAmount float64   `json:"wageAmount" binding:"required,gt=0"`
	WageType   string    `json:"wageType" binding:"required,oneof=Daily Monthly"`
	JoinDate   time.Time `json:"joinDate"`
	Status     string    `json:"status"`
}

// Create registers a new labour.
func (h *LabourHandler) Create(c *gin.Context) {
	var req labourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	labour := models.Labour{
		Name:       req.Name,
		WorkType:   req.WorkType,
		WageAmount: req.WageAmount,
		WageType:   models.WageType(req.WageType),
		JoinDate:   req.JoinDate,
		Status:     req.Status,
	}
	if labour.Status == "" {
		labour.Status = "Active"
	}

	if err := h.repo.CreateLabour(c.Request.Context(), &labour); err != nil {
		h.logger.Error("failed creating labour", zap.Error(err))
		respondStoreError(c, err)
		return
	}

	respondCreated(c, labour)
}

// List returns all labour records.
func (h *LabourHandler) List(c *gin.Context) {
	labours, err := h.repo.ListLabours(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing labours", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondOK(c, labours)
}

// Update edits a labour master record.
func (h *LabourHandler) Update(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	var req labourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	labour := models.Labour{
		Name:       req.Name,
		WorkType:   req.WorkType,
		WageAmount: req.WageAmount,
		WageType:   models.WageType(req.WageType),
		JoinDate:   req.JoinDate,
		Status:     req.Status,
	}

	if err := h.repo.UpdateLabour(c.Request.Context(), id, &labour); err != nil {
		h.logger.Error("failed updating labour", zap.Error(err), zap.String("id", id.Hex()))
		respondStoreError(c, err)
		return
	}

	labour.ID = id
	respondOK(c, labour)
}

// Delete removes a labour master record. Historic attendance and advances
// are left untouched.
func (h *LabourHandler) Delete(c *gin.Context) {
	id, ok := objectIDParam(c)
	if !ok {
		return
	}

	if err := h.repo.DeleteLabour(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": id.Hex()})
}

type attendanceRequest struct {
	LabourID      string    `json:"labourId" binding:"required,objectid"`
	Date          time.Time `json:"date" binding:"required"`
	Status        string    `json:"status" binding:"required,oneof=Present 'Half Day' Absent"`
	OvertimeHours float64   `json:"overtimeHours" binding:"gte=0"`
}

// MarkAttendance records one labour's presence for a date. A duplicate
// marking for the same labour and date is rejected.
func (h *LabourHandler) MarkAttendance(c *gin.Context) {
	var req attendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	labourID, _ := primitive.ObjectIDFromHex(req.LabourID)
	att := models.Attendance{
		LabourID:      labourID,
		Date:          req.Date,
		Status:        models.AttendanceStatus(req.Status),
		OvertimeHours: req.OvertimeHours,
	}

	if err := h.repo.MarkAttendance(c.Request.Context(), &att); err != nil {
		respondStoreError(c, err)
		return
	}
	respondCreated(c, att)
}

type advanceRequest struct {
	LabourID    string    `json:"labourId" binding:"required,objectid"`
	Date        time.Time `json:"date" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	PaymentMode string    `json:"paymentMode" binding:"required"`
	Remarks     string    `json:"remarks"`
}

// CreateAdvance appends a cash advance against future wages.
func (h *LabourHandler) CreateAdvance(c *gin.Context) {
	var req advanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	labourID, _ := primitive.ObjectIDFromHex(req.LabourID)
	adv := models.Advance{
		LabourID:    labourID,
		Date:        req.Date,
		Amount:      req.Amount,
		PaymentMode: req.PaymentMode,
		Remarks:     req.Remarks,
	}

	if err := h.repo.CreateAdvance(c.Request.Context(), &adv); err != nil {
		h.logger.Error("failed creating advance", zap.Error(err))
		respondStoreError(c, err)
		return
	}
	respondCreated(c, adv)
}

// WagesSummary computes net payable wages for a month, optionally for a
// single labour via ?labourId=.
func (h *LabourHandler) WagesSummary(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		respondError(c, http.StatusBadRequest, "month must be a number between 1 and 12")
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "year must be a number")
		return
	}

	report, err := h.svc.WagesSummary(c.Request.Context(), month, year, c.Query("labourId"))
	if err != nil {
		h.logger.Error("failed computing wages summary", zap.Error(err),
			zap.Int("month", month), zap.Int("year", year))
		respondStoreError(c, err)
		return
	}
	respondOK(c, report)
}

// objectIDParam parses the :id path param, answering 400 on garbage input.
func objectIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return primitive.NilObjectID, false
	}
	return id, true
}
