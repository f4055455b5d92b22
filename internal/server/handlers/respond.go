package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sudhakarm/stonemine/internal/domain/models"
)

// All endpoints answer with the {success, data|error} envelope.

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// respondStoreError maps sentinel business errors onto status codes; anything
// unrecognized is a generic store failure whose detail stays in the logs.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		respondError(c, http.StatusNotFound, "record not found")
	case errors.Is(err, models.ErrOverpayment):
		respondError(c, http.StatusUnprocessableEntity, "payment exceeds invoice balance")
	case errors.Is(err, models.ErrDuplicateAttendance):
		respondError(c, http.StatusUnprocessableEntity, "attendance already recorded for this labour and date")
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}
