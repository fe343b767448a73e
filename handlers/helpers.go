package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/services"
	"github.com/myfinance/tracker-api/store"
)

// respondError maps service errors to HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field"})
	case errors.Is(err, services.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "Already exists"})
	case errors.Is(err, services.ErrBadCredentials),
		errors.Is(err, services.ErrTOTPRequired),
		errors.Is(err, services.ErrBadTOTP):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}

// parseRange reads the start/end query params. A missing bound or an end
// before start yields ok=false: list and report endpoints then return an
// empty result instead of an error.
func parseRange(c *gin.Context) (start, end models.Date, ok bool) {
	startParam := c.Query("start")
	endParam := c.Query("end")
	if startParam == "" || endParam == "" {
		return models.Date{}, models.Date{}, false
	}

	start, err := models.ParseDate(startParam)
	if err != nil {
		return models.Date{}, models.Date{}, false
	}
	end, err = models.ParseDate(endParam)
	if err != nil {
		return models.Date{}, models.Date{}, false
	}
	if end.Before(start) {
		return models.Date{}, models.Date{}, false
	}
	return start, end, true
}
