package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myfinance/tracker-api/middleware"
	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/services"
)

// UserHandler covers account security management (2FA).
type UserHandler struct {
	Users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

func (h *UserHandler) SetupTOTP(c *gin.Context) {
	username := middleware.GetUsername(c)

	setup, err := h.Users.SetupTOTP(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, setup)
}

func (h *UserHandler) VerifyTOTP(c *gin.Context) {
	username := middleware.GetUsername(c)

	var req models.VerifyTOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Users.VerifyTOTP(c.Request.Context(), username, req.Code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "2FA enabled"})
}

func (h *UserHandler) DisableTOTP(c *gin.Context) {
	username := middleware.GetUsername(c)

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Users.DisableTOTP(c.Request.Context(), username, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "2FA disabled"})
}
