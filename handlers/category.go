package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myfinance/tracker-api/middleware"
	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/services"
)

type CategoryHandler struct {
	Categories *services.CategoryService
}

func NewCategoryHandler(categories *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{Categories: categories}
}

// GetCategories returns every category, the dropdown source for clients.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.Categories.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.GetUserID(c)
	category, err := h.Categories.SaveCategory(c.Request.Context(), req.Name, &userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.Categories.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
