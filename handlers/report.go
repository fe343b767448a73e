package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myfinance/tracker-api/middleware"
	"github.com/myfinance/tracker-api/services"
)

// ReportHandler serves the read-only expense summary endpoints. All of them
// tolerate empty histories: an empty object or zero, never an error.
type ReportHandler struct {
	Reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{Reports: reports}
}

// GetCategorySummary returns category name → summed amount over the
// caller's full expense history.
func (h *ReportHandler) GetCategorySummary(c *gin.Context) {
	username := middleware.GetUsername(c)

	totals, err := h.Reports.TotalByCategory(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// GetMonthlySummary returns "YYYY-MM" → summed amount.
func (h *ReportHandler) GetMonthlySummary(c *gin.Context) {
	username := middleware.GetUsername(c)

	totals, err := h.Reports.TotalByMonth(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// GetRangeSummary returns one total for [start, end]; 0 when the range is
// missing, inverted, or empty.
func (h *ReportHandler) GetRangeSummary(c *gin.Context) {
	username := middleware.GetUsername(c)

	start, end, ok := parseRange(c)
	if !ok {
		c.JSON(http.StatusOK, 0.0)
		return
	}

	total, err := h.Reports.TotalInRange(c.Request.Context(), username, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, total)
}

// GetRangeCategorySummary returns category → sum restricted to [start, end].
func (h *ReportHandler) GetRangeCategorySummary(c *gin.Context) {
	username := middleware.GetUsername(c)

	start, end, ok := parseRange(c)
	if !ok {
		c.JSON(http.StatusOK, map[string]float64{})
		return
	}

	totals, err := h.Reports.TotalByCategoryInRange(c.Request.Context(), username, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}
