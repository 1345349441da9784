package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/services"
)

// AnalyticsHandler serves the derived views for the selected period.
type AnalyticsHandler struct {
	analytics services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analytics services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// GetSummary returns the period summary
// @Summary     Get the period summary
// @Description Total expense, total income, and balance for the selected month
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.ExpenseSummary "Summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"summary": h.analytics.Summary()})
}

// GetBreakdown returns the per-category expense breakdown
// @Summary     Get the category breakdown
// @Description Per-category expense totals and percentages for the selected month, largest first
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.BreakdownEntry "Breakdown entries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/breakdown [get]
func (h *AnalyticsHandler) GetBreakdown(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"breakdown": h.analytics.CategoryBreakdown()})
}

// GetTrend returns the daily spending trend
// @Summary     Get the daily trend
// @Description One point per calendar day of the selected month with expense totals and relative bar heights
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.TrendPoint "Trend points"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /analytics/trend [get]
func (h *AnalyticsHandler) GetTrend(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"trend": h.analytics.DailyTrend()})
}
