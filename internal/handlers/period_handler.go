package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/services"
)

// PeriodHandler exposes the selected-month cursor.
type PeriodHandler struct {
	period services.PeriodServicer
}

// NewPeriodHandler creates a new PeriodHandler
func NewPeriodHandler(period services.PeriodServicer) *PeriodHandler {
	return &PeriodHandler{period: period}
}

// ChangeMonthRequest represents the payload for moving the cursor
type ChangeMonthRequest struct {
	Offset *int `json:"offset" binding:"required"`
}

// PeriodResponse represents the cursor position
type PeriodResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// GetPeriod returns the current cursor
// @Summary     Get the selected period
// @Tags        period
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} PeriodResponse "Current year and month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /period [get]
func (h *PeriodHandler) GetPeriod(c *gin.Context) {
	year, month := h.period.Current()
	c.JSON(http.StatusOK, PeriodResponse{Year: year, Month: int(month)})
}

// ChangeMonth moves the cursor by whole months
// @Summary     Change the selected period
// @Description Move the cursor by offset whole months; negative offsets and offsets beyond ±12 are fine
// @Tags        period
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ChangeMonthRequest true "Month offset"
// @Success     200 {object} PeriodResponse "New year and month"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /period/change [post]
func (h *PeriodHandler) ChangeMonth(c *gin.Context) {
	var req ChangeMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	h.period.ChangeMonth(*req.Offset)

	year, month := h.period.Current()
	c.JSON(http.StatusOK, PeriodResponse{Year: year, Month: int(month)})
}
