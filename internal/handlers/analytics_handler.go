package handlers

import (
	"net/http"

	"accubooks/internal/dto"
	"accubooks/internal/errors"
	"accubooks/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles the read-only reporting endpoints
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Summary returns total income, total expenses and net balance for the user
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.analyticsService.GetSummary(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSummaryResponse(summary))
}

// CategoryBreakdown returns per-category totals for income and purchases
func (h *AnalyticsHandler) CategoryBreakdown(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	breakdown, err := h.analyticsService.GetCategoryBreakdown(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBreakdownResponse(breakdown))
}

// MonthlyTrends returns per-month income and expense totals, oldest first
func (h *AnalyticsHandler) MonthlyTrends(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	trends, err := h.analyticsService.GetMonthlyTrends(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTrendListResponse(trends))
}
