package handlers

import (
	"net/http"
	"time"

	"accubooks/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports API and database connectivity status
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return sendUnavailable(c)
	}

	if err := sqlDB.Ping(); err != nil {
		return sendUnavailable(c)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func sendUnavailable(c echo.Context) error {
	traceID := getTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	errorResponse := errors.NewErrorResponse(
		errors.SystemServiceUnavailable,
		traceID,
		errors.WithDetails("Database connection failed"),
	)
	return c.JSON(http.StatusServiceUnavailable, errorResponse)
}
