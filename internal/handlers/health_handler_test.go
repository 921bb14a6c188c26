package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"accubooks/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheck_Healthy(t *testing.T) {
	db := database.SetupTestDB(t)
	handler := NewHealthCheckHandler(db.DB)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	db := database.SetupTestDB(t)
	sqlDB, err := db.DB.DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Close())

	handler := NewHealthCheckHandler(db.DB)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, handler.HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_003")
}
