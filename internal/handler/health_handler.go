package handler

import (
	"dress-rental-service/pkg/logger"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HealthCheck handles the health check endpoint
func (h *Handler) HealthCheck(c echo.Context) error {
	log := logger.FromContext(c)
	log.Debug("Health check requested")

	return c.JSON(http.StatusOK, echo.Map{
		"status":    "ok",
		"time":      h.now().UTC().Format(http.TimeFormat),
		"dresses":   h.catalog.Count(),
		"rentals":   len(h.rentals.ListRentals()),
		"openForms": h.forms.Count(),
	})
}

// Hello returns a simple welcome message
func (h *Handler) Hello(c echo.Context) error {
	logger.FromContext(c).Info("Hello from dress-rental-service", zap.String("locale", h.locale.Tag.String()))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Welcome to the dress rental API",
		"version": "1.0.0",
	})
}
