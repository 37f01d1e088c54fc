package handler

import (
	"dress-rental-service/pkg/logger"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SettingsRequest defines the structure for site settings updates
type SettingsRequest struct {
	HeroImage string `json:"heroImage"`
}

// GetSettings returns the site settings
func (h *Handler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.settings.Get())
}

// UpdateSettings replaces the hero image. An empty value keeps the current one.
func (h *Handler) UpdateSettings(c echo.Context) error {
	log := logger.FromContext(c)

	var req SettingsRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	settings := h.settings.SetHeroImage(req.HeroImage)
	log.Info("Settings updated", zap.String("hero_image", settings.HeroImage))
	return c.JSON(http.StatusOK, settings)
}
