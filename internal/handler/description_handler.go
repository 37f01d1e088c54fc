package handler

import (
	"context"
	"dress-rental-service/internal/describe"
	"dress-rental-service/pkg/logger"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusClientClosedRequest is the nginx convention for a caller that hung up
const statusClientClosedRequest = 499

// DescriptionRequest defines the structure for description generation requests
type DescriptionRequest struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Category string `json:"category"`
}

// GenerateDescription writes a description and waits for it. Generator
// failures come back as the fallback text, never as an error.
func (h *Handler) GenerateDescription(c echo.Context) error {
	log := logger.FromContext(c)

	var req DescriptionRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	text, err := h.describer.Describe(c.Request().Context(), req.Name, req.Color, req.Category)
	if errors.Is(err, describe.ErrIncompleteDress) {
		log.Warn("Description request incomplete",
			zap.String("name", req.Name),
			zap.String("color", req.Color),
			zap.String("category", req.Category))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}
	if errors.Is(err, context.Canceled) {
		log.Info("Description request cancelled by client")
		return c.NoContent(statusClientClosedRequest)
	}
	if err != nil {
		log.Error("Failed to generate description", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to generate description",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"description": text,
	})
}
