package handler

import (
	"dress-rental-service/internal/model"
	"dress-rental-service/internal/store"
	"dress-rental-service/internal/views"
	"dress-rental-service/pkg/logger"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListDresses handles retrieving the catalog, optionally filtered by ?q=
func (h *Handler) ListDresses(c echo.Context) error {
	log := logger.FromContext(c)
	query := c.QueryParam("q")

	dresses := views.FilterDresses(h.catalog.ListDresses(), query)

	log.Info("Dresses retrieved successfully",
		zap.String("query", query),
		zap.Int("count", len(dresses)))
	return c.JSON(http.StatusOK, dresses)
}

// GetDress handles retrieving a single dress by ID
func (h *Handler) GetDress(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	dress, ok := h.catalog.GetDress(id)
	if !ok {
		log.Warn("Dress not found", zap.String("dress_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Dress not found",
		})
	}

	h.metrics.RecordDressView(dress.ID, string(dress.Category))
	log.Info("Dress retrieved successfully",
		zap.String("dress_id", dress.ID),
		zap.String("dress_name", dress.Name))
	return c.JSON(http.StatusOK, dress)
}

// CreateDress handles adding a dress to the front of the catalog
func (h *Handler) CreateDress(c echo.Context) error {
	log := logger.FromContext(c)

	var req model.DressDraft
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		h.metrics.RecordDressOperation("create", "bad_request")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	dress, err := h.catalog.AddDress(req)
	if err != nil {
		log.Warn("Dress rejected",
			zap.String("name", req.Name),
			zap.String("price", req.Price.String()),
			zap.Error(err))
		h.metrics.RecordDressOperation("create", "rejected")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}

	h.metrics.RecordDressOperation("create", "success")
	h.refreshCatalogMetrics()
	log.Info("Dress created successfully",
		zap.String("dress_id", dress.ID),
		zap.String("dress_name", dress.Name))
	return c.JSON(http.StatusCreated, dress)
}

// UpdateDress handles merging a partial update onto an existing dress
func (h *Handler) UpdateDress(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var patch model.DressPatch
	if err := c.Bind(&patch); err != nil {
		log.Error("Invalid request data", zap.String("dress_id", id), zap.Error(err))
		h.metrics.RecordDressOperation("update", "bad_request")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	dress, err := h.catalog.UpdateDress(id, patch)
	switch {
	case errors.Is(err, store.ErrDressNotFound):
		log.Warn("Dress not found", zap.String("dress_id", id))
		h.metrics.RecordDressOperation("update", "not_found")
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Dress not found",
		})
	case err != nil:
		log.Warn("Dress update rejected", zap.String("dress_id", id), zap.Error(err))
		h.metrics.RecordDressOperation("update", "rejected")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}

	h.metrics.RecordDressOperation("update", "success")
	// revenue follows the current price
	h.refreshRentalMetrics()
	log.Info("Dress updated successfully", zap.String("dress_id", id))
	return c.JSON(http.StatusOK, dress)
}
