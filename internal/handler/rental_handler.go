package handler

import (
	"dress-rental-service/internal/model"
	"dress-rental-service/internal/views"
	"dress-rental-service/pkg/logger"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListRentals handles retrieving every booking joined with its dress
func (h *Handler) ListRentals(c echo.Context) error {
	log := logger.FromContext(c)

	bookings := views.JoinRentals(h.rentals.ListRentals(), h.catalog.ListDresses(), h.locale)

	log.Info("Rentals retrieved successfully", zap.Int("count", len(bookings)))
	return c.JSON(http.StatusOK, bookings)
}

// NewRentalDraft returns the blank booking form
func (h *Handler) NewRentalDraft(c echo.Context) error {
	return c.JSON(http.StatusOK, model.NewRentalDraft(h.now()))
}

// CreateRental handles booking a dress. New bookings are always confirmed.
func (h *Handler) CreateRental(c echo.Context) error {
	log := logger.FromContext(c)

	var req model.RentalDraft
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		h.metrics.RecordRentalOperation("create", "bad_request")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	rental, err := h.rentals.AddRental(req)
	if err != nil {
		log.Warn("Rental rejected",
			zap.String("dress_id", req.DressID),
			zap.String("date", req.Date),
			zap.Error(err))
		h.metrics.RecordRentalOperation("create", "rejected")
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}

	if _, ok := h.catalog.GetDress(rental.DressID); !ok {
		log.Warn("Rental references an unknown dress", zap.String("dress_id", rental.DressID))
	}

	h.metrics.RecordRentalOperation("create", "success")
	h.refreshRentalMetrics()
	log.Info("Rental created successfully",
		zap.String("rental_id", rental.ID),
		zap.String("dress_id", rental.DressID),
		zap.String("date", rental.Date))
	return c.JSON(http.StatusCreated, rental)
}
