package handler

import (
	"dress-rental-service/internal/describe"
	"dress-rental-service/internal/forms"
	"dress-rental-service/internal/model"
	"dress-rental-service/internal/store"
	"dress-rental-service/pkg/logger"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// formError maps registry and catalog errors onto a response
func formError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, forms.ErrFormNotFound), errors.Is(err, store.ErrDressNotFound):
		status = http.StatusNotFound
	case errors.Is(err, forms.ErrGenerationInFlight):
		status = http.StatusConflict
	case errors.Is(err, store.ErrInvalidDress), errors.Is(err, describe.ErrIncompleteDress):
		status = http.StatusBadRequest
	}
	return c.JSON(status, echo.Map{
		"error": err.Error(),
	})
}

// OpenDressForm opens a blank form for a new dress
func (h *Handler) OpenDressForm(c echo.Context) error {
	f := h.forms.OpenNew()
	logger.FromContext(c).Info("Dress form opened", zap.String("form_id", f.ID))
	return c.JSON(http.StatusCreated, f)
}

// OpenEditForm opens a form pre-filled with an existing dress
func (h *Handler) OpenEditForm(c echo.Context) error {
	log := logger.FromContext(c)
	dressID := c.Param("dressId")

	f, err := h.forms.OpenEdit(dressID)
	if err != nil {
		log.Warn("Cannot edit dress", zap.String("dress_id", dressID), zap.Error(err))
		return formError(c, err)
	}

	log.Info("Edit form opened",
		zap.String("form_id", f.ID),
		zap.String("dress_id", dressID))
	return c.JSON(http.StatusCreated, f)
}

// GetForm returns the current state of a form, including a pending description
func (h *Handler) GetForm(c echo.Context) error {
	f, err := h.forms.Get(c.Param("id"))
	if err != nil {
		return formError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

// UpdateForm merges edits onto the form's draft
func (h *Handler) UpdateForm(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var patch model.DressPatch
	if err := c.Bind(&patch); err != nil {
		log.Error("Invalid request data", zap.String("form_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	f, err := h.forms.Update(id, patch)
	if err != nil {
		return formError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

// DismissForm closes a form without saving
func (h *Handler) DismissForm(c echo.Context) error {
	id := c.Param("id")
	if err := h.forms.Dismiss(id); err != nil {
		return formError(c, err)
	}
	logger.FromContext(c).Info("Form dismissed", zap.String("form_id", id))
	return c.NoContent(http.StatusNoContent)
}

// GenerateFormDescription starts generating a description for the form's
// draft. Poll GetForm until generating is false.
func (h *Handler) GenerateFormDescription(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if _, err := h.forms.GenerateDescription(id); err != nil {
		log.Warn("Description not started", zap.String("form_id", id), zap.Error(err))
		return formError(c, err)
	}

	f, err := h.forms.Get(id)
	if err != nil {
		return formError(c, err)
	}
	log.Info("Description generation started", zap.String("form_id", id))
	return c.JSON(http.StatusAccepted, f)
}

// SaveForm writes the form's draft to the catalog and closes the form
func (h *Handler) SaveForm(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	dress, err := h.forms.Save(id)
	if err != nil {
		log.Warn("Form not saved", zap.String("form_id", id), zap.Error(err))
		h.metrics.RecordDressOperation("save", "rejected")
		return formError(c, err)
	}

	h.metrics.RecordDressOperation("save", "success")
	h.refreshCatalogMetrics()
	h.refreshRentalMetrics()
	log.Info("Form saved",
		zap.String("form_id", id),
		zap.String("dress_id", dress.ID))
	return c.JSON(http.StatusOK, dress)
}
