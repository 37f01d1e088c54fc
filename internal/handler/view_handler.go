package handler

import (
	"dress-rental-service/internal/model"
	"dress-rental-service/internal/views"
	"dress-rental-service/pkg/logger"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var errMonthOutOfRange = errors.New("month must be between 1 and 12")

// GetCalendar handles the month grid. ?year= and ?month= default to the current month.
func (h *Handler) GetCalendar(c echo.Context) error {
	log := logger.FromContext(c)

	year, month, err := h.monthParams(c)
	if err != nil {
		log.Warn("Invalid calendar parameters",
			zap.String("year", c.QueryParam("year")),
			zap.String("month", c.QueryParam("month")),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid year or month",
		})
	}

	return c.JSON(http.StatusOK, h.calendar(year, month))
}

// GetDashboard handles the revenue summary
func (h *Handler) GetDashboard(c echo.Context) error {
	summary := h.dashboard()
	logger.FromContext(c).Info("Dashboard computed",
		zap.String("confirmed_revenue", summary.ConfirmedRevenue.String()),
		zap.Int("total_rentals", summary.TotalRentals))
	return c.JSON(http.StatusOK, summary)
}

// GetHome handles the landing page data
func (h *Handler) GetHome(c echo.Context) error {
	return c.JSON(http.StatusOK, h.home())
}

// GetScreen returns the data one screen of the client renders
func (h *Handler) GetScreen(c echo.Context) error {
	log := logger.FromContext(c)

	view, err := model.ParseView(c.Param("view"))
	if err != nil {
		log.Warn("Unknown view", zap.String("view", c.Param("view")))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": err.Error(),
		})
	}

	var data any
	switch view {
	case model.ViewHome:
		data = h.home()
	case model.ViewCatalog:
		query := c.QueryParam("q")
		data = echo.Map{
			"query":   query,
			"dresses": views.FilterDresses(h.catalog.ListDresses(), query),
		}
	case model.ViewCalendar:
		year, month, err := h.monthParams(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Invalid year or month",
			})
		}
		data = h.calendar(year, month)
	case model.ViewAdmin:
		data = echo.Map{
			"settings":   h.settings.Get(),
			"dresses":    h.catalog.ListDresses(),
			"categories": model.Categories,
		}
	case model.ViewDashboard:
		data = h.dashboard()
	}

	log.Debug("Screen rendered", zap.String("view", string(view)))
	return c.JSON(http.StatusOK, echo.Map{
		"view": view,
		"data": data,
	})
}

func (h *Handler) calendar(year int, month time.Month) views.CalendarMonth {
	return views.BuildCalendar(year, month, h.rentals.ListRentals(), h.catalog.ListDresses(), h.locale)
}

func (h *Handler) dashboard() views.RevenueSummary {
	return views.Summarize(h.rentals.ListRentals(), h.catalog.ListDresses(), h.locale)
}

func (h *Handler) home() echo.Map {
	dresses := h.catalog.ListDresses()
	return echo.Map{
		"settings": h.settings.Get(),
		"stats":    views.Home(dresses, h.rentals.ListRentals()),
		"dresses":  dresses,
	}
}

// monthParams reads ?year= and ?month=, falling back to the current month
func (h *Handler) monthParams(c echo.Context) (int, time.Month, error) {
	now := h.now()
	year, month := now.Year(), now.Month()

	if v := c.QueryParam("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, err
		}
		year = y
	}
	if v := c.QueryParam("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, err
		}
		if m < 1 || m > 12 {
			return 0, 0, errMonthOutOfRange
		}
		month = time.Month(m)
	}
	return year, month, nil
}
