package handler

import (
	"context"
	"dress-rental-service/internal/forms"
	"dress-rental-service/internal/locale"
	"dress-rental-service/internal/model"
	"dress-rental-service/internal/store"
	"dress-rental-service/internal/views"
	"dress-rental-service/prometheus"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// Describer writes marketing copy for a dress
type Describer interface {
	Describe(ctx context.Context, name, color, category string) (string, error)
}

// Handler serves the REST API over the session stores
type Handler struct {
	catalog   *store.CatalogStore
	rentals   *store.RentalStore
	settings  *store.SettingsStore
	forms     *forms.Registry
	describer Describer
	locale    locale.Locale
	metrics   *prometheus.Metrics
	now       func() time.Time

	// serializes reading the stores and publishing the gauges
	gaugeMu sync.Mutex
}

// Deps are the collaborators of Handler
type Deps struct {
	Catalog   *store.CatalogStore
	Rentals   *store.RentalStore
	Settings  *store.SettingsStore
	Forms     *forms.Registry
	Describer Describer
	Locale    locale.Locale
	Metrics   *prometheus.Metrics
	Now       func() time.Time
}

func New(d Deps) *Handler {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &Handler{
		catalog:   d.Catalog,
		rentals:   d.Rentals,
		settings:  d.Settings,
		forms:     d.Forms,
		describer: d.Describer,
		locale:    d.Locale,
		metrics:   d.Metrics,
		now:       d.Now,
	}
	h.refreshCatalogMetrics()
	h.refreshRentalMetrics()
	return h
}

// Register mounts every route on e
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.Hello)
	e.GET("/health", h.HealthCheck)

	api := e.Group("/api")

	dresses := api.Group("/dresses")
	dresses.GET("", h.ListDresses)
	dresses.GET("/:id", h.GetDress)
	dresses.POST("", h.CreateDress)
	dresses.PUT("/:id", h.UpdateDress)

	rentals := api.Group("/rentals")
	rentals.GET("", h.ListRentals)
	rentals.GET("/draft", h.NewRentalDraft)
	rentals.POST("", h.CreateRental)

	api.GET("/calendar", h.GetCalendar)
	api.GET("/dashboard", h.GetDashboard)
	api.GET("/home", h.GetHome)
	api.GET("/screens/:view", h.GetScreen)

	api.GET("/settings", h.GetSettings)
	api.PUT("/settings", h.UpdateSettings)

	api.POST("/descriptions", h.GenerateDescription)

	formAPI := api.Group("/forms")
	formAPI.POST("", h.OpenDressForm)
	formAPI.POST("/edit/:dressId", h.OpenEditForm)
	formAPI.GET("/:id", h.GetForm)
	formAPI.PATCH("/:id", h.UpdateForm)
	formAPI.DELETE("/:id", h.DismissForm)
	formAPI.POST("/:id/description", h.GenerateFormDescription)
	formAPI.POST("/:id/save", h.SaveForm)
}

func (h *Handler) refreshCatalogMetrics() {
	h.gaugeMu.Lock()
	defer h.gaugeMu.Unlock()
	h.metrics.SetCatalogSize(h.catalog.Count())
}

func (h *Handler) refreshRentalMetrics() {
	h.gaugeMu.Lock()
	defer h.gaugeMu.Unlock()

	summary := views.Summarize(h.rentals.ListRentals(), h.catalog.ListDresses(), h.locale)
	h.metrics.SetRentalState(map[string]int{
		string(model.RentalStatusConfirmed): summary.ConfirmedCount,
		string(model.RentalStatusPending):   summary.PendingCount,
		string(model.RentalStatusReturned):  summary.TotalRentals - summary.ConfirmedCount - summary.PendingCount,
	}, summary.ConfirmedRevenue.InexactFloat64())
}
