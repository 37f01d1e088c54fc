package prometheus

import (
	"dress-rental-service/pkg/config"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the service's metric set. A nil *Metrics records nothing.
type Metrics struct {
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Store operation metrics
	DressOperationsCounter  *prometheus.CounterVec
	RentalOperationsCounter *prometheus.CounterVec

	// Catalog and booking state
	CatalogSizeGauge      prometheus.Gauge
	RentalStatusGauge     *prometheus.GaugeVec
	ConfirmedRevenueGauge prometheus.Gauge

	// Dress popularity metrics
	DressViewsCounter *prometheus.CounterVec

	// Description generation metrics
	DescriptionRequestsCounter *prometheus.CounterVec
	DescriptionDuration        prometheus.Histogram
	OpenFormsGauge             prometheus.Gauge
}

// InitMetrics registers the metric set on the default registry
func InitMetrics(cfg *config.Config) *Metrics {
	return NewMetrics(cfg.Metrics.Prefix, prometheus.DefaultRegisterer)
}

// NewMetrics registers the metric set on reg, every name starting with prefix
func NewMetrics(prefix string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HttpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HttpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		DressOperationsCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_dress_operations_total",
				Help: "Total number of catalog operations",
			},
			[]string{"operation", "result"},
		),
		RentalOperationsCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_rental_operations_total",
				Help: "Total number of rental operations",
			},
			[]string{"operation", "result"},
		),
		CatalogSizeGauge: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + "_catalog_dresses",
				Help: "Current number of dresses in the catalog",
			},
		),
		RentalStatusGauge: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: prefix + "_rentals",
				Help: "Current number of rentals by status",
			},
			[]string{"status"},
		),
		ConfirmedRevenueGauge: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + "_confirmed_revenue",
				Help: "Sum of dress prices over confirmed rentals",
			},
		),
		DressViewsCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_dress_views_total",
				Help: "Total number of single dress views",
			},
			[]string{"dress_id", "category"},
		),
		DescriptionRequestsCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_description_requests_total",
				Help: "Total number of description generations by outcome",
			},
			[]string{"outcome"},
		),
		DescriptionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    prefix + "_description_duration_seconds",
				Help:    "Duration of description generations in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		OpenFormsGauge: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + "_open_forms",
				Help: "Current number of open dress forms",
			},
		),
	}
}

// ObserveHTTPRequest records one served request
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HttpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordDressOperation increments the counter for catalog operations
func (m *Metrics) RecordDressOperation(operation, result string) {
	if m == nil {
		return
	}
	m.DressOperationsCounter.WithLabelValues(operation, result).Inc()
}

// RecordRentalOperation increments the counter for rental operations
func (m *Metrics) RecordRentalOperation(operation, result string) {
	if m == nil {
		return
	}
	m.RentalOperationsCounter.WithLabelValues(operation, result).Inc()
}

// RecordDressView increments the counter for dress views
func (m *Metrics) RecordDressView(dressID, category string) {
	if m == nil {
		return
	}
	m.DressViewsCounter.WithLabelValues(dressID, category).Inc()
}

// SetCatalogSize updates the catalog gauge
func (m *Metrics) SetCatalogSize(count int) {
	if m == nil {
		return
	}
	m.CatalogSizeGauge.Set(float64(count))
}

// SetRentalState updates the booking gauges
func (m *Metrics) SetRentalState(byStatus map[string]int, confirmedRevenue float64) {
	if m == nil {
		return
	}
	for status, count := range byStatus {
		m.RentalStatusGauge.WithLabelValues(status).Set(float64(count))
	}
	m.ConfirmedRevenueGauge.Set(confirmedRevenue)
}

// TrackDescription returns a function that records the outcome and duration of a generation
func (m *Metrics) TrackDescription() func(outcome string) {
	start := time.Now()
	return func(outcome string) {
		if m == nil {
			return
		}
		m.DescriptionRequestsCounter.WithLabelValues(outcome).Inc()
		m.DescriptionDuration.Observe(time.Since(start).Seconds())
	}
}

// SetOpenForms updates the open form gauge
func (m *Metrics) SetOpenForms(count int) {
	if m == nil {
		return
	}
	m.OpenFormsGauge.Set(float64(count))
}
