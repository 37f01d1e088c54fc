package main

import (
	"context"
	"dress-rental-service/internal/describe"
	"dress-rental-service/internal/forms"
	"dress-rental-service/internal/handler"
	"dress-rental-service/internal/locale"
	mid "dress-rental-service/internal/middleware"
	"dress-rental-service/internal/store"
	"dress-rental-service/pkg/config"
	"dress-rental-service/pkg/genai"
	"dress-rental-service/pkg/logger"
	"dress-rental-service/prometheus"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting dress-rental-service", appConfig.LogFields()...)

	// Initialize Prometheus metrics
	metrics := prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Session stores
	catalog := store.NewCatalogStore(store.SeedDresses())
	rentals := store.NewRentalStore(nil)
	settings := store.NewSettingsStore(store.DefaultSettings)

	// Description generation
	loc := locale.For(appConfig.Locale.Tag)
	client := genai.NewClient(appConfig.GenAI.BaseURL, appConfig.GenAI.APIKey, appConfig.GenAI.Model,
		appConfig.GenAI.Timeout, log.Named("genai"))
	describer := describe.New(client, loc, describe.Options{
		BreakerErrors:  appConfig.GenAI.BreakerErrors,
		BreakerTimeout: appConfig.GenAI.BreakerTimeout,
	}, metrics, log.Named("describe"))
	if appConfig.GenAI.APIKey == "" {
		log.Warn("GENAI_API_KEY is not set, descriptions will use the fallback text")
	}

	registry := forms.NewRegistry(catalog, describer, appConfig.GenAI.Timeout, metrics, log.Named("forms"))

	h := handler.New(handler.Deps{
		Catalog:   catalog,
		Rentals:   rentals,
		Settings:  settings,
		Forms:     registry,
		Describer: describer,
		Locale:    loc,
		Metrics:   metrics,
	})

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(mid.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(mid.MetricsMiddleware(metrics))

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	h.Register(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		port := appConfig.Server.Port
		log.Info("Starting server", zap.String("port", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		registry.RunJanitor(gctx, appConfig.Forms.IdleTTL, appConfig.Forms.SweepInterval)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
	log.Info("Server stopped")
}
