package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/featherwood/featherwood-backend/config"
	"github.com/featherwood/featherwood-backend/internal/app/bootstrap"
	"github.com/featherwood/featherwood-backend/internal/app/controller"
	"github.com/featherwood/featherwood-backend/internal/app/service"
	"github.com/featherwood/featherwood-backend/internal/router"
	"github.com/featherwood/featherwood-backend/internal/scheduler"
	"github.com/featherwood/featherwood-backend/internal/seed"
	"github.com/featherwood/featherwood-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	logFormat := "json"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
		logFormat = "console"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      logFormat,
		EnableColor: true,
	})

	logger.Info("Starting FeatherWood Backend Server", map[string]interface{}{
		"environment":    cfg.Server.Environment,
		"port":           cfg.Server.Port,
		"storage_driver": cfg.Storage.Driver,
		"log_level":      logLevel,
	})

	store, closeStorage, err := bootstrap.OpenStorage(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", err)
	}
	defer closeStorage()

	// Seed failures are not fatal: the API still serves whatever exists.
	opts := bootstrap.SeedOptions(cfg)
	docs := bootstrap.NewDocumentStore(cfg, opts.ProductsLocation, opts.ProjectsLocation)
	if _, err := seed.NewLoader(store, docs, opts).Load(context.Background()); err != nil {
		logger.Warn("Failed to seed catalog", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Initialize services
	catalogService := service.NewCatalogService(store, store)
	projectService := service.NewProjectService(store)
	blogService := service.NewBlogService(store)
	testimonialService := service.NewTestimonialService(store)
	consultationService := service.NewConsultationService(store)
	cartService := service.NewCartService(store, store, store)
	wishlistService := service.NewWishlistService(store, store, store)

	if location := cfg.Leads.ExportLocation; location != "" {
		exporter := scheduler.NewLeadExportScheduler(
			cfg.Leads.ExportSchedule,
			location,
			consultationService,
			bootstrap.NewDocumentStore(cfg, location),
		)
		if err := exporter.Start(); err != nil {
			logger.Fatal("Failed to start lead export scheduler", err)
		}
		defer exporter.Stop()
	}

	r := router.NewRouter(
		controller.NewCatalogController(catalogService),
		controller.NewProjectController(projectService),
		controller.NewContentController(blogService, testimonialService),
		controller.NewConsultationController(consultationService),
		controller.NewCartController(cartService),
		controller.NewWishlistController(wishlistService),
		cfg,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           r.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shut down", err)
	}
	logger.Info("Server stopped successfully")
}
