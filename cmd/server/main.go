package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mrcow/mrcow-backend/config"
	"github.com/mrcow/mrcow-backend/internal/app/controller"
	"github.com/mrcow/mrcow-backend/internal/app/repository"
	"github.com/mrcow/mrcow-backend/internal/app/service"
	"github.com/mrcow/mrcow-backend/internal/notifier"
	"github.com/mrcow/mrcow-backend/internal/router"
	"github.com/mrcow/mrcow-backend/internal/scheduler"
	"github.com/mrcow/mrcow-backend/internal/storage"
	"github.com/mrcow/mrcow-backend/internal/websocket"
	"github.com/mrcow/mrcow-backend/pkg/geo"
	"github.com/mrcow/mrcow-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting MR COW Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
		"storage":     cfg.Storage.Backend,
	})

	// Initialize the storage backend
	store, err := openStore(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close storage", err)
		}
	}()

	// Initialize repositories
	cartRepo := repository.NewCartRepository(store)
	menuRepo := repository.NewMenuRepository()
	locationRepo := repository.NewLocationRepository()

	// Coordinate provider for nearest-location lookups
	geoClient, err := geo.NewClient(geo.Config{
		URL:       cfg.Geo.ProviderURL,
		Timeout:   cfg.Geo.Timeout,
		MaxFixAge: cfg.Geo.MaxFixAge,
	})
	if err != nil {
		logger.Fatal("Failed to initialize coordinate provider", err)
	}

	// Initialize services
	events := notifier.New()
	pricer := service.NewPricer(cfg.Cart.TaxRate)
	cartService := service.NewCartService(cartRepo, menuRepo, pricer, events)
	locationService := service.NewLocationService(locationRepo, geoClient)

	// WebSocket hub pushes cart updates to connected storefronts
	hub := websocket.NewHub()
	go hub.Run()
	detach := hub.AttachNotifier(events)
	defer detach()

	// Initialize controllers
	cartController := controller.NewCartController(cartService, locationService, cartRepo, cfg.Cart.TipPercentages)
	menuController := controller.NewMenuController(menuRepo)
	locationController := controller.NewLocationController(locationService)
	wsController := controller.NewWSController(hub, cfg.CORS.AllowedOrigins)

	// Hourly housekeeping: stale cart clearing and cache sweeps
	cartScheduler := scheduler.NewCartScheduler(cartService, store, cfg.Cart.IdleTTL)
	if err := cartScheduler.Start(); err != nil {
		logger.Fatal("Failed to start cart scheduler", err)
	}
	defer cartScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		cartController,
		menuController,
		locationController,
		wsController,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}

// openStore selects the persistence backend from configuration.
func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "redis":
		return storage.NewRedisStore(&cfg.Redis)
	case "file":
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.FilePath), 0o755); err != nil {
			return nil, err
		}
		return storage.NewFileStore(cfg.Storage.FilePath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
