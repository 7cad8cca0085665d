package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Raghav-rv28/variable-pricing/internal/api"
	"github.com/Raghav-rv28/variable-pricing/internal/config"
	"github.com/Raghav-rv28/variable-pricing/internal/documents"
	"github.com/Raghav-rv28/variable-pricing/internal/repository/postgres"
	"github.com/Raghav-rv28/variable-pricing/internal/service"
	"github.com/Raghav-rv28/variable-pricing/internal/shopify"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting Variable Pricing server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	client := shopify.NewClient(cfg.Shopify, cfg.Pricing.RequestTimeout, logger)

	// Optional session store: a stored token for the configured shop takes
	// precedence over the static one from the environment
	if cfg.Database.Enabled {
		db, err := postgres.NewConnection(cfg.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := postgres.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		repos := postgres.NewRepositories(db, logger)
		session, err := repos.Session.GetByShop(context.Background(), cfg.Shopify.ShopDomain)
		if err != nil {
			logger.Info("No stored session for shop, using configured token",
				zap.String("shop", cfg.Shopify.ShopDomain),
			)
		} else {
			client = client.WithAccessToken(session.Shop, session.AccessToken)
			logger.Info("Using stored session token", zap.String("shop", session.Shop))
		}
	}

	// Initialize services
	catalog := service.NewCatalogService(client, cfg.Pricing, logger)
	pricing := service.NewPricingService(client, cfg.Pricing, logger)
	orders := service.NewOrderService(client, logger)

	renderer, err := documents.NewRenderer(cfg.Documents)
	if err != nil {
		logger.Fatal("Failed to build document renderer", zap.Error(err))
	}

	// Initialize router
	router := api.NewRouter(cfg, catalog, pricing, orders, renderer, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
