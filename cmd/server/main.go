package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/stridewear/stride/internal"
	"github.com/stridewear/stride/internal/catalog"
	"github.com/stridewear/stride/internal/handler"
	"github.com/stridewear/stride/internal/handler/admin"
	"github.com/stridewear/stride/internal/handler/storefront"
	"github.com/stridewear/stride/internal/middleware"
	"github.com/stridewear/stride/internal/router"
	"github.com/stridewear/stride/internal/routes"
	"github.com/stridewear/stride/internal/service"
	"github.com/stridewear/stride/internal/telemetry"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize error tracking
	cleanup, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:         cfg.Sentry.DSN,
		Enabled:     cfg.Sentry.Enabled,
		Environment: cfg.Sentry.Environment,
		Release:     cfg.Sentry.Release,
		SampleRate:  cfg.Sentry.SampleRate,
		Debug:       cfg.Sentry.Debug,
	}, logger)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer cleanup()

	// Initialize catalog service client
	logger.Info("Connecting to catalog service", "url", cfg.CatalogURL)
	catalogClient := catalog.New(cfg.CatalogURL, catalog.WithLogger(logger))

	// Initialize services
	cartService := service.NewCartService(logger)
	checkoutService := service.NewCheckoutService(catalogClient, logger)
	sessionGate := service.NewSessionGate(catalogClient, logger)

	// Load templates
	logger.Info("Loading templates...")
	renderer, err := handler.NewRenderer("web/templates")
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	logger.Info("Templates loaded successfully")

	// Build handler dependencies
	storefrontDeps := routes.StorefrontDeps{
		HomeHandler:     storefront.NewHomeHandler(catalogClient, renderer),
		CategoryHandler: storefront.NewCategoryHandler(catalogClient, renderer),
		ProductHandler:  storefront.NewProductHandler(catalogClient, cartService, renderer),
		CartHandler:     storefront.NewCartHandler(checkoutService, renderer),
		AuthHandler:     storefront.NewAuthHandler(sessionGate, renderer),
	}

	adminDeps := routes.AdminDeps{
		DashboardHandler: admin.NewDashboardHandler(catalogClient, renderer),
		ProductHandler:   admin.NewProductHandler(catalogClient, renderer),
		InventoryHandler: admin.NewInventoryHandler(catalogClient, renderer),
	}

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("stride")

	// Create router and register routes
	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
		middleware.WithClientState(sessionGate, cfg.SecureCookies),
	)

	// Static files
	r.Static("/static/", "./web/static")

	// Metrics endpoint (protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Register route groups
	routes.RegisterStorefrontRoutes(r, storefrontDeps)
	routes.RegisterAdminRoutes(r, adminDeps)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting server", "address", addr, "env", cfg.Env)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
