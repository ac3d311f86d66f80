package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shopledger/backend/internal/cache"
	"github.com/shopledger/backend/internal/config"
	"github.com/shopledger/backend/internal/db"
	"github.com/shopledger/backend/internal/handler"
	"github.com/shopledger/backend/internal/repository"
	"github.com/shopledger/backend/internal/service"
)

func main() {
	// Initialize logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("starting e-commerce records API server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Connect to database
	database, err := db.New(db.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	logger.Info("connected to database")

	// Apply schema migrations
	if cfg.API.MigrateOnStart {
		if err := database.Migrate(); err != nil {
			logger.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("schema migrations applied")
	}

	// Connect to the optional Redis product cache
	var productCache cache.ProductCache
	if cfg.Cache.RedisURL != "" {
		productCache, err = cache.NewRedisCache(cache.RedisConfig{
			URL: cfg.Cache.RedisURL,
			TTL: time.Duration(cfg.Cache.TTLSecs) * time.Second,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to Redis cache", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer productCache.Close()
	} else {
		logger.Info("product cache disabled")
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(database.DB)
	productRepo := repository.NewProductRepository(database.DB)
	orderRepo := repository.NewOrderRepository(database.DB)

	// Initialize services
	customerSvc := service.NewCustomerService(customerRepo, logger)
	productSvc := service.NewProductService(productRepo, productCache, logger)
	orderSvc := service.NewOrderService(orderRepo, customerRepo, productRepo, logger)

	// Initialize handlers
	customerHandler := handler.NewCustomerHandler(customerSvc, logger)
	productHandler := handler.NewProductHandler(productSvc, logger)
	orderHandler := handler.NewOrderHandler(orderSvc, logger)
	healthHandler := handler.NewHealthHandler(database.DB, productCache, logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(handler.RecoveryMiddleware(logger))
	r.Use(handler.LoggingMiddleware(logger))
	r.Use(handler.CORSMiddleware)

	// Register routes
	r.Get("/", handler.Home)
	r.Get("/health", healthHandler.Health)

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", customerHandler.ListCustomers)
		r.Post("/", customerHandler.CreateCustomer)
		r.Get("/{id}", customerHandler.GetCustomer)
		r.Put("/{id}", customerHandler.UpdateCustomer)
		r.Delete("/{id}", customerHandler.DeleteCustomer)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.ListProducts)
		r.Post("/", productHandler.CreateProduct)
		r.Get("/{id}", productHandler.GetProduct)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orderHandler.CreateOrder)
		r.Get("/{id}", orderHandler.GetOrder)
	})

	r.Get("/order_items/{id}", orderHandler.ListOrderItems)

	// Create server
	addr := fmt.Sprintf(":%d", cfg.API.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("API server listening", slog.String("addr", addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for interrupt signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)

	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

		logger.Info("server stopped gracefully")
	}
}
