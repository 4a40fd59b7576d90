package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/kahvecikaan/composingMicroservices/internal/product/repository"
	"github.com/kahvecikaan/composingMicroservices/internal/product/service"
	httpTransport "github.com/kahvecikaan/composingMicroservices/internal/product/transport/http"
	"github.com/kahvecikaan/composingMicroservices/internal/validation"
	"github.com/nicholasjackson/env"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":8080", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
	databaseURL = env.String("DB_URL", false,
		"", "Postgres connection string; in-memory store when empty")
)

func main() {
	godotenv.Load()
	env.Parse()

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "product-service",
		Level: hclog.LevelFromString(*logLevel),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	// Initialize the ProductRepository
	var (
		repo repository.ProductRepository
		err  error
	)
	if *databaseURL != "" {
		repo, err = repository.NewPostgresProductRepository(context.Background(), *databaseURL)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("DB_URL not set, using in-memory store")
		repo = repository.NewMemoryProductRepository()
	}

	// Initialize the CatalogService
	catalog := service.NewCatalogService(repo, logger.Named("catalog-service"))

	// Seed the sample products before accepting traffic. A seeding failure
	// is logged but does not prevent startup.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := catalog.Seed(seedCtx); err != nil {
		logger.Error("Failed to seed products", "error", err)
	}
	seedCancel()

	// Initialize the validator
	validator := validation.NewValidation()

	// Initialize HTTP handlers and the router
	ph := httpTransport.NewProductHandler(catalog, logger.Named("http-handler"))
	router := httpTransport.NewRouter(ph, validator, logger)

	// Create the HTTP Server
	server := &http.Server{
		Addr:         *bindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", *bindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan
	logger.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	server.Shutdown(shutdownCtx)
}
