package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/kahvecikaan/composingMicroservices/internal/order/client"
	httpTransport "github.com/kahvecikaan/composingMicroservices/internal/order/transport/http"
	"github.com/kahvecikaan/composingMicroservices/internal/validation"
	"github.com/nicholasjackson/env"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":8080", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
	productServiceURL = env.String("PRODUCT_SERVICE_URL", false,
		"http://product-service:8080", "Base URL of the product service")
)

func main() {
	godotenv.Load()
	env.Parse()

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "order-service",
		Level: hclog.LevelFromString(*logLevel),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	// Initialize the outbound product client
	pc := client.NewProductClient(*productServiceURL, logger.Named("product-client"))

	// Initialize HTTP handlers and the router
	oh := httpTransport.NewOrderHandler(pc, validation.NewValidation(), logger.Named("http-handler"))
	router := httpTransport.NewRouter(oh, logger)

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
		logger.Info("Starting server",
			"bind_address", *bindAddress,
			"product_service_url", *productServiceURL,
		)
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
