package http

import (
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/go-openapi/runtime/middleware"
	gohandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/composingMicroservices/internal/validation"
)

func NewRouter(
	ph *ProductHandler,
	validator *validation.Validation,
	logger hclog.Logger,
) http.Handler {
	router := mux.NewRouter()

	mw := NewMiddleware(logger, validator)

	// Apply global middleware
	router.Use(mw.LoggingMiddleware)
	router.Use(mw.ContentTypeMiddleware)

	// Health is registered before the productId route so it wins the match
	router.HandleFunc("/api/products/health", ph.Health).Methods("GET")
	router.HandleFunc("/api/products/{productId}", ph.GetProduct).Methods("GET")
	router.HandleFunc("/api/products", ph.GetProducts).Methods("GET")

	// Routes requiring validation middleware (for request body validation)
	postRouter := router.Methods("POST").Subrouter()
	postRouter.HandleFunc("/api/products", ph.CreateProduct)
	postRouter.Use(mw.ValidationMiddleware)

	// Swagger UI and specification routes
	// Determine the absolute path to the swagger.yaml file
	_, filename, _, _ := runtime.Caller(0)
	// filename is the path to this file (router.go)
	basePath := filepath.Dir(filename)                         // .../internal/product/transport/http
	rootDir := filepath.Join(basePath, "..", "..", "..", "..") // Navigate up to the root
	swaggerFilePath := filepath.Join(rootDir, "swagger.yaml")

	// Serve the swagger.yaml file
	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, swaggerFilePath)
	}).Methods("GET")

	// Configure the Redoc middleware to point to the correct SpecURL
	swaggerOpts := middleware.RedocOpts{SpecURL: "/swagger.yaml"}
	swaggerHandler := middleware.Redoc(swaggerOpts, nil)
	router.Handle("/docs", swaggerHandler).Methods("GET")

	// CORS for browser clients
	cors := gohandlers.CORS(
		gohandlers.AllowedOrigins([]string{"*"}),
		gohandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gohandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return cors(router)
}
