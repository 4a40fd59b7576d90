package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	gohandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
)

func NewRouter(oh *OrderHandler, logger hclog.Logger) http.Handler {
	router := mux.NewRouter()

	router.Use(loggingMiddleware(logger))
	router.Use(contentTypeMiddleware)

	router.HandleFunc("/api/orders/create", oh.CreateOrder).Methods("POST")
	router.HandleFunc("/api/orders/test", oh.Test).Methods("GET")
	router.HandleFunc("/api/orders/health", oh.Health).Methods("GET")

	cors := gohandlers.CORS(
		gohandlers.AllowedOrigins([]string{"*"}),
		gohandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gohandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return cors(router)
}

func contentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(logger hclog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.New().String()

			w.Header().Set("X-Request-ID", requestID)

			next.ServeHTTP(w, r)

			logger.Info("Completed request",
				"method", r.Method,
				"url", r.URL.Path,
				"request_id", requestID,
				"duration", time.Since(start),
			)
		})
	}
}
