package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/composingMicroservices/internal/product/domain"
	"github.com/kahvecikaan/composingMicroservices/internal/validation"
)

type contextKey string

// ContextKeyProduct carries the validated product between the validation
// middleware and the create handler.
const ContextKeyProduct contextKey = "product"

// Middleware struct holds dependencies for middleware functions
type Middleware struct {
	Logger    hclog.Logger
	Validator *validation.Validation
}

func NewMiddleware(logger hclog.Logger, validator *validation.Validation) *Middleware {
	return &Middleware{
		Logger:    logger,
		Validator: validator,
	}
}

// ContentTypeMiddleware sets the Content-Type header to application/json
func (m *Middleware) ContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs the incoming requests and responses
func (m *Middleware) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		m.Logger.Info("Incoming request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
		)

		// Add the request ID to the response header
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		duration := time.Since(start)
		m.Logger.Info("Completed request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
			"duration", duration,
		)
	})
}

// ValidationMiddleware validates the product in the request and adds it to the context
func (m *Middleware) ValidationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var product domain.Product
		err := json.NewDecoder(r.Body).Decode(&product)
		if err != nil {
			m.Logger.Error("Error decoding product", "error", err)
			http.Error(w, "Invalid product data", http.StatusBadRequest)
			return
		}

		errs := m.Validator.Validate(&product)
		if len(errs) > 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errs)
			return
		}

		// Add the validated product to the context
		ctx := context.WithValue(r.Context(), ContextKeyProduct, &product)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
