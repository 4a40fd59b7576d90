package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/composingMicroservices/internal/order/client"
	"github.com/kahvecikaan/composingMicroservices/internal/validation"
	"github.com/kahvecikaan/composingMicroservices/internal/version"
)

type OrderHandler struct {
	products  *client.ProductClient
	validator *validation.Validation
	logger    hclog.Logger
}

func NewOrderHandler(pc *client.ProductClient, validator *validation.Validation, log hclog.Logger) *OrderHandler {
	return &OrderHandler{
		products:  pc,
		validator: validator,
		logger:    log,
	}
}

// CreateOrderRequest is the body of POST /api/orders/create.
type CreateOrderRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// Order is the composed order document. Orders are never persisted.
type Order struct {
	OrderID        string  `json:"orderId"`
	ProductID      string  `json:"productId"`
	ProductName    string  `json:"productName"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
	Total          float64 `json:"total"`
	Status         string  `json:"status"`
	ServiceVersion string  `json:"serviceVersion"`
	Timestamp      int64   `json:"timestamp"`
}

// TestStatus is the wire shape of the test endpoint.
type TestStatus struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// HealthStatus is the wire shape of the health endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// CreateOrder handles POST /api/orders/create. An unreachable product
// service never fails the request: the order is composed from the fallback
// product with a zero price, and its error message stays internal.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Error decoding order request", "error", err)
		http.Error(w, "Invalid order data", http.StatusBadRequest)
		return
	}

	if errs := h.validator.Validate(&req); len(errs) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errs)
		return
	}

	product := h.products.GetProduct(r.Context(), req.ProductID)

	now := time.Now().UnixMilli()
	order := Order{
		OrderID:        fmt.Sprintf("ORD-%d", now),
		ProductID:      req.ProductID,
		ProductName:    product.Name,
		Quantity:       req.Quantity,
		Price:          product.Price,
		Total:          product.Price * float64(req.Quantity),
		Status:         "created",
		ServiceVersion: version.FromEnv(),
		Timestamp:      now,
	}

	h.logger.Info("Composed order",
		"order_id", order.OrderID,
		"product_id", order.ProductID,
		"quantity", order.Quantity,
		"total", order.Total,
	)

	json.NewEncoder(w).Encode(order)
}

// Test handles GET /api/orders/test
func (h *OrderHandler) Test(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(TestStatus{
		Service:   "order-service",
		Version:   version.FromEnv(),
		Status:    "healthy",
		Timestamp: time.Now().UnixMilli(),
	})
}

// Health handles GET /api/orders/health
func (h *OrderHandler) Health(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(HealthStatus{
		Status:  "UP",
		Version: version.FromEnv(),
	})
}
