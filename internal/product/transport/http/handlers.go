package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/composingMicroservices/internal/product/domain"
	"github.com/kahvecikaan/composingMicroservices/internal/product/service"
	"github.com/kahvecikaan/composingMicroservices/internal/version"
)

type ProductHandler struct {
	catalog service.CatalogService
	logger  hclog.Logger
}

func NewProductHandler(cs service.CatalogService, log hclog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: cs,
		logger:  log,
	}
}

// ProductDetail is the wire shape of a single-product lookup. It carries the
// catalog fields plus the serving version and composition timestamp, and no
// internal id.
type ProductDetail struct {
	ProductID      string  `json:"productId"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Description    string  `json:"description"`
	Stock          int     `json:"stock"`
	ServiceVersion string  `json:"serviceVersion"`
	Timestamp      int64   `json:"timestamp"`
}

// HealthStatus is the wire shape of the health endpoint. The database field
// is a constant literal, no live probe is made.
type HealthStatus struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

// GetProduct handles GET /api/products/{productId}
//
// swagger:route GET /api/products/{productId} products getProduct
//
// Returns a product by its external product id.
//
// Responses:
//
//	200: productDetailResponse
//	404: errorResponse
//	500: errorResponse
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	product, err := h.catalog.GetProductByProductID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, "Product not found: "+productID, http.StatusNotFound)
			return
		}

		h.logger.Error("Error getting product", "product_id", productID, "error", err)
		http.Error(w, "Error getting product", http.StatusInternalServerError)
		return
	}

	detail := ProductDetail{
		ProductID:      product.ProductID,
		Name:           product.Name,
		Price:          product.Price,
		Description:    product.Description,
		Stock:          product.Stock,
		ServiceVersion: version.FromEnv(),
		Timestamp:      time.Now().UnixMilli(),
	}

	json.NewEncoder(w).Encode(detail)
}

// GetProducts handles GET /api/products
//
// swagger:route GET /api/products products listProducts
//
// Returns all products with their full persisted fields.
//
// Responses:
//
//	200: productsResponse
//	500: errorResponse
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.GetProducts(r.Context())
	if err != nil {
		h.logger.Error("Error getting products", "error", err)
		http.Error(w, "Error getting products", http.StatusInternalServerError)
		return
	}

	if products == nil {
		products = []*domain.Product{}
	}

	json.NewEncoder(w).Encode(products)
}

// CreateProduct handles POST /api/products
//
// swagger:route POST /api/products products createProduct
//
// Persists the posted product and returns it with its assigned id.
//
// Responses:
//
//	200: productResponse
//	400: validationErrorResponse
//	500: errorResponse
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	// Retrieve the validated product from the context
	product, ok := r.Context().Value(ContextKeyProduct).(*domain.Product)
	if !ok {
		http.Error(w, "Invalid product data", http.StatusBadRequest)
		return
	}

	saved, err := h.catalog.CreateProduct(r.Context(), product)
	if err != nil {
		h.logger.Error("Error creating product", "error", err)
		http.Error(w, "Error creating product", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(saved)
}

// Health handles GET /api/products/health
//
// swagger:route GET /api/products/health health productHealth
//
// Reports service liveness and version.
//
// Responses:
//
//	200: healthResponse
func (h *ProductHandler) Health(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(HealthStatus{
		Status:   "UP",
		Version:  version.FromEnv(),
		Database: "connected",
	})
}
