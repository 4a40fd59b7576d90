// Package classification of Product Service API
//
// # Documentation for Product Service API
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

import (
	"github.com/kahvecikaan/composingMicroservices/internal/product/domain"
	"github.com/kahvecikaan/composingMicroservices/internal/validation"
)

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Generic error message returned as a string
// swagger:response errorResponse
type errorResponseWrapper struct {
	// Description of the error
	// in: body
	Body string
}

// Validation errors for a rejected product body
// swagger:response validationErrorResponse
type validationErrorResponseWrapper struct {
	// Collection of the errors
	// in: body
	Body validation.ValidationErrors
}

// A list of products with their full persisted fields
// swagger:response productsResponse
type productsResponseWrapper struct {
	// All current products
	// in: body
	Body []domain.Product
}

// A single persisted product
// swagger:response productResponse
type productResponseWrapper struct {
	// The saved product including its assigned id
	// in: body
	Body domain.Product
}

// A single product with serving metadata
// swagger:response productDetailResponse
type productDetailResponseWrapper struct {
	// The product plus serviceVersion and timestamp
	// in: body
	Body ProductDetail
}

// Service health
// swagger:response healthResponse
type healthResponseWrapper struct {
	// Liveness, version and database status
	// in: body
	Body HealthStatus
}

// swagger:parameters getProduct
type productIDParamsWrapper struct {
	// The external id of the product
	// in: path
	// required: true
	ProductID string `json:"productId"`
}

// swagger:parameters createProduct
type productBodyParamsWrapper struct {
	// Product data structure to create or replace.
	// in: body
	// required: true
	Body domain.Product
}
