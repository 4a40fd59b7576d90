package domain

// Product represents a catalog entry as persisted in the products table
//
// swagger:model
type Product struct {
	// The internal ID of the product, assigned by the store on insert
	//
	// required: false
	// example: 1
	ID int64 `json:"id"`

	// The externally visible product identifier used for lookups
	//
	// required: true
	// example: PROD-001
	ProductID string `json:"productId" validate:"required"`

	// The name of the product
	//
	// required: true
	// example: Laptop
	Name string `json:"name" validate:"required"`

	// The price of the product
	//
	// required: true
	// min: 0
	// example: 999.99
	Price float64 `json:"price" validate:"gte=0"`

	// The description of the product
	//
	// required: false
	// example: High-performance laptop
	Description string `json:"description"`

	// The quantity on hand
	//
	// required: true
	// min: 0
	// example: 50
	Stock int `json:"stock" validate:"gte=0"`
}
