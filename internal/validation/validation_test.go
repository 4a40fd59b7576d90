package validation

import (
	"testing"

	"github.com/kahvecikaan/composingMicroservices/internal/product/domain"
)

func TestChecksValidation(t *testing.T) {
	testCases := []struct {
		name    string
		product domain.Product
		valid   bool
	}{
		{"Valid product", domain.Product{ProductID: "PROD-010", Name: "Webcam", Price: 59.99, Stock: 10}, true},
		{"Zero price is allowed", domain.Product{ProductID: "PROD-011", Name: "Sticker", Price: 0, Stock: 1}, true},
		{"Missing productId", domain.Product{Name: "Webcam", Price: 59.99, Stock: 10}, false},
		{"Missing name", domain.Product{ProductID: "PROD-010", Price: 59.99, Stock: 10}, false},
		{"Negative price", domain.Product{ProductID: "PROD-010", Name: "Webcam", Price: -1, Stock: 10}, false},
		{"Negative stock", domain.Product{ProductID: "PROD-010", Name: "Webcam", Price: 59.99, Stock: -5}, false},
	}

	v := NewValidation()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := v.Validate(&tc.product)

			if tc.valid && len(errs) > 0 {
				t.Fatalf("Expected valid product, got errors: %v", errs)
			}
			if !tc.valid && len(errs) == 0 {
				t.Fatalf("Expected invalid product, got no errors")
			}
		})
	}
}
