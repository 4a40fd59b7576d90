package service

import (
	"context"
	"errors"

	"github.com/kahvecikaan/composingMicroservices/internal/product/domain"
)

// seedProducts is the fixed catalog inserted on first start.
var seedProducts = []domain.Product{
	{ProductID: "PROD-001", Name: "Laptop", Price: 999.99, Description: "High-performance laptop", Stock: 50},
	{ProductID: "PROD-002", Name: "Mouse", Price: 29.99, Description: "Wireless mouse", Stock: 200},
	{ProductID: "PROD-003", Name: "Keyboard", Price: 79.99, Description: "Mechanical keyboard", Stock: 100},
	{ProductID: "PROD-004", Name: "Monitor", Price: 299.99, Description: "27-inch 4K monitor", Stock: 75},
	{ProductID: "PROD-005", Name: "Headphones", Price: 149.99, Description: "Noise-canceling headphones", Stock: 150},
}

// Seed inserts the sample products that are not yet present. Each insert is
// guarded by a lookup on the external product id, so a store that already
// holds some of the seed set is filled in without touching existing rows.
func (s *catalogService) Seed(ctx context.Context) error {
	inserted := 0

	for i := range seedProducts {
		seed := seedProducts[i]

		_, err := s.repo.FindByProductID(ctx, seed.ProductID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrProductNotFound) {
			return err
		}

		if _, err := s.repo.Save(ctx, &seed); err != nil {
			return err
		}
		inserted++
	}

	s.logger.Info("Sample products initialized", "inserted", inserted)
	return nil
}
