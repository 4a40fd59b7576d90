package repository

import (
	"context"

	"github.com/kahvecikaan/composingMicroservices/internal/product/domain"
)

// ProductRepository is the durable mapping from internal id to product, with
// a secondary lookup by the external productId string. Store-level errors
// are returned to the caller unchanged.
type ProductRepository interface {
	Count(ctx context.Context) (int64, error)
	FindByProductID(ctx context.Context, productID string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
}
