package repository

import (
	"context"
	"sync"

	"github.com/kahvecikaan/composingMicroservices/internal/product/domain"
)

type memoryProductRepository struct {
	products []*domain.Product
	nextID   int64
	mutex    sync.RWMutex
}

// NewMemoryProductRepository returns an empty in-memory store. It backs the
// tests and lets the service run without a database.
func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepository{nextID: 1}
}

func (r *memoryProductRepository) Count(ctx context.Context) (int64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return int64(len(r.products)), nil
}

func (r *memoryProductRepository) FindByProductID(ctx context.Context, productID string) (*domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, product := range r.products {
		if product.ProductID == productID {
			copied := *product
			return &copied, nil
		}
	}

	return nil, domain.ErrProductNotFound
}

func (r *memoryProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	// insertion order, which is id order
	result := make([]*domain.Product, len(r.products))
	for i, product := range r.products {
		copied := *product
		result[i] = &copied
	}

	return result, nil
}

func (r *memoryProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	copied := *product

	if copied.ID == 0 {
		copied.ID = r.nextID
		r.nextID++
		r.products = append(r.products, &copied)
	} else {
		if copied.ID >= r.nextID {
			r.nextID = copied.ID + 1
		}
		replaced := false
		for i, p := range r.products {
			if p.ID == copied.ID {
				r.products[i] = &copied
				replaced = true
				break
			}
		}
		if !replaced {
			r.products = append(r.products, &copied)
		}
	}

	result := copied
	return &result, nil
}
