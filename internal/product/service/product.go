package service

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/composingMicroservices/internal/product/domain"
	"github.com/kahvecikaan/composingMicroservices/internal/product/repository"
)

// CatalogService exposes the catalog operations the HTTP transport needs.
type CatalogService interface {
	GetProductByProductID(ctx context.Context, productID string) (*domain.Product, error)
	GetProducts(ctx context.Context) ([]*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Seed(ctx context.Context) error
}

type catalogService struct {
	repo   repository.ProductRepository
	logger hclog.Logger
}

func NewCatalogService(repo repository.ProductRepository, logger hclog.Logger) CatalogService {
	return &catalogService{
		repo:   repo,
		logger: logger,
	}
}

func (s *catalogService) GetProductByProductID(ctx context.Context, productID string) (*domain.Product, error) {
	s.logger.Debug("Getting product", "product_id", productID)

	return s.repo.FindByProductID(ctx, productID)
}

func (s *catalogService) GetProducts(ctx context.Context) ([]*domain.Product, error) {
	s.logger.Debug("Getting all products")

	return s.repo.FindAll(ctx)
}

func (s *catalogService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		s.logger.Error("Unable to save product", "product_id", product.ProductID, "error", err)
		return nil, err
	}

	s.logger.Info("Saved product", "id", saved.ID, "product_id", saved.ProductID)
	return saved, nil
}
