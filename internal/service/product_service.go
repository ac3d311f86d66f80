package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopledger/backend/internal/cache"
	"github.com/shopledger/backend/internal/models"
	"github.com/shopledger/backend/internal/repository"
)

// ProductService handles product business logic
type ProductService interface {
	Create(ctx context.Context, req *CreateProductRequest) (*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	cache       cache.ProductCache
	logger      *slog.Logger
}

// NewProductService creates a new product service. cache may be nil, in
// which case every read goes to the repository.
func NewProductService(
	productRepo repository.ProductRepository,
	productCache cache.ProductCache,
	logger *slog.Logger,
) ProductService {
	return &productService{
		productRepo: productRepo,
		cache:       productCache,
		logger:      logger,
	}
}

// Create creates a new product
func (s *productService) Create(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product := req.ToProduct()
	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("failed to create product",
			slog.String("product_name", product.Name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("product created",
		slog.Int64("product_id", product.ID),
	)

	return product, nil
}

// GetByID retrieves a product, reading through the cache when one is
// configured. Cache failures fall back to the repository.
func (s *productService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	if s.cache != nil {
		product, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn("product cache read failed",
				slog.Int64("product_id", id),
				slog.String("error", err.Error()),
			)
		} else if product != nil {
			return product, nil
		}
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, product); err != nil {
			s.logger.Warn("product cache write failed",
				slog.Int64("product_id", id),
				slog.String("error", err.Error()),
			)
		}
	}

	return product, nil
}

// List retrieves all products
func (s *productService) List(ctx context.Context) ([]*models.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
