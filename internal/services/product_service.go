package services

import (
	"context"
	"errors"

	"vente-backend/internal/billing"
	"vente-backend/internal/cache"
	"vente-backend/internal/models"
	"vente-backend/internal/repositories"
)

type ProductService struct {
	Repo *repositories.ProductRepository
}

func NewProductService(repo *repositories.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	// Validate input
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if req.WholesalePrice < 0 || req.RetailPrice < 0 || req.ConsumerPrice < 0 {
		return nil, errors.New("prices must not be negative")
	}

	product := &models.Product{
		Name:           req.Name,
		CategoryID:     req.CategoryID,
		WholesalePrice: req.WholesalePrice,
		RetailPrice:    req.RetailPrice,
		ConsumerPrice:  req.ConsumerPrice,
	}

	if err := s.Repo.Create(ctx, product); err != nil {
		return nil, err
	}

	cache.InvalidateList(ctx, cache.ProductListKey)
	return s.Repo.Get(ctx, product.ID)
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return s.Repo.List(ctx)
}

// Catalog returns the pricing snapshot the document engine works against.
func (s *ProductService) Catalog(ctx context.Context) (billing.Catalog, error) {
	products, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	catalog := make(billing.Catalog, 0, len(products))
	for _, p := range products {
		catalog = append(catalog, p.Priced())
	}
	return catalog, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int, req *models.UpdateProductRequest) (*models.Product, error) {
	// Validate input
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if req.WholesalePrice < 0 || req.RetailPrice < 0 || req.ConsumerPrice < 0 {
		return nil, errors.New("prices must not be negative")
	}

	product := &models.Product{
		ID:             id,
		Name:           req.Name,
		CategoryID:     req.CategoryID,
		WholesalePrice: req.WholesalePrice,
		RetailPrice:    req.RetailPrice,
		ConsumerPrice:  req.ConsumerPrice,
	}

	if err := s.Repo.Update(ctx, product); err != nil {
		return nil, err
	}

	cache.InvalidateList(ctx, cache.ProductListKey)
	return s.Repo.Get(ctx, id)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateList(ctx, cache.ProductListKey)
	return nil
}
