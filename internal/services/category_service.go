package services

import (
	"context"
	"errors"

	"vente-backend/internal/models"
	"vente-backend/internal/repositories"
)

type CategoryService struct {
	Repo *repositories.CategoryRepository
}

func NewCategoryService(repo *repositories.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	category := &models.Category{Name: req.Name}
	if err := s.Repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.Repo.List(ctx)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int, req *models.CreateCategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	category := &models.Category{ID: id, Name: req.Name}
	if err := s.Repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
