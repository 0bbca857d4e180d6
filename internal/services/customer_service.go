package services

import (
	"context"
	"errors"

	"vente-backend/internal/billing"
	"vente-backend/internal/cache"
	"vente-backend/internal/models"
	"vente-backend/internal/repositories"
)

type CustomerService struct {
	Repo *repositories.CustomerRepository
}

func NewCustomerService(repo *repositories.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: repo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	// Validate input
	if req.FirstName == "" || req.LastName == "" {
		return nil, errors.New("first name and last name are required")
	}

	customer := &models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		PriceTier: billing.CoerceTier(req.PriceTier),
	}

	if err := s.Repo.Create(ctx, customer); err != nil {
		return nil, err
	}

	cache.InvalidateList(ctx, cache.CustomerListKey)
	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	return s.Repo.Get(ctx, id)
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	return s.Repo.List(ctx)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	// Validate input
	if req.FirstName == "" || req.LastName == "" {
		return nil, errors.New("first name and last name are required")
	}

	customer := &models.Customer{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		PriceTier: billing.CoerceTier(req.PriceTier),
	}

	if err := s.Repo.Update(ctx, customer); err != nil {
		return nil, err
	}

	cache.InvalidateList(ctx, cache.CustomerListKey)
	return s.Repo.Get(ctx, id)
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateList(ctx, cache.CustomerListKey)
	return nil
}
