package services

import (
	"context"

	"vente-backend/internal/billing"
	"vente-backend/internal/metrics"
	"vente-backend/internal/models"
	"vente-backend/internal/repositories"
	"vente-backend/internal/timeutil"
)

type OrderService struct {
	Repo         *repositories.OrderRepository
	PaymentRepo  *repositories.PaymentRepository
	CustomerRepo *repositories.CustomerRepository
	Products     *ProductService
}

func NewOrderService(repo *repositories.OrderRepository, paymentRepo *repositories.PaymentRepository, customerRepo *repositories.CustomerRepository, products *ProductService) *OrderService {
	return &OrderService{
		Repo:         repo,
		PaymentRepo:  paymentRepo,
		CustomerRepo: customerRepo,
		Products:     products,
	}
}

// CreateOrder derives a complete order from customer id, status and line
// inputs. Number, date, unit prices and totals are all computed here; the
// request never carries money fields.
func (s *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	customer, err := s.CustomerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.Products.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	draft, err := assembleDraft(billing.KindOrder, customer, req.Status, req.Lines, catalog)
	if err != nil {
		return nil, err
	}

	last, err := s.Repo.LastNumber(ctx)
	if err != nil {
		return nil, err
	}
	draft.Number = billing.NextNumber(last, billing.OrderPrefix)

	draft, err = billing.BuildForSubmission(draft, timeutil.Now())
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		Number:       draft.Number,
		IssueDate:    draft.IssueDate,
		CustomerName: draft.CustomerName,
		Lines:        draft.Lines,
		GrandTotal:   draft.GrandTotal,
		Status:       draft.Status,
	}

	if err := s.Repo.Create(ctx, order); err != nil {
		return nil, err
	}

	metrics.DocumentsCreated.WithLabelValues("order").Inc()
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	return s.Repo.Get(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]*models.Order, error) {
	return s.Repo.List(ctx)
}

// UpdateOrder rebuilds the order from scratch with the same derivation as
// create. The number is the one thing that survives: documents never get
// renumbered.
func (s *OrderService) UpdateOrder(ctx context.Context, id int, req *models.UpdateOrderRequest) (*models.Order, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	customer, err := s.CustomerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.Products.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	draft, err := assembleDraft(billing.KindOrder, customer, req.Status, req.Lines, catalog)
	if err != nil {
		return nil, err
	}

	draft, err = billing.BuildForSubmission(draft, timeutil.Now())
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:           existing.ID,
		Number:       existing.Number,
		IssueDate:    draft.IssueDate,
		CustomerName: draft.CustomerName,
		Lines:        draft.Lines,
		GrandTotal:   draft.GrandTotal,
		Status:       draft.Status,
	}

	if err := s.Repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}

// Balance reports the payment position of an order.
func (s *OrderService) Balance(ctx context.Context, id int) (*models.OrderBalance, error) {
	order, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	paid, err := s.PaymentRepo.SumByOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.OrderBalance{
		OrderID:     order.ID,
		GrandTotal:  order.GrandTotal,
		TotalPaid:   paid,
		Outstanding: billing.OutstandingBalance(order.GrandTotal, paid),
	}, nil
}
