package services

import (
	"context"

	"vente-backend/internal/billing"
	"vente-backend/internal/events"
	"vente-backend/internal/metrics"
	"vente-backend/internal/models"
	"vente-backend/internal/repositories"
	"vente-backend/internal/timeutil"
)

type PaymentService struct {
	Repo      *repositories.PaymentRepository
	OrderRepo *repositories.OrderRepository
	Bus       *events.Bus
}

func NewPaymentService(repo *repositories.PaymentRepository, orderRepo *repositories.OrderRepository, bus *events.Bus) *PaymentService {
	return &PaymentService{
		Repo:      repo,
		OrderRepo: orderRepo,
		Bus:       bus,
	}
}

// RecordPayment validates the amount against the order's outstanding
// balance and persists it. On success a PaymentRecorded event is
// published; the invoice side effect happens there, not here.
func (s *PaymentService) RecordPayment(ctx context.Context, orderID int, req *models.CreatePaymentRequest) (*models.Payment, error) {
	order, err := s.OrderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	paid, err := s.Repo.SumByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := billing.CheckPayment(order.GrandTotal, paid, req.Amount); err != nil {
		metrics.PaymentsRejected.Inc()
		return nil, err
	}

	payment := &models.Payment{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		PaymentDate: timeutil.Now(),
		Amount:      req.Amount,
	}

	if err := s.Repo.Create(ctx, payment); err != nil {
		return nil, err
	}

	metrics.PaymentsRecorded.Inc()
	s.Bus.PublishPaymentRecorded(events.PaymentRecorded{
		PaymentID:  payment.ID,
		OrderID:    order.ID,
		Amount:     payment.Amount,
		RecordedAt: payment.PaymentDate,
	})

	return payment, nil
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	return s.Repo.List(ctx)
}

func (s *PaymentService) ListByOrder(ctx context.Context, orderID int) ([]*models.Payment, error) {
	return s.Repo.ListByOrder(ctx, orderID)
}
