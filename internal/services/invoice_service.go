package services

import (
	"context"
	"log"

	"vente-backend/internal/billing"
	"vente-backend/internal/events"
	"vente-backend/internal/metrics"
	"vente-backend/internal/models"
	"vente-backend/internal/repositories"
	"vente-backend/internal/timeutil"
)

type InvoiceService struct {
	Repo         *repositories.InvoiceRepository
	OrderRepo    *repositories.OrderRepository
	CustomerRepo *repositories.CustomerRepository
	Products     *ProductService
}

func NewInvoiceService(repo *repositories.InvoiceRepository, orderRepo *repositories.OrderRepository, customerRepo *repositories.CustomerRepository, products *ProductService) *InvoiceService {
	return &InvoiceService{
		Repo:         repo,
		OrderRepo:    orderRepo,
		CustomerRepo: customerRepo,
		Products:     products,
	}
}

// CreateInvoice derives a complete invoice the same way orders are
// derived, under the FAC number sequence.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req *models.CreateInvoiceRequest) (*models.Invoice, error) {
	customer, err := s.CustomerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.Products.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	draft, err := assembleDraft(billing.KindInvoice, customer, req.Status, req.Lines, catalog)
	if err != nil {
		return nil, err
	}

	last, err := s.Repo.LastNumber(ctx)
	if err != nil {
		return nil, err
	}
	draft.Number = billing.NextNumber(last, billing.InvoicePrefix)

	draft, err = billing.BuildForSubmission(draft, timeutil.Now())
	if err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		Number:       draft.Number,
		IssueDate:    draft.IssueDate,
		CustomerName: draft.CustomerName,
		Lines:        draft.Lines,
		GrandTotal:   draft.GrandTotal,
		Status:       draft.Status,
	}

	if err := s.Repo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	metrics.DocumentsCreated.WithLabelValues("invoice").Inc()
	return invoice, nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id int) (*models.Invoice, error) {
	return s.Repo.Get(ctx, id)
}

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]*models.Invoice, error) {
	return s.Repo.List(ctx)
}

// UpdateInvoice rebuilds derived fields; the FAC number is kept.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id int, req *models.UpdateInvoiceRequest) (*models.Invoice, error) {
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

	draft, err := assembleDraft(billing.KindInvoice, customer, req.Status, req.Lines, catalog)
	if err != nil {
		return nil, err
	}

	draft, err = billing.BuildForSubmission(draft, timeutil.Now())
	if err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		ID:           existing.ID,
		Number:       existing.Number,
		IssueDate:    draft.IssueDate,
		CustomerName: draft.CustomerName,
		Lines:        draft.Lines,
		GrandTotal:   draft.GrandTotal,
		Status:       draft.Status,
	}

	if err := s.Repo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}

// invoiceFromPayment derives the paid invoice a recorded payment yields.
// The order's lines are copied and the total is recomputed from them
// through the same builder every create path uses; the payment amount
// lives on the linked payment row, never on the invoice.
func invoiceFromPayment(order *models.Order, ev events.PaymentRecorded, lastNumber string) (*models.Invoice, error) {
	draft := billing.Draft{
		Kind:         billing.KindInvoice,
		Number:       billing.NextNumber(lastNumber, billing.InvoicePrefix),
		CustomerName: order.CustomerName,
		Lines:        order.Lines,
		Status:       billing.StatusPaid,
	}

	draft, err := billing.BuildForSubmission(draft, ev.RecordedAt)
	if err != nil {
		return nil, err
	}

	orderID := order.ID
	paymentID := ev.PaymentID
	return &models.Invoice{
		Number:       draft.Number,
		IssueDate:    draft.IssueDate,
		CustomerName: draft.CustomerName,
		Lines:        draft.Lines,
		GrandTotal:   draft.GrandTotal,
		Status:       draft.Status,
		OrderID:      &orderID,
		PaymentID:    &paymentID,
	}, nil
}

// HandlePaymentRecorded creates a paid invoice for each recorded payment,
// linked back to the order and the payment. Registered as a bus
// subscriber; runs off the request path.
func (s *InvoiceService) HandlePaymentRecorded(ev events.PaymentRecorded) {
	ctx := context.Background()

	order, err := s.OrderRepo.Get(ctx, ev.OrderID)
	if err != nil {
		log.Printf("invoice from payment %d: load order %d: %v", ev.PaymentID, ev.OrderID, err)
		return
	}

	last, err := s.Repo.LastNumber(ctx)
	if err != nil {
		log.Printf("invoice from payment %d: last number: %v", ev.PaymentID, err)
		return
	}

	invoice, err := invoiceFromPayment(order, ev, last)
	if err != nil {
		log.Printf("invoice from payment %d: build: %v", ev.PaymentID, err)
		return
	}

	if err := s.Repo.Create(ctx, invoice); err != nil {
		log.Printf("invoice from payment %d: create: %v", ev.PaymentID, err)
		return
	}

	metrics.DocumentsCreated.WithLabelValues("invoice").Inc()
}
