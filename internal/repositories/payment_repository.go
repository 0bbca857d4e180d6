package repositories

import (
	"context"

	"vente-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO payments(order_id, payment_date, amount)
         VALUES($1, $2, $3)
         RETURNING id, created_at`,
		p.OrderID, p.PaymentDate, p.Amount,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PaymentRepository) List(ctx context.Context) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT p.id, p.order_id, o.number, p.payment_date, p.amount, p.created_at
         FROM payments p
         JOIN orders o ON p.order_id = o.id
         ORDER BY p.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func (r *PaymentRepository) ListByOrder(ctx context.Context, orderID int) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT p.id, p.order_id, o.number, p.payment_date, p.amount, p.created_at
         FROM payments p
         JOIN orders o ON p.order_id = o.id
         WHERE p.order_id=$1
         ORDER BY p.id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPayments(rows)
}

func scanPayments(rows pgx.Rows) ([]*models.Payment, error) {
	var payments []*models.Payment
	for rows.Next() {
		var p models.Payment
		err := rows.Scan(&p.ID, &p.OrderID, &p.OrderNumber, &p.PaymentDate, &p.Amount, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}

// SumByOrder returns the total amount already paid against an order.
func (r *PaymentRepository) SumByOrder(ctx context.Context, orderID int) (float64, error) {
	var total float64
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE order_id=$1`, orderID).Scan(&total)
	return total, err
}
