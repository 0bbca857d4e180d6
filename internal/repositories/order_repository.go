package repositories

import (
	"context"

	"vente-backend/internal/billing"
	"vente-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// LastNumber returns the number of the most recently created order, or ""
// when none exist. It feeds the advisory number generator; there is no
// central allocation, so concurrent sessions reading the same snapshot
// can derive the same next number.
func (r *OrderRepository) LastNumber(ctx context.Context) (string, error) {
	var number string
	err := r.DB.QueryRow(ctx,
		`SELECT number FROM orders ORDER BY id DESC LIMIT 1`).Scan(&number)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	return number, err
}

// Create inserts an order and its lines in one transaction.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO orders(number, issue_date, customer_name, grand_total, status)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		o.Number, o.IssueDate, o.CustomerName, o.GrandTotal, o.Status,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertOrderLines(ctx, tx, o.ID, o.Lines); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertOrderLines(ctx context.Context, tx pgx.Tx, orderID int, lines []billing.Line) error {
	for i, line := range lines {
		_, err := tx.Exec(ctx,
			`INSERT INTO order_lines(order_id, position, product_id, product_name, quantity, unit_price, line_total)
             VALUES($1, $2, $3, $4, $5, $6, $7)`,
			orderID, i, line.ProductID, line.ProductName, line.Quantity, line.UnitPrice, line.LineTotal)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepository) loadLines(ctx context.Context, orderID int) ([]billing.Line, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT product_id, product_name, quantity, unit_price, line_total
         FROM order_lines WHERE order_id=$1 ORDER BY position`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []billing.Line
	for rows.Next() {
		var line billing.Line
		err := rows.Scan(&line.ProductID, &line.ProductName, &line.Quantity, &line.UnitPrice, &line.LineTotal)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *OrderRepository) Get(ctx context.Context, id int) (*models.Order, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, number, issue_date, customer_name, grand_total, status, created_at, updated_at
         FROM orders WHERE id=$1`, id)

	var order models.Order
	err := row.Scan(&order.ID, &order.Number, &order.IssueDate, &order.CustomerName,
		&order.GrandTotal, &order.Status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	order.Lines, err = r.loadLines(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, number, issue_date, customer_name, grand_total, status, created_at, updated_at
         FROM orders ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var order models.Order
		err := rows.Scan(&order.ID, &order.Number, &order.IssueDate, &order.CustomerName,
			&order.GrandTotal, &order.Status, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range orders {
		order.Lines, err = r.loadLines(ctx, order.ID)
		if err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// Update rewrites the order row and replaces its lines in one transaction.
func (r *OrderRepository) Update(ctx context.Context, o *models.Order) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE orders SET issue_date=$1, customer_name=$2, grand_total=$3, status=$4,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		o.IssueDate, o.CustomerName, o.GrandTotal, o.Status, o.ID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_lines WHERE order_id=$1`, o.ID); err != nil {
		return err
	}
	if err := insertOrderLines(ctx, tx, o.ID, o.Lines); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	return err
}
