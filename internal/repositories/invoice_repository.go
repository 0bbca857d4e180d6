package repositories

import (
	"context"

	"vente-backend/internal/billing"
	"vente-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepository struct {
	DB *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

// LastNumber returns the most recently created invoice number, "" when none.
func (r *InvoiceRepository) LastNumber(ctx context.Context) (string, error) {
	var number string
	err := r.DB.QueryRow(ctx,
		`SELECT number FROM invoices ORDER BY id DESC LIMIT 1`).Scan(&number)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	return number, err
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *models.Invoice) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO invoices(number, issue_date, customer_name, grand_total, status, order_id, payment_id)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at, updated_at`,
		inv.Number, inv.IssueDate, inv.CustomerName, inv.GrandTotal, inv.Status,
		inv.OrderID, inv.PaymentID,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertInvoiceLines(ctx, tx, inv.ID, inv.Lines); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertInvoiceLines(ctx context.Context, tx pgx.Tx, invoiceID int, lines []billing.Line) error {
	for i, line := range lines {
		_, err := tx.Exec(ctx,
			`INSERT INTO invoice_lines(invoice_id, position, product_id, product_name, quantity, unit_price, line_total)
             VALUES($1, $2, $3, $4, $5, $6, $7)`,
			invoiceID, i, line.ProductID, line.ProductName, line.Quantity, line.UnitPrice, line.LineTotal)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *InvoiceRepository) loadLines(ctx context.Context, invoiceID int) ([]billing.Line, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT product_id, product_name, quantity, unit_price, line_total
         FROM invoice_lines WHERE invoice_id=$1 ORDER BY position`, invoiceID)
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

func (r *InvoiceRepository) Get(ctx context.Context, id int) (*models.Invoice, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, number, issue_date, customer_name, grand_total, status, order_id, payment_id,
                created_at, updated_at
         FROM invoices WHERE id=$1`, id)

	var inv models.Invoice
	err := row.Scan(&inv.ID, &inv.Number, &inv.IssueDate, &inv.CustomerName,
		&inv.GrandTotal, &inv.Status, &inv.OrderID, &inv.PaymentID,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}

	inv.Lines, err = r.loadLines(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]*models.Invoice, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, number, issue_date, customer_name, grand_total, status, order_id, payment_id,
                created_at, updated_at
         FROM invoices ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		var inv models.Invoice
		err := rows.Scan(&inv.ID, &inv.Number, &inv.IssueDate, &inv.CustomerName,
			&inv.GrandTotal, &inv.Status, &inv.OrderID, &inv.PaymentID,
			&inv.CreatedAt, &inv.UpdatedAt)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, inv := range invoices {
		inv.Lines, err = r.loadLines(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
	}
	return invoices, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *models.Invoice) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE invoices SET issue_date=$1, customer_name=$2, grand_total=$3, status=$4,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		inv.IssueDate, inv.CustomerName, inv.GrandTotal, inv.Status, inv.ID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_lines WHERE invoice_id=$1`, inv.ID); err != nil {
		return err
	}
	if err := insertInvoiceLines(ctx, tx, inv.ID, inv.Lines); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *InvoiceRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM invoices WHERE id=$1`, id)
	return err
}
