package repositories

import (
	"context"

	"vente-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO products(name, category_id, wholesale_price, retail_price, consumer_price)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		p.Name, p.CategoryID, p.WholesalePrice, p.RetailPrice, p.ConsumerPrice,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) Get(ctx context.Context, id int) (*models.Product, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT p.id, p.name, p.category_id, COALESCE(c.name, '') as category_name,
                p.wholesale_price, p.retail_price, p.consumer_price, p.created_at, p.updated_at
         FROM products p
         LEFT JOIN categories c ON p.category_id = c.id
         WHERE p.id=$1`, id)

	var product models.Product
	err := row.Scan(&product.ID, &product.Name, &product.CategoryID, &product.CategoryName,
		&product.WholesalePrice, &product.RetailPrice, &product.ConsumerPrice,
		&product.CreatedAt, &product.UpdatedAt)
	return &product, err
}

func (r *ProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT p.id, p.name, p.category_id, COALESCE(c.name, '') as category_name,
                p.wholesale_price, p.retail_price, p.consumer_price, p.created_at, p.updated_at
         FROM products p
         LEFT JOIN categories c ON p.category_id = c.id
         ORDER BY p.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		var product models.Product
		err := rows.Scan(&product.ID, &product.Name, &product.CategoryID, &product.CategoryName,
			&product.WholesalePrice, &product.RetailPrice, &product.ConsumerPrice,
			&product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return nil, err
		}
		products = append(products, &product)
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE products SET name=$1, category_id=$2, wholesale_price=$3, retail_price=$4,
                consumer_price=$5, updated_at=CURRENT_TIMESTAMP
         WHERE id=$6`,
		p.Name, p.CategoryID, p.WholesalePrice, p.RetailPrice, p.ConsumerPrice, p.ID)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	return err
}
