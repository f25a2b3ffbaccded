package inventory

import (
	"context"
	"database/sql"
	"errors"
)

type postgres struct{ db *sql.DB }

// NewPostgresRepository creates a product repository backed by Postgres.
func NewPostgresRepository(db *sql.DB) Repository { return &postgres{db: db} }

func (r *postgres) GetProduct(ctx context.Context, productID string) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRowContext(ctx, `
SELECT product_id,name,category,price,stock,reorder_point,supplier,created_at
FROM products WHERE product_id=$1`, productID).
		Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.ReorderPoint,
			&p.Supplier, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgres) ListProducts(ctx context.Context, filter SearchFilter) ([]*Product, error) {
	query := `
SELECT product_id,name,category,price,stock,reorder_point,supplier,created_at
FROM products WHERE 1=1`
	var args []interface{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += ` AND category=$1`
	}
	if filter.LowStockOnly {
		query += ` AND stock <= reorder_point`
	}
	query += ` ORDER BY product_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock,
			&p.ReorderPoint, &p.Supplier, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
