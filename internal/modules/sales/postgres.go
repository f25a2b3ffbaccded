package sales

import (
	"context"
	"database/sql"
)

type postgres struct{ db *sql.DB }

// NewPostgresRepository creates a sales-history repository backed by Postgres.
func NewPostgresRepository(db *sql.DB) Repository { return &postgres{db: db} }

func (r *postgres) ListRecent(ctx context.Context, productID string, maxDays int) ([]*SalesRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT product_id,date,quantity_sold
FROM sales_history WHERE product_id=$1 ORDER BY date ASC LIMIT $2`,
		productID, maxDays)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*SalesRecord
	for rows.Next() {
		rec := &SalesRecord{}
		if err := rows.Scan(&rec.ProductID, &rec.Date, &rec.QuantitySold); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
