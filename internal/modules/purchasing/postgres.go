package purchasing

import (
	"context"
	"database/sql"
	"errors"
)

type postgres struct{ db *sql.DB }

// NewPostgresRepository creates a purchase-order repository backed by Postgres.
func NewPostgresRepository(db *sql.DB) Repository { return &postgres{db: db} }

func (r *postgres) Insert(ctx context.Context, po *PurchaseOrder) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO purchase_orders (po_id,product_id,quantity,unit_cost,total_cost,reason,status)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		po.ID, po.ProductID, po.Quantity, po.UnitCost, po.TotalCost, po.Reason, po.Status)
	return err
}

func (r *postgres) GetOrder(ctx context.Context, poID string) (*PurchaseOrder, error) {
	po := &PurchaseOrder{}
	err := r.db.QueryRowContext(ctx, `
SELECT po_id,product_id,quantity,unit_cost,total_cost,reason,status,created_at
FROM purchase_orders WHERE po_id=$1`, poID).
		Scan(&po.ID, &po.ProductID, &po.Quantity, &po.UnitCost, &po.TotalCost,
			&po.Reason, &po.Status, &po.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return po, nil
}

func (r *postgres) ListByProduct(ctx context.Context, productID string) ([]*PurchaseOrder, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT po_id,product_id,quantity,unit_cost,total_cost,reason,status,created_at
FROM purchase_orders WHERE product_id=$1 ORDER BY created_at DESC`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*PurchaseOrder
	for rows.Next() {
		po := &PurchaseOrder{}
		if err := rows.Scan(&po.ID, &po.ProductID, &po.Quantity, &po.UnitCost,
			&po.TotalCost, &po.Reason, &po.Status, &po.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, po)
	}
	return orders, rows.Err()
}
