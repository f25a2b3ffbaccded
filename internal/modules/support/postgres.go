package support

import (
	"context"
	"database/sql"
	"errors"
)

// ---- Customers ----

type customerPostgres struct{ db *sql.DB }

// NewCustomerPostgresRepository creates a customer repository backed by Postgres.
func NewCustomerPostgresRepository(db *sql.DB) CustomerRepository {
	return &customerPostgres{db: db}
}

func (r *customerPostgres) GetCustomer(ctx context.Context, customerID string) (*Customer, error) {
	c := &Customer{}
	err := r.db.QueryRowContext(ctx, `
SELECT customer_id,name,email,tier,balance,created_at
FROM customers WHERE customer_id=$1`, customerID).
		Scan(&c.ID, &c.Name, &c.Email, &c.Tier, &c.Balance, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerPostgres) FindCustomersByName(ctx context.Context, name string) ([]*Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT customer_id,name,email,tier,balance,created_at
FROM customers WHERE name ILIKE '%' || $1 || '%' ORDER BY customer_id`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*Customer
	for rows.Next() {
		c := &Customer{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Tier, &c.Balance, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// ---- Orders ----

type orderPostgres struct{ db *sql.DB }

// NewOrderPostgresRepository creates an order repository backed by Postgres.
func NewOrderPostgresRepository(db *sql.DB) OrderRepository {
	return &orderPostgres{db: db}
}

func (r *orderPostgres) GetOrderDetail(ctx context.Context, orderID string) (*OrderDetail, error) {
	d := &OrderDetail{}
	var tracking, delivery sql.NullString
	err := r.db.QueryRowContext(ctx, `
SELECT o.order_id,o.customer_id,o.status,o.items,o.total,o.tracking,
       o.estimated_delivery,o.created_at,c.name
FROM orders o JOIN customers c ON o.customer_id=c.customer_id
WHERE o.order_id=$1`, orderID).
		Scan(&d.ID, &d.CustomerID, &d.Status, &d.Items, &d.Total,
			&tracking, &delivery, &d.CreatedAt, &d.CustomerName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	d.Tracking = tracking.String
	d.EstimatedDelivery = delivery.String
	return d, nil
}

func (r *orderPostgres) ListCustomerOrders(ctx context.Context, customerID string) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT order_id,customer_id,status,items,total,tracking,estimated_delivery,created_at
FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		var tracking, delivery sql.NullString
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.Items, &o.Total,
			&tracking, &delivery, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Tracking = tracking.String
		o.EstimatedDelivery = delivery.String
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// ---- Refunds ----

type refundPostgres struct{ db *sql.DB }

// NewRefundPostgresRepository creates a refund repository backed by Postgres.
func NewRefundPostgresRepository(db *sql.DB) RefundRepository {
	return &refundPostgres{db: db}
}

func (r *refundPostgres) HasRefund(ctx context.Context, orderID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM refunds WHERE order_id=$1)`, orderID).Scan(&exists)
	return exists, err
}

func (r *refundPostgres) CreateRefund(ctx context.Context, refund *Refund) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO refunds (refund_id,order_id,amount,reason,status)
VALUES ($1,$2,$3,$4,$5)`,
		refund.ID, refund.OrderID, refund.Amount, refund.Reason, refund.Status); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE orders SET status=$1 WHERE order_id=$2`,
		StatusRefunded, refund.OrderID); err != nil {
		return err
	}
	return tx.Commit()
}
