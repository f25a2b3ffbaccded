package support

import (
	"context"
	"errors"
)

var (
	// ErrCustomerNotFound is returned when no customer matches the lookup.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrOrderNotFound is returned when an order id does not exist.
	ErrOrderNotFound = errors.New("order not found")
)

// CustomerRepository defines customer data access.
type CustomerRepository interface {
	GetCustomer(ctx context.Context, customerID string) (*Customer, error)
	// FindCustomersByName matches case-insensitively on a partial name.
	FindCustomersByName(ctx context.Context, name string) ([]*Customer, error)
}

// OrderRepository defines customer-order data access.
type OrderRepository interface {
	GetOrderDetail(ctx context.Context, orderID string) (*OrderDetail, error)
	// ListCustomerOrders returns a customer's orders, newest first.
	ListCustomerOrders(ctx context.Context, customerID string) ([]*Order, error)
}

// RefundRepository defines refund data access.
type RefundRepository interface {
	HasRefund(ctx context.Context, orderID string) (bool, error)
	// CreateRefund inserts the refund and marks the order refunded atomically.
	CreateRefund(ctx context.Context, refund *Refund) error
}
