package purchasing

import (
	"context"
	"errors"
)

// ErrOrderNotFound is returned when a purchase order id does not exist.
var ErrOrderNotFound = errors.New("purchase order not found")

// Repository defines purchase-order data storage.
type Repository interface {
	Insert(ctx context.Context, po *PurchaseOrder) error
	GetOrder(ctx context.Context, poID string) (*PurchaseOrder, error)
	ListByProduct(ctx context.Context, productID string) ([]*PurchaseOrder, error)
}
