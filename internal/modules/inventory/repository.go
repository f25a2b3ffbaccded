package inventory

import (
	"context"
	"errors"
)

// ErrProductNotFound is returned when a product id does not exist in the store.
var ErrProductNotFound = errors.New("product not found")

// Repository defines product data storage.
type Repository interface {
	GetProduct(ctx context.Context, productID string) (*Product, error)
	ListProducts(ctx context.Context, filter SearchFilter) ([]*Product, error)
}
