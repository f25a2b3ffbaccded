package sales

import "context"

// Repository defines sales-history data access.
type Repository interface {
	// ListRecent returns up to maxDays records for a product, oldest first.
	ListRecent(ctx context.Context, productID string, maxDays int) ([]*SalesRecord, error)
}
