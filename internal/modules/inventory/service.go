package inventory

import (
	"context"

	"go.uber.org/zap"
)

// Service defines the read-only inventory operations exposed to callers.
type Service interface {
	// CheckStock returns the stock position of a single product.
	CheckStock(ctx context.Context, productID string) (*StockReport, error)

	// SearchInventory lists products matching the filter, each with its status.
	SearchInventory(ctx context.Context, filter SearchFilter) ([]*ProductSummary, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new inventory service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) CheckStock(ctx context.Context, productID string) (*StockReport, error) {
	p, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	report := &StockReport{
		ProductID:    p.ID,
		ProductName:  p.Name,
		Category:     p.Category,
		Price:        p.Price,
		CurrentStock: p.Stock,
		ReorderPoint: p.ReorderPoint,
		StockStatus:  StatusFor(p.Stock, p.ReorderPoint),
		Supplier:     p.Supplier,
	}
	s.logger.Debug("stock checked",
		zap.String("product_id", p.ID),
		zap.String("status", string(report.StockStatus)))
	return report, nil
}

func (s *service) SearchInventory(ctx context.Context, filter SearchFilter) ([]*ProductSummary, error) {
	products, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]*ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, &ProductSummary{
			ProductID:    p.ID,
			Name:         p.Name,
			Category:     p.Category,
			Price:        p.Price,
			Stock:        p.Stock,
			ReorderPoint: p.ReorderPoint,
			StockStatus:  StatusFor(p.Stock, p.ReorderPoint),
		})
	}
	return summaries, nil
}
