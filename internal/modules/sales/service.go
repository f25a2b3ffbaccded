package sales

import (
	"context"

	"go.uber.org/zap"

	"github.com/stocksense-io/stocksense-backend/internal/modules/inventory"
)

// Service defines the trend-analysis operation exposed to callers.
type Service interface {
	// AnalyzeTrend estimates demand, trend direction, and stockout horizon for
	// a product from its most recent sales window. Read-only.
	AnalyzeTrend(ctx context.Context, productID string) (*TrendReport, error)
}

type service struct {
	productRepo inventory.Repository
	salesRepo   Repository
	logger      *zap.Logger
}

// NewService creates a new sales trend service.
func NewService(productRepo inventory.Repository, salesRepo Repository, logger *zap.Logger) Service {
	return &service{productRepo: productRepo, salesRepo: salesRepo, logger: logger}
}

func (s *service) AnalyzeTrend(ctx context.Context, productID string) (*TrendReport, error) {
	p, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	records, err := s.salesRepo.ListRecent(ctx, productID, WindowDays)
	if err != nil {
		return nil, err
	}

	quantities := make([]int, 0, len(records))
	for _, rec := range records {
		quantities = append(quantities, rec.QuantitySold)
	}

	report := analyze(p.ID, p.Name, p.Stock, p.ReorderPoint, quantities)
	s.logger.Debug("trend analyzed",
		zap.String("product_id", p.ID),
		zap.String("trend", string(report.Trend)),
		zap.Int("days_until_stockout", report.EstimatedDaysUntilStockout))
	return report, nil
}
