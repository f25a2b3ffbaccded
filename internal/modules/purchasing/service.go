package purchasing

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stocksense-io/stocksense-backend/internal/modules/inventory"
)

// ErrInvalidQuantity is returned when a purchase order asks for zero or fewer units.
var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// costRatio is the assumed wholesale cost as a fraction of retail price.
const costRatio = 0.6

// deliveryEstimate is the supplier lead time quoted on every confirmation.
const deliveryEstimate = "5-7 business days"

// Service defines purchase-order business logic.
type Service interface {
	// CreateOrder raises a pending purchase order for a product and returns
	// the confirmation. The only write this system performs.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderConfirmation, error)

	// GetOrder retrieves a purchase order by id.
	GetOrder(ctx context.Context, poID string) (*PurchaseOrder, error)

	// ListProductOrders returns all purchase orders raised for a product.
	ListProductOrders(ctx context.Context, productID string) ([]*PurchaseOrder, error)
}

type service struct {
	repo        Repository
	productRepo inventory.Repository
	logger      *zap.Logger
}

// NewService creates a new purchasing service.
func NewService(repo Repository, productRepo inventory.Repository, logger *zap.Logger) Service {
	return &service{repo: repo, productRepo: productRepo, logger: logger}
}

func (s *service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderConfirmation, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.productRepo.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	unitCost := p.Price * costRatio
	totalCost := unitCost * float64(req.Quantity)

	po := &PurchaseOrder{
		ID:        "PO-" + uuid.New().String(),
		ProductID: p.ID,
		Quantity:  req.Quantity,
		UnitCost:  unitCost,
		TotalCost: totalCost,
		Reason:    req.Reason,
		Status:    StatusPending,
	}
	if err := s.repo.Insert(ctx, po); err != nil {
		return nil, err
	}

	s.logger.Info("purchase order created",
		zap.String("po_id", po.ID),
		zap.String("product_id", p.ID),
		zap.Int("quantity", po.Quantity),
		zap.Float64("total_cost", totalCost))

	return &OrderConfirmation{
		PurchaseOrderID:   po.ID,
		ProductID:         p.ID,
		ProductName:       p.Name,
		Quantity:          po.Quantity,
		UnitCost:          round2(unitCost),
		TotalCost:         round2(totalCost),
		Supplier:          p.Supplier,
		Reason:            po.Reason,
		EstimatedDelivery: deliveryEstimate,
		Message:           fmt.Sprintf("Purchase order %s created successfully", po.ID),
	}, nil
}

func (s *service) GetOrder(ctx context.Context, poID string) (*PurchaseOrder, error) {
	return s.repo.GetOrder(ctx, poID)
}

func (s *service) ListProductOrders(ctx context.Context, productID string) ([]*PurchaseOrder, error) {
	return s.repo.ListByProduct(ctx, productID)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
