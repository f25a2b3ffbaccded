package support

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrOrderNotRefundable is returned when an order is not in a refundable state.
// Only delivered orders can be refunded.
type ErrOrderNotRefundable struct {
	Status OrderStatus
}

func (e *ErrOrderNotRefundable) Error() string {
	return fmt.Sprintf("cannot refund order with status: %s. Order must be delivered", e.Status)
}

// ErrAlreadyRefunded is returned when an order already has a refund on file.
type ErrAlreadyRefunded struct {
	OrderID string
}

func (e *ErrAlreadyRefunded) Error() string {
	return fmt.Sprintf("order %s has already been refunded", e.OrderID)
}

// Service defines customer-support business logic.
type Service interface {
	// LookupCustomer fetches a customer account by id.
	LookupCustomer(ctx context.Context, customerID string) (*Customer, error)

	// LookupCustomerByName finds customers by partial, case-insensitive name.
	LookupCustomerByName(ctx context.Context, name string) ([]*Customer, error)

	// CheckOrderStatus fetches an order along with its customer's name.
	CheckOrderStatus(ctx context.Context, orderID string) (*OrderDetail, error)

	// GetCustomerOrders lists every order for a customer, newest first.
	GetCustomerOrders(ctx context.Context, customerID string) (*CustomerOrders, error)

	// ProcessRefund refunds a delivered order in full. One refund per order.
	ProcessRefund(ctx context.Context, orderID, reason string) (*RefundConfirmation, error)
}

type service struct {
	customerRepo CustomerRepository
	orderRepo    OrderRepository
	refundRepo   RefundRepository
	logger       *zap.Logger
}

// NewService creates a new support service.
func NewService(customerRepo CustomerRepository, orderRepo OrderRepository, refundRepo RefundRepository, logger *zap.Logger) Service {
	return &service{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		refundRepo:   refundRepo,
		logger:       logger,
	}
}

func (s *service) LookupCustomer(ctx context.Context, customerID string) (*Customer, error) {
	return s.customerRepo.GetCustomer(ctx, customerID)
}

func (s *service) LookupCustomerByName(ctx context.Context, name string) ([]*Customer, error) {
	customers, err := s.customerRepo.FindCustomersByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, ErrCustomerNotFound
	}
	return customers, nil
}

func (s *service) CheckOrderStatus(ctx context.Context, orderID string) (*OrderDetail, error) {
	return s.orderRepo.GetOrderDetail(ctx, orderID)
}

func (s *service) GetCustomerOrders(ctx context.Context, customerID string) (*CustomerOrders, error) {
	customer, err := s.customerRepo.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListCustomerOrders(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return &CustomerOrders{
		CustomerName: customer.Name,
		TotalOrders:  len(orders),
		Orders:       orders,
	}, nil
}

func (s *service) ProcessRefund(ctx context.Context, orderID, reason string) (*RefundConfirmation, error) {
	order, err := s.orderRepo.GetOrderDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != StatusDelivered {
		return nil, &ErrOrderNotRefundable{Status: order.Status}
	}

	refunded, err := s.refundRepo.HasRefund(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if refunded {
		return nil, &ErrAlreadyRefunded{OrderID: orderID}
	}

	refund := &Refund{
		ID:      "REF-" + uuid.New().String(),
		OrderID: orderID,
		Amount:  order.Total,
		Reason:  reason,
		Status:  "approved",
	}
	if err := s.refundRepo.CreateRefund(ctx, refund); err != nil {
		return nil, err
	}

	s.logger.Info("refund approved",
		zap.String("refund_id", refund.ID),
		zap.String("order_id", orderID),
		zap.Float64("amount", refund.Amount))

	return &RefundConfirmation{
		RefundID: refund.ID,
		OrderID:  orderID,
		Amount:   refund.Amount,
		Message: fmt.Sprintf(
			"Refund of $%.2f approved. Refund ID: %s. Amount will appear in 3-5 business days.",
			refund.Amount, refund.ID),
	}, nil
}
