package support

import "time"

// OrderStatus is the lifecycle state of a customer order.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
	StatusRefunded   OrderStatus = "refunded"
)

// Customer is a support-facing view of an account.
type Customer struct {
	ID        string    `json:"customer_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Tier      string    `json:"tier"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// Order is a customer order as seen by support.
type Order struct {
	ID                string      `json:"order_id"`
	CustomerID        string      `json:"customer_id"`
	Status            OrderStatus `json:"status"`
	Items             string      `json:"items"`
	Total             float64     `json:"total"`
	Tracking          string      `json:"tracking,omitempty"`
	EstimatedDelivery string      `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
}

// OrderDetail is an order joined with its customer's name.
type OrderDetail struct {
	Order
	CustomerName string `json:"customer_name"`
}

// CustomerOrders lists every order a customer has placed.
type CustomerOrders struct {
	CustomerName string   `json:"customer_name"`
	TotalOrders  int      `json:"total_orders"`
	Orders       []*Order `json:"orders"`
}

// Refund records a refund issued against a delivered order.
type Refund struct {
	ID        string    `json:"refund_id"`
	OrderID   string    `json:"order_id"`
	Amount    float64   `json:"amount"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// RefundConfirmation is returned to the caller after a refund is approved.
type RefundConfirmation struct {
	RefundID string  `json:"refund_id"`
	OrderID  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
	Message  string  `json:"message"`
}
