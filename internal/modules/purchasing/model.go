package purchasing

import "time"

// OrderStatus represents the lifecycle state of a purchase order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusApproved  OrderStatus = "approved"
	StatusReceived  OrderStatus = "received"
	StatusCancelled OrderStatus = "cancelled"
)

// PurchaseOrder is a restock order placed with a supplier. Orders are created
// pending and never mutated by this service.
type PurchaseOrder struct {
	ID        string      `json:"po_id"`
	ProductID string      `json:"product_id"`
	Quantity  int         `json:"quantity"`
	UnitCost  float64     `json:"unit_cost"`
	TotalCost float64     `json:"total_cost"`
	Reason    string      `json:"reason"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// CreateOrderRequest is the payload for raising a purchase order.
type CreateOrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

// OrderConfirmation is returned to the caller after a purchase order is placed.
type OrderConfirmation struct {
	PurchaseOrderID   string  `json:"purchase_order_id"`
	ProductID         string  `json:"product_id"`
	ProductName       string  `json:"product_name"`
	Quantity          int     `json:"quantity"`
	UnitCost          float64 `json:"unit_cost"`
	TotalCost         float64 `json:"total_cost"`
	Supplier          string  `json:"supplier"`
	Reason            string  `json:"reason"`
	EstimatedDelivery string  `json:"estimated_delivery"`
	Message           string  `json:"message"`
}
