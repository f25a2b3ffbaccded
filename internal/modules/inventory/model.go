package inventory

import "time"

// StockStatus classifies how a product's stock level relates to its reorder point.
type StockStatus string

const (
	StatusHealthy    StockStatus = "healthy"
	StatusLow        StockStatus = "low"
	StatusOutOfStock StockStatus = "out_of_stock"
)

// StatusFor classifies a stock level against a reorder point. An empty shelf is
// always out_of_stock, even when the reorder point is zero.
func StatusFor(stock, reorderPoint int) StockStatus {
	status := StatusHealthy
	if stock <= reorderPoint {
		status = StatusLow
	}
	if stock == 0 {
		status = StatusOutOfStock
	}
	return status
}

// Product is a stocked item. Rows are created at seed time and never mutated by
// this service; stock moves via sales and received purchase orders elsewhere.
type Product struct {
	ID           string    `json:"product_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	ReorderPoint int       `json:"reorder_point"`
	Supplier     string    `json:"supplier"`
	CreatedAt    time.Time `json:"created_at"`
}

// StockReport is the result of a stock check for a single product.
type StockReport struct {
	ProductID    string      `json:"product_id"`
	ProductName  string      `json:"product_name"`
	Category     string      `json:"category"`
	Price        float64     `json:"price"`
	CurrentStock int         `json:"current_stock"`
	ReorderPoint int         `json:"reorder_point"`
	StockStatus  StockStatus `json:"stock_status"`
	Supplier     string      `json:"supplier"`
}

// ProductSummary is one row of a search result.
type ProductSummary struct {
	ProductID    string      `json:"product_id"`
	Name         string      `json:"name"`
	Category     string      `json:"category"`
	Price        float64     `json:"price"`
	Stock        int         `json:"stock"`
	ReorderPoint int         `json:"reorder_point"`
	StockStatus  StockStatus `json:"stock_status"`
}

// SearchFilter narrows an inventory search. Zero values match everything.
type SearchFilter struct {
	Category     string `json:"category,omitempty"`
	LowStockOnly bool   `json:"low_stock_only,omitempty"`
}
