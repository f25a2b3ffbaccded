package sales

import "time"

// Trend labels the direction of recent demand for a product.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
	TrendNoData     Trend = "no_data"
)

// SalesRecord is one day of sales for a product. Records are written by the
// sales pipeline and immutable here; this module only reads them.
type SalesRecord struct {
	ProductID    string    `json:"product_id"`
	Date         time.Time `json:"date"`
	QuantitySold int       `json:"quantity_sold"`
}

// TrendReport is the full output of a trend analysis for one product.
type TrendReport struct {
	ProductID                  string  `json:"product_id"`
	ProductName                string  `json:"product_name"`
	LastSales                  []int   `json:"last_7_days_sales"`
	AverageDailySales          float64 `json:"average_daily_sales"`
	Trend                      Trend   `json:"trend"`
	CurrentStock               int     `json:"current_stock"`
	ReorderPoint               int     `json:"reorder_point"`
	EstimatedDaysUntilStockout int     `json:"estimated_days_until_stockout"`
	Recommendation             string  `json:"recommendation"`
}
