package sales

import (
	"fmt"
	"math"
)

// Business constants for the analyzer. Values are contractual: downstream
// agents branch on the exact labels and day counts these produce.
const (
	// WindowDays bounds the sales window fed into the analyzer.
	WindowDays = 7

	// stockoutSentinel stands in for "effectively unbounded" when demand is zero.
	stockoutSentinel = 999

	// minTrendPoints is the smallest window that can be split meaningfully.
	minTrendPoints = 4

	// growthFactor and declineFactor bound the "stable" band between the
	// first-half and second-half means.
	growthFactor  = 1.2
	declineFactor = 0.8

	// reorderHorizonDays is the stockout horizon that escalates a recommendation.
	reorderHorizonDays = 7
)

// analyze computes the trend report for a product from its recent sales
// window, oldest first. Pure; no storage access.
func analyze(productID, productName string, currentStock, reorderPoint int, quantities []int) *TrendReport {
	report := &TrendReport{
		ProductID:    productID,
		ProductName:  productName,
		CurrentStock: currentStock,
		ReorderPoint: reorderPoint,
	}

	if len(quantities) == 0 {
		report.LastSales = []int{}
		report.Trend = TrendNoData
		report.EstimatedDaysUntilStockout = stockoutSentinel
		report.Recommendation = "No sales data available"
		return report
	}

	total := 0
	for _, q := range quantities {
		total += q
	}
	avgDaily := float64(total) / float64(len(quantities))

	daysRemaining := stockoutSentinel
	if avgDaily > 0 {
		daysRemaining = int(float64(currentStock) / avgDaily)
	}

	report.LastSales = quantities
	report.AverageDailySales = round2(avgDaily)
	report.Trend = classifyTrend(quantities)
	report.EstimatedDaysUntilStockout = daysRemaining
	report.Recommendation = recommend(currentStock, reorderPoint, daysRemaining)
	return report
}

// classifyTrend compares the mean of the first half of the window against the
// mean of the second half. Odd windows give the extra element to the second
// half. Fewer than minTrendPoints points cannot be split meaningfully.
func classifyTrend(quantities []int) Trend {
	if len(quantities) < minTrendPoints {
		return TrendStable
	}

	mid := len(quantities) / 2
	firstMean := mean(quantities[:mid])
	secondMean := mean(quantities[mid:])

	switch {
	case secondMean > firstMean*growthFactor:
		return TrendIncreasing
	case secondMean < firstMean*declineFactor:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// recommend picks the first matching rule; order matters.
func recommend(currentStock, reorderPoint, daysRemaining int) string {
	switch {
	case currentStock <= reorderPoint && daysRemaining <= reorderHorizonDays:
		return fmt.Sprintf("URGENT: Reorder needed. Only %d days of stock remaining.", daysRemaining)
	case currentStock <= reorderPoint:
		return "Reorder recommended. Stock below reorder point."
	case daysRemaining <= reorderHorizonDays:
		return fmt.Sprintf("Monitor closely. Will run out in approximately %d days.", daysRemaining)
	default:
		return "Stock levels adequate."
	}
}

func mean(xs []int) float64 {
	total := 0
	for _, x := range xs {
		total += x
	}
	return float64(total) / float64(len(xs))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
