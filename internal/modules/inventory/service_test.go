package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name         string
		stock        int
		reorderPoint int
		want         StockStatus
	}{
		{"above reorder point", 45, 20, StatusHealthy},
		{"just above reorder point", 21, 20, StatusHealthy},
		{"at reorder point", 20, 20, StatusLow},
		{"below reorder point", 8, 15, StatusLow},
		{"one unit left", 1, 20, StatusLow},
		{"empty shelf", 0, 20, StatusOutOfStock},
		{"empty shelf with zero reorder point", 0, 0, StatusOutOfStock},
		{"stocked with zero reorder point", 5, 0, StatusHealthy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.stock, tt.reorderPoint))
		})
	}
}

type fakeRepo struct {
	products  []*Product
	gotFilter SearchFilter
}

func (f *fakeRepo) GetProduct(_ context.Context, id string) (*Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (f *fakeRepo) ListProducts(_ context.Context, filter SearchFilter) ([]*Product, error) {
	f.gotFilter = filter
	var out []*Product
	for _, p := range f.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.LowStockOnly && p.Stock > p.ReorderPoint {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func sampleProducts() []*Product {
	return []*Product{
		{ID: "PROD001", Name: "Wireless Mouse", Category: "Electronics", Price: 29.99, Stock: 45, ReorderPoint: 20, Supplier: "TechCorp"},
		{ID: "PROD002", Name: "USB-C Cable", Category: "Electronics", Price: 12.99, Stock: 8, ReorderPoint: 15, Supplier: "TechCorp"},
		{ID: "PROD005", Name: "Ergonomic Chair", Category: "Furniture", Price: 299.99, Stock: 3, ReorderPoint: 5, Supplier: "HomeGoods"},
	}
}

func TestCheckStock(t *testing.T) {
	svc := NewService(&fakeRepo{products: sampleProducts()}, zap.NewNop())

	report, err := svc.CheckStock(context.Background(), "PROD002")
	require.NoError(t, err)

	assert.Equal(t, "PROD002", report.ProductID)
	assert.Equal(t, "USB-C Cable", report.ProductName)
	assert.Equal(t, "Electronics", report.Category)
	assert.Equal(t, 12.99, report.Price)
	assert.Equal(t, 8, report.CurrentStock)
	assert.Equal(t, 15, report.ReorderPoint)
	assert.Equal(t, StatusLow, report.StockStatus)
	assert.Equal(t, "TechCorp", report.Supplier)
}

func TestCheckStockNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{products: sampleProducts()}, zap.NewNop())

	_, err := svc.CheckStock(context.Background(), "NOPE")
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestSearchInventoryAll(t *testing.T) {
	svc := NewService(&fakeRepo{products: sampleProducts()}, zap.NewNop())

	summaries, err := svc.SearchInventory(context.Background(), SearchFilter{})
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, StatusHealthy, summaries[0].StockStatus)
	assert.Equal(t, StatusLow, summaries[1].StockStatus)
	assert.Equal(t, StatusLow, summaries[2].StockStatus)
}

func TestSearchInventoryFiltersPassThrough(t *testing.T) {
	repo := &fakeRepo{products: sampleProducts()}
	svc := NewService(repo, zap.NewNop())

	filter := SearchFilter{Category: "Furniture", LowStockOnly: true}
	summaries, err := svc.SearchInventory(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, filter, repo.gotFilter)
	require.Len(t, summaries, 1)
	assert.Equal(t, "PROD005", summaries[0].ProductID)
}

func TestSearchInventoryEmptyResultIsSuccess(t *testing.T) {
	svc := NewService(&fakeRepo{}, zap.NewNop())

	summaries, err := svc.SearchInventory(context.Background(), SearchFilter{Category: "Toys"})
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
