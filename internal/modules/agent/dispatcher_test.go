package agent

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stocksense-io/stocksense-backend/internal/modules/inventory"
	"github.com/stocksense-io/stocksense-backend/internal/modules/purchasing"
	"github.com/stocksense-io/stocksense-backend/internal/modules/sales"
	"github.com/stocksense-io/stocksense-backend/internal/modules/support"
)

type stubInventory struct{}

func (stubInventory) CheckStock(_ context.Context, productID string) (*inventory.StockReport, error) {
	if productID != "PROD001" {
		return nil, inventory.ErrProductNotFound
	}
	return &inventory.StockReport{
		ProductID:    "PROD001",
		ProductName:  "Wireless Mouse",
		CurrentStock: 45,
		ReorderPoint: 20,
		StockStatus:  inventory.StatusHealthy,
	}, nil
}

func (stubInventory) SearchInventory(_ context.Context, filter inventory.SearchFilter) ([]*inventory.ProductSummary, error) {
	if filter.LowStockOnly {
		return []*inventory.ProductSummary{{ProductID: "PROD002", StockStatus: inventory.StatusLow}}, nil
	}
	return []*inventory.ProductSummary{}, nil
}

type stubSales struct{}

func (stubSales) AnalyzeTrend(_ context.Context, productID string) (*sales.TrendReport, error) {
	if productID != "PROD001" {
		return nil, inventory.ErrProductNotFound
	}
	return &sales.TrendReport{ProductID: "PROD001", Trend: sales.TrendStable}, nil
}

type stubPurchasing struct{}

func (stubPurchasing) CreateOrder(_ context.Context, req purchasing.CreateOrderRequest) (*purchasing.OrderConfirmation, error) {
	if req.Quantity <= 0 {
		return nil, purchasing.ErrInvalidQuantity
	}
	if req.ProductID != "PROD001" {
		return nil, inventory.ErrProductNotFound
	}
	return &purchasing.OrderConfirmation{PurchaseOrderID: "PO-test", Quantity: req.Quantity}, nil
}

func (stubPurchasing) GetOrder(_ context.Context, _ string) (*purchasing.PurchaseOrder, error) {
	return nil, purchasing.ErrOrderNotFound
}

func (stubPurchasing) ListProductOrders(_ context.Context, _ string) ([]*purchasing.PurchaseOrder, error) {
	return nil, nil
}

type stubSupport struct{}

func (stubSupport) LookupCustomer(_ context.Context, id string) (*support.Customer, error) {
	if id != "CUST001" {
		return nil, support.ErrCustomerNotFound
	}
	return &support.Customer{ID: "CUST001", Name: "Sarah Johnson"}, nil
}

func (stubSupport) LookupCustomerByName(_ context.Context, _ string) ([]*support.Customer, error) {
	return nil, support.ErrCustomerNotFound
}

func (stubSupport) CheckOrderStatus(_ context.Context, _ string) (*support.OrderDetail, error) {
	return nil, support.ErrOrderNotFound
}

func (stubSupport) GetCustomerOrders(_ context.Context, _ string) (*support.CustomerOrders, error) {
	return nil, support.ErrCustomerNotFound
}

func (stubSupport) ProcessRefund(_ context.Context, _, _ string) (*support.RefundConfirmation, error) {
	return nil, &support.ErrOrderNotRefundable{Status: support.StatusShipped}
}

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(stubInventory{}, stubSales{}, stubPurchasing{}, stubSupport{}, zap.NewNop())
}

func TestDispatchCheckStock(t *testing.T) {
	d := newTestDispatcher()

	env := d.Dispatch(context.Background(), ToolCheckStock, json.RawMessage(`{"product_id":"PROD001"}`))
	require.Equal(t, "success", env.Status)

	report, ok := env.Data.(*inventory.StockReport)
	require.True(t, ok)
	assert.Equal(t, "Wireless Mouse", report.ProductName)
}

func TestDispatchNotFoundBecomesErrorEnvelope(t *testing.T) {
	d := newTestDispatcher()

	env := d.Dispatch(context.Background(), ToolCheckStock, json.RawMessage(`{"product_id":"NOPE"}`))
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Product NOPE not found", env.Message)
	assert.Nil(t, env.Data)
}

func TestDispatchSearchInventoryDefaults(t *testing.T) {
	d := newTestDispatcher()

	// No arguments at all: both filters default off.
	env := d.Dispatch(context.Background(), ToolSearchInventory, nil)
	require.Equal(t, "success", env.Status)

	env = d.Dispatch(context.Background(), ToolSearchInventory, json.RawMessage(`{"low_stock_only":true}`))
	require.Equal(t, "success", env.Status)
	summaries, ok := env.Data.([]*inventory.ProductSummary)
	require.True(t, ok)
	require.Len(t, summaries, 1)
	assert.Equal(t, "PROD002", summaries[0].ProductID)
}

func TestDispatchCreatePurchaseOrder(t *testing.T) {
	d := newTestDispatcher()

	env := d.Dispatch(context.Background(), ToolCreatePurchaseOrder,
		json.RawMessage(`{"product_id":"PROD001","quantity":50,"reason":"test"}`))
	require.Equal(t, "success", env.Status)

	conf, ok := env.Data.(*purchasing.OrderConfirmation)
	require.True(t, ok)
	assert.Equal(t, 50, conf.Quantity)

	env = d.Dispatch(context.Background(), ToolCreatePurchaseOrder,
		json.RawMessage(`{"product_id":"PROD001","quantity":0,"reason":"test"}`))
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "quantity must be greater than zero", env.Message)
}

func TestDispatchProcessRefundInvalidState(t *testing.T) {
	d := newTestDispatcher()

	env := d.Dispatch(context.Background(), ToolProcessRefund,
		json.RawMessage(`{"order_id":"ORD12345","reason":"x"}`))
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Message, "cannot refund order with status: shipped")
}

func TestDispatchUnknownTool(t *testing.T) {
	d := newTestDispatcher()

	env := d.Dispatch(context.Background(), "launch_missiles", json.RawMessage(`{}`))
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "unknown tool: launch_missiles", env.Message)
}

func TestDispatchMalformedArguments(t *testing.T) {
	d := newTestDispatcher()

	env := d.Dispatch(context.Background(), ToolCheckStock, json.RawMessage(`{"product_id":`))
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Message, "invalid arguments")
}

func TestRegistryCoversDispatcher(t *testing.T) {
	// Every registered tool must dispatch to something other than "unknown tool".
	d := newTestDispatcher()
	for _, tool := range Registry {
		env := d.Dispatch(context.Background(), tool.Name, json.RawMessage(`{}`))
		assert.NotContains(t, env.Message, "unknown tool", "tool %s", tool.Name)
	}
}

func TestRegistryMarksWritesAsNotReadOnly(t *testing.T) {
	for _, tool := range Registry {
		switch tool.Name {
		case ToolCreatePurchaseOrder, ToolProcessRefund:
			assert.False(t, tool.ReadOnly, "tool %s", tool.Name)
		default:
			assert.True(t, tool.ReadOnly, "tool %s", tool.Name)
		}
	}
}
