package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/stocksense-io/stocksense-backend/internal/modules/inventory"
	"github.com/stocksense-io/stocksense-backend/internal/modules/purchasing"
	"github.com/stocksense-io/stocksense-backend/internal/modules/sales"
	"github.com/stocksense-io/stocksense-backend/internal/modules/support"
)

// Envelope is the structured result every tool invocation produces. Agents
// branch on Status, never on transport faults.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func success(data interface{}) *Envelope { return &Envelope{Status: "success", Data: data} }

func failure(format string, args ...interface{}) *Envelope {
	return &Envelope{Status: "error", Message: fmt.Sprintf(format, args...)}
}

// Dispatcher routes named tool invocations to the backing services and folds
// every outcome, including failures, into an Envelope.
type Dispatcher struct {
	inventory  inventory.Service
	sales      sales.Service
	purchasing purchasing.Service
	support    support.Service
	logger     *zap.Logger
}

// NewDispatcher creates a dispatcher over the four domain services.
func NewDispatcher(inv inventory.Service, trend sales.Service, po purchasing.Service, sup support.Service, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		inventory:  inv,
		sales:      trend,
		purchasing: po,
		support:    sup,
		logger:     logger,
	}
}

// Dispatch invokes the named tool with raw JSON arguments. It never returns an
// error; anything that goes wrong becomes an error envelope.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args json.RawMessage) *Envelope {
	env := d.dispatch(ctx, name, args)
	if env.Status != "success" {
		d.logger.Warn("tool call failed",
			zap.String("tool", name),
			zap.String("message", env.Message))
	} else {
		d.logger.Debug("tool call succeeded", zap.String("tool", name))
	}
	return env
}

func (d *Dispatcher) dispatch(ctx context.Context, name string, args json.RawMessage) *Envelope {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	case ToolCheckStock:
		var in struct {
			ProductID string `json:"product_id"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return failure("invalid arguments: %v", err)
		}
		report, err := d.inventory.CheckStock(ctx, in.ProductID)
		if err != nil {
			return d.fail(err, in.ProductID)
		}
		return success(report)

	case ToolSearchInventory:
		var in inventory.SearchFilter
		if err := json.Unmarshal(args, &in); err != nil {
			return failure("invalid arguments: %v", err)
		}
		summaries, err := d.inventory.SearchInventory(ctx, in)
		if err != nil {
			return d.fail(err, "")
		}
		return success(summaries)

	case ToolGetSalesTrend:
		var in struct {
			ProductID string `json:"product_id"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return failure("invalid arguments: %v", err)
		}
		report, err := d.sales.AnalyzeTrend(ctx, in.ProductID)
		if err != nil {
			return d.fail(err, in.ProductID)
		}
		return success(report)

	case ToolCreatePurchaseOrder:
		var in purchasing.CreateOrderRequest
		if err := json.Unmarshal(args, &in); err != nil {
			return failure("invalid arguments: %v", err)
		}
		conf, err := d.purchasing.CreateOrder(ctx, in)
		if err != nil {
			return d.fail(err, in.ProductID)
		}
		return success(conf)

	case ToolLookupCustomer:
		var in struct {
			CustomerID string `json:"customer_id"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return failure("invalid arguments: %v", err)
		}
		customer, err := d.support.LookupCustomer(ctx, in.CustomerID)
		if err != nil {
			return d.fail(err, in.CustomerID)
		}
		return success(customer)

	case ToolCheckOrderStatus:
		var in struct {
			OrderID string `json:"order_id"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return failure("invalid arguments: %v", err)
		}
		detail, err := d.support.CheckOrderStatus(ctx, in.OrderID)
		if err != nil {
			return d.fail(err, in.OrderID)
		}
		return success(detail)

	case ToolGetCustomerOrders:
		var in struct {
			CustomerID string `json:"customer_id"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return failure("invalid arguments: %v", err)
		}
		orders, err := d.support.GetCustomerOrders(ctx, in.CustomerID)
		if err != nil {
			return d.fail(err, in.CustomerID)
		}
		return success(orders)

	case ToolProcessRefund:
		var in struct {
			OrderID string `json:"order_id"`
			Reason  string `json:"reason"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return failure("invalid arguments: %v", err)
		}
		conf, err := d.support.ProcessRefund(ctx, in.OrderID, in.Reason)
		if err != nil {
			return d.fail(err, in.OrderID)
		}
		return success(conf)

	default:
		return failure("unknown tool: %s", name)
	}
}

// fail converts a domain error into an error envelope. The id, when known,
// makes not-found messages actionable for the calling agent.
func (d *Dispatcher) fail(err error, id string) *Envelope {
	var notRefundable *support.ErrOrderNotRefundable
	var alreadyRefunded *support.ErrAlreadyRefunded

	switch {
	case errors.Is(err, inventory.ErrProductNotFound):
		return failure("Product %s not found", id)
	case errors.Is(err, support.ErrCustomerNotFound):
		return failure("Customer not found")
	case errors.Is(err, support.ErrOrderNotFound):
		return failure("Order not found")
	case errors.Is(err, purchasing.ErrInvalidQuantity),
		errors.As(err, &notRefundable),
		errors.As(err, &alreadyRefunded):
		return failure("%s", err.Error())
	default:
		d.logger.Error("tool call error", zap.Error(err))
		return failure("internal error")
	}
}
