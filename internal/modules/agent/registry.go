package agent

// Property describes one tool parameter in JSON-schema terms.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Schema is the parameter schema of a tool.
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// ToolDescriptor statically describes one callable operation so a tool-calling
// orchestrator can discover it. The shape is provider-neutral.
type ToolDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  Schema `json:"parameters"`
	// ReadOnly marks tools that never write to the store.
	ReadOnly bool `json:"read_only"`
}

// Tool names accepted by the dispatcher.
const (
	ToolCheckStock          = "check_stock"
	ToolSearchInventory     = "search_inventory"
	ToolGetSalesTrend       = "get_sales_trend"
	ToolCreatePurchaseOrder = "create_purchase_order"
	ToolLookupCustomer      = "lookup_customer"
	ToolCheckOrderStatus    = "check_order_status"
	ToolGetCustomerOrders   = "get_customer_orders"
	ToolProcessRefund       = "process_refund"
)

// Registry lists every tool this service exposes to an agent.
var Registry = []ToolDescriptor{
	{
		Name:        ToolCheckStock,
		Description: "Check current stock level for a specific product. Returns stock quantity, reorder point, stock status, and supplier information.",
		Parameters: Schema{
			Type: "object",
			Properties: map[string]Property{
				"product_id": {Type: "string", Description: "Product ID (e.g., PROD001)"},
			},
			Required: []string{"product_id"},
		},
		ReadOnly: true,
	},
	{
		Name:        ToolSearchInventory,
		Description: "Search inventory by category or find low stock items. Can filter by category and/or show only items at or below their reorder point.",
		Parameters: Schema{
			Type: "object",
			Properties: map[string]Property{
				"category":       {Type: "string", Description: "Filter by product category. Leave empty to search all categories."},
				"low_stock_only": {Type: "boolean", Description: "If true, only return items where current stock is at or below the reorder point. Default is false."},
			},
		},
		ReadOnly: true,
	},
	{
		Name:        ToolGetSalesTrend,
		Description: "Get sales trend analysis and stockout prediction for a product. Returns last 7 days of sales data, average daily sales, trend direction, and estimated days until stockout. Includes a recommendation on whether to reorder.",
		Parameters: Schema{
			Type: "object",
			Properties: map[string]Property{
				"product_id": {Type: "string", Description: "Product ID (e.g., PROD002)"},
			},
			Required: []string{"product_id"},
		},
		ReadOnly: true,
	},
	{
		Name:        ToolCreatePurchaseOrder,
		Description: "Create a purchase order to restock a product. This will generate a PO with the supplier, calculate costs, and track the order. Use this when a product needs to be restocked.",
		Parameters: Schema{
			Type: "object",
			Properties: map[string]Property{
				"product_id": {Type: "string", Description: "Product ID to reorder (e.g., PROD002)"},
				"quantity":   {Type: "integer", Description: "Number of units to order. Consider average daily sales and lead time (5-7 days) when deciding quantity."},
				"reason":     {Type: "string", Description: "Reason for the purchase order (e.g., 'Low stock - high demand', 'Approaching stockout', 'Routine reorder')"},
			},
			Required: []string{"product_id", "quantity", "reason"},
		},
	},
	{
		Name:        ToolLookupCustomer,
		Description: "Look up customer information by customer ID.",
		Parameters: Schema{
			Type: "object",
			Properties: map[string]Property{
				"customer_id": {Type: "string", Description: "The customer ID (e.g., CUST001)"},
			},
			Required: []string{"customer_id"},
		},
		ReadOnly: true,
	},
	{
		Name:        ToolCheckOrderStatus,
		Description: "Check the status and details of a specific order.",
		Parameters: Schema{
			Type: "object",
			Properties: map[string]Property{
				"order_id": {Type: "string", Description: "The order ID (e.g., ORD12345)"},
			},
			Required: []string{"order_id"},
		},
		ReadOnly: true,
	},
	{
		Name:        ToolGetCustomerOrders,
		Description: "Get all orders for a specific customer.",
		Parameters: Schema{
			Type: "object",
			Properties: map[string]Property{
				"customer_id": {Type: "string", Description: "The customer ID"},
			},
			Required: []string{"customer_id"},
		},
		ReadOnly: true,
	},
	{
		Name:        ToolProcessRefund,
		Description: "Process a refund for a delivered order.",
		Parameters: Schema{
			Type: "object",
			Properties: map[string]Property{
				"order_id": {Type: "string", Description: "The order ID to refund"},
				"reason":   {Type: "string", Description: "Reason for the refund"},
			},
			Required: []string{"order_id", "reason"},
		},
	},
}
