package domain

type ItemRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note,omitempty"`
}

type CreateOrderInput struct {
	WaiterID     string        `json:"waiterId"`
	Items        []ItemRequest `json:"items"`
	TableID      string        `json:"tableId,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	CustomerName string        `json:"customerName,omitempty"`
}

type InventoryUpdate struct {
	ID       string   `json:"id"`
	Quantity *float64 `json:"quantity,omitempty"`
	ParLevel *float64 `json:"parLevel,omitempty"`
}

type MenuItemUpdate struct {
	ID          string   `json:"id"`
	Price       *float64 `json:"price,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// TableStatusUpdate overrides a table directly. A nil ActiveOrderID keeps the
// current link; a pointer to "" clears it.
type TableStatusUpdate struct {
	ID            string      `json:"id"`
	Status        TableStatus `json:"status"`
	ActiveOrderID *string     `json:"activeOrderId,omitempty"`
}
