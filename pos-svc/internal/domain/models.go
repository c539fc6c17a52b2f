package domain

import "time"

type Category string

const (
	CategoryCoffee Category = "coffee"
	CategoryTea    Category = "tea"
	CategoryPastry Category = "pastry"
	CategoryFood   Category = "food"
	CategoryOther  Category = "other"
)

type Order struct {
	ID               string      `json:"id"`
	TableID          string      `json:"tableId,omitempty"`
	WaiterID         string      `json:"waiterId"`
	Status           OrderStatus `json:"status"`
	Notes            string      `json:"notes,omitempty"`
	CustomerName     string      `json:"customerName,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
	FiredToKitchenAt *time.Time  `json:"firedToKitchenAt,omitempty"`
	ReadyAt          *time.Time  `json:"readyAt,omitempty"`
	ServedAt         *time.Time  `json:"servedAt,omitempty"`
	Items            []OrderItem `json:"items"`
	Payments         []Payment   `json:"payments"`
}

// OrderItem carries the unit price captured when the item was added, so later
// menu price changes never touch an existing order.
type OrderItem struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Note       string  `json:"note,omitempty"`
}

type Payment struct {
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Timestamp time.Time `json:"timestamp"`
}

type Table struct {
	ID            string      `json:"id"`
	Label         string      `json:"label"`
	Capacity      int         `json:"capacity"`
	Status        TableStatus `json:"status"`
	ActiveOrderID string      `json:"activeOrderId,omitempty"`
}

// KotEvent is a kitchen ticket. One is created per fire call, so several
// tickets may point at the same order.
type KotEvent struct {
	ID      string    `json:"id"`
	OrderID string    `json:"orderId"`
	FiredAt time.Time `json:"firedAt"`
	Status  KotStatus `json:"status"`
	Station Station   `json:"station"`
	ItemIDs []string  `json:"itemIds,omitempty"`
}

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Tags        []string `json:"tags"`
	IsAvailable bool     `json:"isAvailable"`
	RecipeID    string   `json:"recipeId,omitempty"`
}

type Ingredient struct {
	InventoryItemID string  `json:"inventoryItemId"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
}

type Recipe struct {
	ID           string       `json:"id"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
}

type InventoryItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	ParLevel    float64 `json:"parLevel"`
	CostPerUnit float64 `json:"costPerUnit"`
}

// IsLow reports whether the item sits at or below its reorder threshold.
func (i InventoryItem) IsLow() bool {
	return i.Quantity <= i.ParLevel
}

type Waiter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// State is the full floor snapshot. It is also the persisted JSON document.
type State struct {
	Orders     []Order         `json:"orders"`
	Tables     []Table         `json:"tables"`
	KotTickets []KotEvent      `json:"kotTickets"`
	Menu       []MenuItem      `json:"menu"`
	Recipes    []Recipe        `json:"recipes"`
	Inventory  []InventoryItem `json:"inventory"`
	Waiters    []Waiter        `json:"waiters"`
	LastSync   time.Time       `json:"lastSync"`
}
