// Package dashboard derives the manager's floor metrics from a state snapshot.
// Everything here is a pure read; nothing is cached.
package dashboard

import (
	"sort"
	"time"

	"cafe-floor/pos-svc/internal/domain"
	"cafe-floor/pos-svc/internal/service"

	"github.com/shopspring/decimal"
)

const topItemsLimit = 5

type ItemSales struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Units      int     `json:"units"`
	Revenue    float64 `json:"revenue"`
}

type Summary struct {
	RevenueToday   float64                `json:"revenueToday"`
	OrdersToday    int                    `json:"ordersToday"`
	AverageTicket  float64                `json:"averageTicket"`
	OpenTables     int                    `json:"openTables"`
	TotalTables    int                    `json:"totalTables"`
	PendingTickets int                    `json:"pendingTickets"`
	LowStock       []domain.InventoryItem `json:"lowStock"`
	LowStockCount  int                    `json:"lowStockCount"`
	InventoryValue float64                `json:"inventoryValue"`
	QueueDepth     map[domain.Station]int `json:"queueDepth"`
	TopItemsToday  []ItemSales            `json:"topItemsToday"`
	GeneratedAt    time.Time              `json:"generatedAt"`
}

// Summarize computes the dashboard as of now. "Today" is the calendar day of
// now in its own location.
func Summarize(state domain.State, now time.Time) Summary {
	revenue, orders := RevenueToday(state, now)
	occupied, total := OpenTables(state)
	low := LowStock(state)

	return Summary{
		RevenueToday:   revenue.InexactFloat64(),
		OrdersToday:    orders,
		AverageTicket:  AverageTicket(revenue, orders).InexactFloat64(),
		OpenTables:     occupied,
		TotalTables:    total,
		PendingTickets: PendingTickets(state),
		LowStock:       low,
		LowStockCount:  len(low),
		InventoryValue: InventoryValue(state).InexactFloat64(),
		QueueDepth:     QueueDepth(state),
		TopItemsToday:  TopItemsToday(state, now, topItemsLimit),
		GeneratedAt:    now,
	}
}

// RevenueToday sums order totals for orders created today, whatever their
// status.
func RevenueToday(state domain.State, now time.Time) (decimal.Decimal, int) {
	revenue := decimal.Zero
	count := 0
	for _, order := range state.Orders {
		if !sameDay(order.CreatedAt, now) {
			continue
		}
		revenue = revenue.Add(service.OrderTotal(order))
		count++
	}
	return revenue, count
}

func AverageTicket(revenue decimal.Decimal, orders int) decimal.Decimal {
	if orders == 0 {
		return decimal.Zero
	}
	return revenue.DivRound(decimal.NewFromInt(int64(orders)), 2)
}

func OpenTables(state domain.State) (occupied, total int) {
	for _, table := range state.Tables {
		if table.Status == domain.TableOccupied {
			occupied++
		}
	}
	return occupied, len(state.Tables)
}

func PendingTickets(state domain.State) int {
	pending := 0
	for _, ticket := range state.KotTickets {
		if ticket.Status != domain.KotCompleted {
			pending++
		}
	}
	return pending
}

// LowStock lists inventory at or below its par level, lowest cover first.
func LowStock(state domain.State) []domain.InventoryItem {
	low := []domain.InventoryItem{}
	for _, item := range state.Inventory {
		if item.IsLow() {
			low = append(low, item)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return cover(low[i]) < cover(low[j])
	})
	return low
}

func cover(item domain.InventoryItem) float64 {
	if item.ParLevel <= 0 {
		return 0
	}
	return item.Quantity / item.ParLevel
}

func InventoryValue(state domain.State) decimal.Decimal {
	value := decimal.Zero
	for _, item := range state.Inventory {
		value = value.Add(decimal.NewFromFloat(item.CostPerUnit).Mul(decimal.NewFromFloat(item.Quantity)))
	}
	return value.Round(2)
}

// QueueDepth counts open tickets per station. Every station is present, even
// when idle.
func QueueDepth(state domain.State) map[domain.Station]int {
	depth := map[domain.Station]int{
		domain.StationKitchen: 0,
		domain.StationBar:     0,
		domain.StationPastry:  0,
	}
	for _, ticket := range state.KotTickets {
		if ticket.Status == domain.KotCompleted {
			continue
		}
		depth[ticket.Station]++
	}
	return depth
}

// TopItemsToday ranks menu items by units sold on orders created today.
func TopItemsToday(state domain.State, now time.Time, limit int) []ItemSales {
	byItem := make(map[string]*ItemSales)
	revenue := make(map[string]decimal.Decimal)
	for _, order := range state.Orders {
		if !sameDay(order.CreatedAt, now) {
			continue
		}
		for _, item := range order.Items {
			sales, ok := byItem[item.MenuItemID]
			if !ok {
				sales = &ItemSales{MenuItemID: item.MenuItemID}
				if menuItem, found := state.MenuItem(item.MenuItemID); found {
					sales.Name = menuItem.Name
				}
				byItem[item.MenuItemID] = sales
			}
			sales.Units += item.Quantity
			revenue[item.MenuItemID] = revenue[item.MenuItemID].Add(
				decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	all := make([]ItemSales, 0, len(byItem))
	for id, sales := range byItem {
		sales.Revenue = revenue[id].InexactFloat64()
		all = append(all, *sales)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Units != all[j].Units {
			return all[i].Units > all[j].Units
		}
		return all[i].MenuItemID < all[j].MenuItemID
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

func sameDay(t, now time.Time) bool {
	t = t.In(now.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
