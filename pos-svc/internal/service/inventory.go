package service

import (
	"log/slog"

	"cafe-floor/pos-svc/internal/domain"
	"cafe-floor/pos-svc/internal/store"
)

// inventoryDebits turns the items being fired into one decrement per
// ingredient. Usage is summed across all items first, so two dishes sharing
// an ingredient produce a single update. Quantities clamp at zero; a shortfall
// is logged but never blocks the fire.
func inventoryDebits(state domain.State, items []domain.OrderItem, logger *slog.Logger) []store.Action {
	used := make(map[string]float64)
	var order []string

	for _, item := range items {
		menuItem, ok := state.MenuItem(item.MenuItemID)
		if !ok || menuItem.RecipeID == "" {
			continue
		}
		recipe, ok := state.Recipe(menuItem.RecipeID)
		if !ok {
			continue
		}
		for _, ingredient := range recipe.Ingredients {
			if _, seen := used[ingredient.InventoryItemID]; !seen {
				order = append(order, ingredient.InventoryItemID)
			}
			used[ingredient.InventoryItemID] += ingredient.Quantity * float64(item.Quantity)
		}
	}

	actions := make([]store.Action, 0, len(order))
	for _, id := range order {
		stock, ok := state.InventoryItem(id)
		if !ok {
			continue
		}
		remaining := stock.Quantity - used[id]
		if remaining < 0 {
			logger.Warn("inventory shortfall",
				"inventory_item", id,
				"on_hand", stock.Quantity,
				"required", used[id],
			)
			remaining = 0
		}
		actions = append(actions, store.UpdateInventory{ID: id, Quantity: &remaining})
	}
	return actions
}

var categoryPriority = []domain.Category{
	domain.CategoryCoffee,
	domain.CategoryTea,
	domain.CategoryPastry,
	domain.CategoryFood,
	domain.CategoryOther,
}

// routeStation picks the station for the category with the most units among
// items. Ties go to the earlier category in categoryPriority; an empty list
// goes to the kitchen.
func routeStation(state domain.State, items []domain.OrderItem) domain.Station {
	counts := make(map[domain.Category]int)
	for _, item := range items {
		menuItem, ok := state.MenuItem(item.MenuItemID)
		if !ok {
			continue
		}
		counts[menuItem.Category] += item.Quantity
	}

	best, bestCount := domain.CategoryFood, 0
	for _, c := range categoryPriority {
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}
	return domain.StationFor(best)
}
