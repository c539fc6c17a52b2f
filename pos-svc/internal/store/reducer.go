package store

import (
	"time"

	"cafe-floor/pos-svc/internal/domain"
)

// Reduce applies one action to state and returns the next state. Only the
// targeted collection is rebuilt; the other slices are shared with the input,
// so neither the input nor the output may be mutated in place. Unknown actions
// return state unchanged.
func Reduce(state domain.State, action Action, now time.Time) domain.State {
	next := state
	switch a := action.(type) {
	case CreateOrder:
		next.Orders = prepend(state.Orders, a.Order)
	case UpsertOrder:
		next.Orders = upsert(state.Orders, a.Order, orderID)
	case DeleteOrder:
		next.Orders = remove(state.Orders, a.ID, orderID)
	case UpdateTable:
		next.Tables = replace(state.Tables, a.Table, tableID)
	case UpsertKot:
		next.KotTickets = upsert(state.KotTickets, a.Ticket, ticketID)
	case DeleteKot:
		next.KotTickets = remove(state.KotTickets, a.ID, ticketID)
	case UpdateInventory:
		next.Inventory = mapItems(state.Inventory, func(item domain.InventoryItem) domain.InventoryItem {
			if item.ID != a.ID {
				return item
			}
			if a.Quantity != nil {
				item.Quantity = *a.Quantity
			}
			if a.ParLevel != nil {
				item.ParLevel = *a.ParLevel
			}
			return item
		})
	case UpdateMenuItem:
		next.Menu = mapItems(state.Menu, func(item domain.MenuItem) domain.MenuItem {
			if item.ID != a.ID {
				return item
			}
			if a.Price != nil {
				item.Price = *a.Price
			}
			if a.IsAvailable != nil {
				item.IsAvailable = *a.IsAvailable
			}
			if a.Tags != nil {
				item.Tags = append([]string{}, a.Tags...)
			}
			return item
		})
	case ToggleMenuAvailability:
		next.Menu = mapItems(state.Menu, func(item domain.MenuItem) domain.MenuItem {
			if item.ID == a.ID {
				item.IsAvailable = a.IsAvailable
			}
			return item
		})
	case BulkUpdate:
		if a.Orders != nil {
			next.Orders = a.Orders
		}
		if a.Tables != nil {
			next.Tables = a.Tables
		}
		if a.KotTickets != nil {
			next.KotTickets = a.KotTickets
		}
		if a.Menu != nil {
			next.Menu = a.Menu
		}
		if a.Recipes != nil {
			next.Recipes = a.Recipes
		}
		if a.Inventory != nil {
			next.Inventory = a.Inventory
		}
		if a.Waiters != nil {
			next.Waiters = a.Waiters
		}
	case SyncFromStorage:
		return a.State
	default:
		return state
	}
	next.LastSync = now
	return next
}

func orderID(o domain.Order) string     { return o.ID }
func tableID(t domain.Table) string     { return t.ID }
func ticketID(k domain.KotEvent) string { return k.ID }

func prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

func upsert[T any](items []T, item T, id func(T) string) []T {
	for i := range items {
		if id(items[i]) == id(item) {
			out := append([]T(nil), items...)
			out[i] = item
			return out
		}
	}
	return prepend(items, item)
}

func replace[T any](items []T, item T, id func(T) string) []T {
	return mapItems(items, func(existing T) T {
		if id(existing) == id(item) {
			return item
		}
		return existing
	})
}

func remove[T any](items []T, target string, id func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if id(item) != target {
			out = append(out, item)
		}
	}
	return out
}

func mapItems[T any](items []T, fn func(T) T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}
