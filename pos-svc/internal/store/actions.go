package store

import "cafe-floor/pos-svc/internal/domain"

// Action is one primitive mutation understood by Reduce.
type Action interface {
	Kind() string
}

type CreateOrder struct{ Order domain.Order }

type UpsertOrder struct{ Order domain.Order }

type DeleteOrder struct{ ID string }

type UpdateTable struct{ Table domain.Table }

type UpsertKot struct{ Ticket domain.KotEvent }

type DeleteKot struct{ ID string }

// UpdateInventory is a partial update; nil fields keep their value.
type UpdateInventory struct {
	ID       string
	Quantity *float64
	ParLevel *float64
}

// UpdateMenuItem is a partial update; nil fields keep their value. A non-nil
// empty Tags slice clears the tags.
type UpdateMenuItem struct {
	ID          string
	Price       *float64
	IsAvailable *bool
	Tags        []string
}

type ToggleMenuAvailability struct {
	ID          string
	IsAvailable bool
}

// BulkUpdate replaces every collection that is non-nil.
type BulkUpdate struct {
	Orders     []domain.Order
	Tables     []domain.Table
	KotTickets []domain.KotEvent
	Menu       []domain.MenuItem
	Recipes    []domain.Recipe
	Inventory  []domain.InventoryItem
	Waiters    []domain.Waiter
}

// SyncFromStorage swaps in a loaded snapshot as-is, LastSync included.
type SyncFromStorage struct{ State domain.State }

func (CreateOrder) Kind() string            { return "CREATE_ORDER" }
func (UpsertOrder) Kind() string            { return "UPSERT_ORDER" }
func (DeleteOrder) Kind() string            { return "DELETE_ORDER" }
func (UpdateTable) Kind() string            { return "UPDATE_TABLE" }
func (UpsertKot) Kind() string              { return "UPSERT_KOT" }
func (DeleteKot) Kind() string              { return "DELETE_KOT" }
func (UpdateInventory) Kind() string        { return "UPDATE_INVENTORY" }
func (UpdateMenuItem) Kind() string         { return "UPDATE_MENU_ITEM" }
func (ToggleMenuAvailability) Kind() string { return "TOGGLE_MENU_AVAILABILITY" }
func (BulkUpdate) Kind() string             { return "BULK_UPDATE" }
func (SyncFromStorage) Kind() string        { return "SYNC_FROM_STORAGE" }
