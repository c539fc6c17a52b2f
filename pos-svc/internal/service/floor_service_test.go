package service_test

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"cafe-floor/pos-svc/internal/domain"
	"cafe-floor/pos-svc/internal/mocks"
	"cafe-floor/pos-svc/internal/service"
	"cafe-floor/pos-svc/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

// fixture: item A is $3.00 and uses 1 unit of X, item B is $3.00 with no
// recipe, item C is a $4.00 pastry using 0.5 X and 2 Y, item L is a latte.
func fixtureState() domain.State {
	return domain.State{
		Orders: []domain.Order{},
		Tables: []domain.Table{
			{ID: "T1", Label: "Table 1", Capacity: 2, Status: domain.TableAvailable},
			{ID: "T2", Label: "Table 2", Capacity: 4, Status: domain.TableAvailable},
		},
		KotTickets: []domain.KotEvent{},
		Menu: []domain.MenuItem{
			{ID: "A", Name: "Toast", Category: domain.CategoryFood, Price: 3.00, IsAvailable: true, RecipeID: "rA"},
			{ID: "B", Name: "Water", Category: domain.CategoryOther, Price: 3.00, IsAvailable: true},
			{ID: "C", Name: "Scone", Category: domain.CategoryPastry, Price: 4.00, IsAvailable: true, RecipeID: "rC"},
			{ID: "L", Name: "Latte", Category: domain.CategoryCoffee, Price: 4.50, IsAvailable: true, RecipeID: "missing-recipe"},
		},
		Recipes: []domain.Recipe{
			{ID: "rA", Ingredients: []domain.Ingredient{{InventoryItemID: "X", Quantity: 1, Unit: "slice"}}},
			{ID: "rC", Ingredients: []domain.Ingredient{
				{InventoryItemID: "X", Quantity: 0.5, Unit: "slice"},
				{InventoryItemID: "Y", Quantity: 2, Unit: "g"},
			}},
		},
		Inventory: []domain.InventoryItem{
			{ID: "X", Name: "Bread", Unit: "slice", Quantity: 10, ParLevel: 3},
			{ID: "Y", Name: "Butter", Unit: "g", Quantity: 5, ParLevel: 1},
		},
	}
}

type harness struct {
	svc   *service.FloorService
	store *store.Store
}

func newHarness(t *testing.T, opts ...service.Option) harness {
	t.Helper()
	tick := 0
	clock := func() time.Time {
		tick++
		return t0.Add(time.Duration(tick) * time.Second)
	}
	seq := 0
	ids := func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}

	st := store.New(fixtureState(), store.WithClock(clock))
	base := []service.Option{
		service.WithClock(clock),
		service.WithIDGenerator(ids),
		service.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	return harness{svc: service.NewFloorService(st, append(base, opts...)...), store: st}
}

func (h harness) order(t *testing.T, id string) domain.Order {
	t.Helper()
	order, ok := h.svc.Order(id)
	require.True(t, ok, "order %s should exist", id)
	return order
}

func (h harness) table(t *testing.T, id string) domain.Table {
	t.Helper()
	table, ok := h.store.Snapshot().Table(id)
	require.True(t, ok)
	return table
}

func (h harness) stock(t *testing.T, id string) float64 {
	t.Helper()
	item, ok := h.store.Snapshot().InventoryItem(id)
	require.True(t, ok)
	return item.Quantity
}

// assertOccupancy checks that every table linked to an order is occupied by an
// open order, and every open table-bound order is linked back.
func assertOccupancy(t *testing.T, state domain.State) {
	t.Helper()
	for _, table := range state.Tables {
		if table.ActiveOrderID == "" {
			continue
		}
		assert.Equal(t, domain.TableOccupied, table.Status, "table %s", table.ID)
		order, ok := state.Order(table.ActiveOrderID)
		if assert.True(t, ok, "table %s points at a missing order", table.ID) {
			assert.NotEqual(t, domain.OrderSettled, order.Status, "table %s holds a settled order", table.ID)
		}
	}
	for _, order := range state.Orders {
		if order.TableID == "" {
			continue
		}
		table, ok := state.Table(order.TableID)
		if !ok {
			continue
		}
		if order.Status == domain.OrderSettled {
			assert.NotEqual(t, order.ID, table.ActiveOrderID)
		}
	}
}

func createAB(t *testing.T, h harness) string {
	t.Helper()
	id, err := h.svc.CreateOrder(domain.CreateOrderInput{
		WaiterID: "w1",
		TableID:  "T1",
		Items: []domain.ItemRequest{
			{MenuItemID: "A", Quantity: 2},
			{MenuItemID: "B", Quantity: 1},
		},
	})
	require.NoError(t, err)
	return id
}

func TestFloorService_CreateAndFireScenario(t *testing.T) {
	h := newHarness(t)
	orderID := createAB(t, h)

	table := h.table(t, "T1")
	assert.Equal(t, domain.TableOccupied, table.Status)
	assert.Equal(t, orderID, table.ActiveOrderID)

	order := h.order(t, orderID)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)
	assert.Empty(t, order.Payments)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 3.00, order.Items[0].Price)

	ticket, ok := h.svc.FireOrderToKitchen(orderID, domain.StationKitchen, nil)
	require.True(t, ok)
	assert.Equal(t, domain.KotNew, ticket.Status)
	assert.Equal(t, domain.StationKitchen, ticket.Station)

	order = h.order(t, orderID)
	assert.Equal(t, domain.OrderInProgress, order.Status)
	require.NotNil(t, order.FiredToKitchenAt)

	state := h.store.Snapshot()
	assert.Len(t, state.TicketsForOrder(orderID), 1)
	assert.Equal(t, 8.0, h.stock(t, "X"))
	assert.Equal(t, 5.0, h.stock(t, "Y"))
	assertOccupancy(t, state)
}

func TestFloorService_PaymentSettlesAndFreesTable(t *testing.T) {
	h := newHarness(t)
	orderID := createAB(t, h)
	h.svc.FireOrderToKitchen(orderID, domain.StationKitchen, nil)

	require.NoError(t, h.svc.RecordPayment(orderID, domain.Payment{Amount: 9.00, Method: "card"}))

	order := h.order(t, orderID)
	assert.Equal(t, domain.OrderSettled, order.Status)
	require.Len(t, order.Payments, 1)
	assert.False(t, order.Payments[0].Timestamp.IsZero())

	table := h.table(t, "T1")
	assert.Equal(t, domain.TableDirty, table.Status)
	assert.Empty(t, table.ActiveOrderID)
	assertOccupancy(t, h.store.Snapshot())
}

func TestFloorService_RecordPayment(t *testing.T) {
	tests := []struct {
		name        string
		payments    []float64
		wantStatus  domain.OrderStatus
		wantTable   domain.TableStatus
		wantBalance string
	}{
		{name: "partial payment keeps order open", payments: []float64{4.00}, wantStatus: domain.OrderInProgress, wantTable: domain.TableOccupied, wantBalance: "5"},
		{name: "split payments settle on the last one", payments: []float64{4.50, 4.50}, wantStatus: domain.OrderSettled, wantTable: domain.TableDirty, wantBalance: "0"},
		{name: "cent-level split payments add up exactly", payments: []float64{0.10, 0.20, 8.70}, wantStatus: domain.OrderSettled, wantTable: domain.TableDirty, wantBalance: "0"},
		{name: "overpayment settles", payments: []float64{20}, wantStatus: domain.OrderSettled, wantTable: domain.TableDirty, wantBalance: "0"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			h := newHarness(t)
			orderID := createAB(t, h)
			h.svc.FireOrderToKitchen(orderID, domain.StationKitchen, nil)

			for _, amount := range testCase.payments {
				require.NoError(t, h.svc.RecordPayment(orderID, domain.Payment{Amount: amount, Method: "cash"}))
			}

			order := h.order(t, orderID)
			assert.Equal(t, testCase.wantStatus, order.Status)
			assert.Len(t, order.Payments, len(testCase.payments))
			assert.Equal(t, testCase.wantTable, h.table(t, "T1").Status)
			assert.Equal(t, testCase.wantBalance, service.Balance(order).String())
		})
	}
}

func TestFloorService_RecordPaymentOnSettledOrder(t *testing.T) {
	h := newHarness(t)
	orderID := createAB(t, h)
	require.NoError(t, h.svc.RecordPayment(orderID, domain.Payment{Amount: 9, Method: "cash"}))

	// The table is reseated directly before a late tip arrives.
	h.svc.UpdateTableStatus(domain.TableStatusUpdate{ID: "T1", Status: domain.TableAvailable})

	require.NoError(t, h.svc.RecordPayment(orderID, domain.Payment{Amount: 1, Method: "cash"}))
	order := h.order(t, orderID)
	assert.Equal(t, domain.OrderSettled, order.Status)
	assert.Len(t, order.Payments, 2)
	assert.Equal(t, domain.TableAvailable, h.table(t, "T1").Status)
}

func TestFloorService_RecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	h := newHarness(t)
	orderID := createAB(t, h)

	err := h.svc.RecordPayment(orderID, domain.Payment{Amount: 0})
	assert.ErrorIs(t, err, service.ErrInvalidPayment)
	assert.Empty(t, h.order(t, orderID).Payments)
}

func TestFloorService_ReadyCompletesTicketsAcrossStations(t *testing.T) {
	h := newHarness(t)
	orderID := createAB(t, h)
	h.svc.FireOrderToKitchen(orderID, domain.StationKitchen, nil)

	added, err := h.svc.AddItemsToOrder(orderID, []domain.ItemRequest{{MenuItemID: "L", Quantity: 1}})
	require.NoError(t, err)
	h.svc.FireOrderToKitchen(orderID, domain.StationBar, added)

	require.NoError(t, h.svc.UpdateOrderStatus(orderID, domain.OrderReady))

	tickets := h.store.Snapshot().TicketsForOrder(orderID)
	require.Len(t, tickets, 2)
	for _, ticket := range tickets {
		assert.Equal(t, domain.KotCompleted, ticket.Status, "ticket at %s", ticket.Station)
	}

	order := h.order(t, orderID)
	require.NotNil(t, order.ReadyAt)
	assert.Equal(t, domain.TableOccupied, h.table(t, "T1").Status, "ready alone keeps the table")

	require.NoError(t, h.svc.UpdateOrderStatus(orderID, domain.OrderServed))
	require.NotNil(t, h.order(t, orderID).ServedAt)

	require.NoError(t, h.svc.UpdateOrderStatus(orderID, domain.OrderSettled))
	table := h.table(t, "T1")
	assert.Equal(t, domain.TableDirty, table.Status)
	assert.Empty(t, table.ActiveOrderID)
}

func TestFloorService_ReadyLeavesOtherOrdersTickets(t *testing.T) {
	h := newHarness(t)
	first := createAB(t, h)
	second, err := h.svc.CreateOrder(domain.CreateOrderInput{WaiterID: "w1", Items: []domain.ItemRequest{{MenuItemID: "B", Quantity: 1}}})
	require.NoError(t, err)
	h.svc.FireOrderToKitchen(first, domain.StationKitchen, nil)
	h.svc.FireOrderToKitchen(second, domain.StationKitchen, nil)

	require.NoError(t, h.svc.UpdateOrderStatus(first, domain.OrderReady))

	other := h.store.Snapshot().TicketsForOrder(second)
	require.Len(t, other, 1)
	assert.Equal(t, domain.KotNew, other[0].Status)
}

func TestFloorService_UpdateOrderStatusRejectsIllegalTransitions(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(h harness, orderID string)
		target domain.OrderStatus
	}{
		{name: "pending cannot jump to ready", setup: func(harness, string) {}, target: domain.OrderReady},
		{name: "unknown status", setup: func(harness, string) {}, target: domain.OrderStatus("cancelled")},
		{
			name: "ready cannot regress",
			setup: func(h harness, orderID string) {
				h.svc.FireOrderToKitchen(orderID, domain.StationKitchen, nil)
				_ = h.svc.UpdateOrderStatus(orderID, domain.OrderReady)
			},
			target: domain.OrderInProgress,
		},
		{
			name: "settled is terminal",
			setup: func(h harness, orderID string) {
				_ = h.svc.UpdateOrderStatus(orderID, domain.OrderSettled)
			},
			target: domain.OrderServed,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			h := newHarness(t)
			orderID := createAB(t, h)
			testCase.setup(h, orderID)
			before := h.store.Snapshot()

			err := h.svc.UpdateOrderStatus(orderID, testCase.target)

			assert.ErrorIs(t, err, service.ErrIllegalTransition)
			var transitionErr *service.TransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, testCase.target, transitionErr.To)
			assert.Equal(t, before, h.store.Snapshot(), "nothing may be committed")
		})
	}
}

func TestFloorService_CreateOrderFailsAtomically(t *testing.T) {
	tests := []struct {
		name    string
		items   []domain.ItemRequest
		wantErr error
	}{
		{name: "unknown menu item", items: []domain.ItemRequest{{MenuItemID: "A", Quantity: 1}, {MenuItemID: "ghost", Quantity: 1}}, wantErr: service.ErrUnknownMenuItem},
		{name: "zero quantity", items: []domain.ItemRequest{{MenuItemID: "A", Quantity: 0}}, wantErr: service.ErrInvalidQuantity},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			h := newHarness(t)
			before := h.store.Snapshot()

			id, err := h.svc.CreateOrder(domain.CreateOrderInput{WaiterID: "w1", TableID: "T1", Items: testCase.items})

			assert.ErrorIs(t, err, testCase.wantErr)
			assert.Empty(t, id)
			assert.Equal(t, before, h.store.Snapshot())
		})
	}
}

func TestFloorService_CreateOrderWithUnknownTable(t *testing.T) {
	h := newHarness(t)
	id, err := h.svc.CreateOrder(domain.CreateOrderInput{WaiterID: "w1", TableID: "T9", Items: []domain.ItemRequest{{MenuItemID: "B", Quantity: 1}}})
	require.NoError(t, err)

	assert.Equal(t, "T9", h.order(t, id).TableID)
	for _, table := range h.store.Snapshot().Tables {
		assert.Equal(t, domain.TableAvailable, table.Status)
	}
}

func TestFloorService_PriceSnapshotImmutability(t *testing.T) {
	h := newHarness(t)
	orderID := createAB(t, h)

	newPrice := 3.75
	h.svc.UpdateMenuItem(domain.MenuItemUpdate{ID: "A", Price: &newPrice})

	added, err := h.svc.AddItemsToOrder(orderID, []domain.ItemRequest{{MenuItemID: "A", Quantity: 1, Note: "no crust"}})
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, 3.75, added[0].Price)
	assert.Equal(t, "no crust", added[0].Note)

	order := h.order(t, orderID)
	require.Len(t, order.Items, 3)
	assert.Equal(t, 3.00, order.Items[0].Price)
	assert.Equal(t, 3.75, order.Items[2].Price)

	newPrice = 1.00
	h.svc.UpdateMenuItem(domain.MenuItemUpdate{ID: "A", Price: &newPrice})
	order = h.order(t, orderID)
	assert.Equal(t, 3.00, order.Items[0].Price)
	assert.Equal(t, 3.75, order.Items[2].Price)
}

func TestFloorService_AddItemsToOrder(t *testing.T) {
	h := newHarness(t)
	orderID := createAB(t, h)
	before := h.order(t, orderID)

	added, err := h.svc.AddItemsToOrder("missing", []domain.ItemRequest{{MenuItemID: "A", Quantity: 1}})
	assert.NoError(t, err)
	assert.Empty(t, added)

	_, err = h.svc.AddItemsToOrder(orderID, []domain.ItemRequest{{MenuItemID: "ghost", Quantity: 1}})
	assert.ErrorIs(t, err, service.ErrUnknownMenuItem)
	assert.Equal(t, before, h.order(t, orderID))

	added, err = h.svc.AddItemsToOrder(orderID, []domain.ItemRequest{{MenuItemID: "C", Quantity: 2}})
	require.NoError(t, err)
	after := h.order(t, orderID)
	assert.Equal(t, before.Items, after.Items[:2], "existing items are untouched")
	assert.Equal(t, added[0], after.Items[2])
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestFloorService_FireDebitsFirstFireOnlyOnce(t *testing.T) {
	h := newHarness(t)
	orderID := createAB(t, h)

	first, ok := h.svc.FireOrderToKitchen(orderID, domain.StationKitchen, nil)
	require.True(t, ok)
	firedAt := h.order(t, orderID).FiredToKitchenAt

	second, ok := h.svc.FireOrderToKitchen(orderID, domain.StationKitchen, nil)
	require.True(t, ok)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Empty(t, second.ItemIDs)
	assert.Equal(t, 8.0, h.stock(t, "X"), "refire without items must not debit again")
	assert.Equal(t, firedAt, h.order(t, orderID).FiredToKitchenAt, "first fire wins")
	assert.Len(t, h.store.Snapshot().TicketsForOrder(orderID), 2)
}

func TestFloorService_FireWithExplicitItemsDebitsExactlyThose(t *testing.T) {
	h := newHarness(t)
	orderID := createAB(t, h)
	h.svc.FireOrderToKitchen(orderID, domain.StationKitchen, nil)

	added, err := h.svc.AddItemsToOrder(orderID, []domain.ItemRequest{{MenuItemID: "C", Quantity: 2}})
	require.NoError(t, err)

	ticket, ok := h.svc.FireOrderToKitchen(orderID, domain.StationPastry, added)
	require.True(t, ok)
	assert.Equal(t, []string{added[0].ID}, ticket.ItemIDs)
	assert.Equal(t, 7.0, h.stock(t, "X"))
	assert.Equal(t, 1.0, h.stock(t, "Y"))
}

func TestFloorService_FireCombinesSharedIngredients(t *testing.T) {
	h := newHarness(t)
	orderID, err := h.svc.CreateOrder(domain.CreateOrderInput{WaiterID: "w1", Items: []domain.ItemRequest{
		{MenuItemID: "A", Quantity: 3},
		{MenuItemID: "C", Quantity: 2},
		{MenuItemID: "L", Quantity: 1},
	}})
	require.NoError(t, err)

	var inventoryWrites []domain.State
	h.store.Subscribe(func(state domain.State) { inventoryWrites = append(inventoryWrites, state) })

	_, ok := h.svc.FireOrderToKitchen(orderID, domain.StationKitchen, nil)
	require.True(t, ok)

	assert.Equal(t, 6.0, h.stock(t, "X"))
	assert.Equal(t, 1.0, h.stock(t, "Y"))
	assert.Len(t, inventoryWrites, 1, "a fire is one committed batch")
}

func TestFloorService_InventoryNeverNegative(t *testing.T) {
	h := newHarness(t)
	for i := 0; i < 4; i++ {
		orderID, err := h.svc.CreateOrder(domain.CreateOrderInput{WaiterID: "w1", Items: []domain.ItemRequest{
			{MenuItemID: "A", Quantity: 3},
			{MenuItemID: "C", Quantity: 1},
		}})
		require.NoError(t, err)
		h.svc.FireOrderToKitchen(orderID, domain.StationKitchen, nil)

		for _, item := range h.store.Snapshot().Inventory {
			assert.GreaterOrEqual(t, item.Quantity, 0.0, "%s after fire %d", item.ID, i)
		}
	}
	assert.Equal(t, 0.0, h.stock(t, "X"))
	assert.Equal(t, 0.0, h.stock(t, "Y"))
}

func TestFloorService_FireRoutesEmptyStationByCategory(t *testing.T) {
	h := newHarness(t)
	orderID, err := h.svc.CreateOrder(domain.CreateOrderInput{WaiterID: "w1", Items: []domain.ItemRequest{
		{MenuItemID: "L", Quantity: 2},
		{MenuItemID: "A", Quantity: 1},
	}})
	require.NoError(t, err)

	ticket, ok := h.svc.FireOrderToKitchen(orderID, "", nil)
	require.True(t, ok)
	assert.Equal(t, domain.StationBar, ticket.Station)
}

func TestFloorService_FireToUnknownStationDoesNothing(t *testing.T) {
	h := newHarness(t)
	orderID := createAB(t, h)
	before := h.store.Snapshot()

	_, ok := h.svc.FireOrderToKitchen(orderID, "grill", nil)

	assert.False(t, ok)
	assert.Equal(t, before, h.store.Snapshot())
	assert.Equal(t, domain.OrderPending, h.order(t, orderID).Status)
}

func TestFloorService_SettleKeepsTableTakenByAnotherOrder(t *testing.T) {
	h := newHarness(t)
	first := createAB(t, h)
	second := createAB(t, h)
	require.Equal(t, second, h.table(t, "T1").ActiveOrderID)

	require.NoError(t, h.svc.RecordPayment(first, domain.Payment{Amount: 9.00, Method: "cash"}))

	assert.Equal(t, domain.OrderSettled, h.order(t, first).Status)
	table := h.table(t, "T1")
	assert.Equal(t, domain.TableOccupied, table.Status)
	assert.Equal(t, second, table.ActiveOrderID)
	assertOccupancy(t, h.store.Snapshot())

	require.NoError(t, h.svc.UpdateOrderStatus(second, domain.OrderSettled))
	table = h.table(t, "T1")
	assert.Equal(t, domain.TableDirty, table.Status)
	assert.Empty(t, table.ActiveOrderID)
}

func TestFloorService_SilentMisses(t *testing.T) {
	h := newHarness(t)
	orderID := createAB(t, h)
	before := h.store.Snapshot()

	ticket, ok := h.svc.FireOrderToKitchen("missing", domain.StationKitchen, nil)
	assert.False(t, ok)
	assert.Empty(t, ticket.ID)
	assert.NoError(t, h.svc.UpdateOrderStatus("missing", domain.OrderReady))
	assert.NoError(t, h.svc.RecordPayment("missing", domain.Payment{Amount: 5}))
	assert.NoError(t, h.svc.UpdateTicketStatus("missing", domain.KotCompleted))

	qty := 1.0
	h.svc.AdjustInventory(domain.InventoryUpdate{ID: "missing", Quantity: &qty})
	h.svc.UpdateMenuItem(domain.MenuItemUpdate{ID: "missing", Price: &qty})
	h.svc.UpdateTableStatus(domain.TableStatusUpdate{ID: "missing", Status: domain.TableDirty})

	assert.Equal(t, before, h.store.Snapshot())
	_, ok = h.svc.Order(orderID)
	assert.True(t, ok)
}

func TestFloorService_AdjustInventory(t *testing.T) {
	h := newHarness(t)

	par := 6.0
	h.svc.AdjustInventory(domain.InventoryUpdate{ID: "X", ParLevel: &par})
	item, _ := h.store.Snapshot().InventoryItem("X")
	assert.Equal(t, 10.0, item.Quantity)
	assert.Equal(t, 6.0, item.ParLevel)

	negative := -4.0
	h.svc.AdjustInventory(domain.InventoryUpdate{ID: "X", Quantity: &negative})
	item, _ = h.store.Snapshot().InventoryItem("X")
	assert.Equal(t, 0.0, item.Quantity)
	assert.Equal(t, 6.0, item.ParLevel)
}

func TestFloorService_UpdateMenuItem(t *testing.T) {
	h := newHarness(t)
	unavailable := false
	h.svc.UpdateMenuItem(domain.MenuItemUpdate{ID: "B", IsAvailable: &unavailable, Tags: []string{"still"}})

	item, ok := h.store.Snapshot().MenuItem("B")
	require.True(t, ok)
	assert.False(t, item.IsAvailable)
	assert.Equal(t, []string{"still"}, item.Tags)
	assert.Equal(t, 3.00, item.Price)
}

func TestFloorService_UpdateTableStatus(t *testing.T) {
	h := newHarness(t)
	orderID := createAB(t, h)

	h.svc.UpdateTableStatus(domain.TableStatusUpdate{ID: "T1", Status: domain.TableReserved})
	table := h.table(t, "T1")
	assert.Equal(t, domain.TableReserved, table.Status)
	assert.Equal(t, orderID, table.ActiveOrderID, "omitted link is preserved")

	empty := ""
	h.svc.UpdateTableStatus(domain.TableStatusUpdate{ID: "T1", Status: domain.TableAvailable, ActiveOrderID: &empty})
	table = h.table(t, "T1")
	assert.Equal(t, domain.TableAvailable, table.Status)
	assert.Empty(t, table.ActiveOrderID)

	h.svc.UpdateTableStatus(domain.TableStatusUpdate{ID: "T2", Status: domain.TableOccupied, ActiveOrderID: &orderID})
	assert.Equal(t, orderID, h.table(t, "T2").ActiveOrderID)
}

func TestFloorService_UpdateTicketStatus(t *testing.T) {
	h := newHarness(t)
	orderID := createAB(t, h)
	kitchen, _ := h.svc.FireOrderToKitchen(orderID, domain.StationKitchen, nil)
	added, err := h.svc.AddItemsToOrder(orderID, []domain.ItemRequest{{MenuItemID: "L", Quantity: 1}})
	require.NoError(t, err)
	bar, _ := h.svc.FireOrderToKitchen(orderID, domain.StationBar, added)

	require.NoError(t, h.svc.UpdateTicketStatus(kitchen.ID, domain.KotInProgress))
	state := h.store.Snapshot()
	got, _ := state.Ticket(kitchen.ID)
	assert.Equal(t, domain.KotInProgress, got.Status)
	assert.Equal(t, domain.OrderInProgress, h.order(t, orderID).Status)

	require.NoError(t, h.svc.UpdateTicketStatus(kitchen.ID, domain.KotCompleted))
	state = h.store.Snapshot()
	assert.Equal(t, domain.OrderReady, h.order(t, orderID).Status)
	got, _ = state.Ticket(bar.ID)
	assert.Equal(t, domain.KotCompleted, got.Status, "ready completes the bar ticket too")

	// Reopening a ticket on a ready order does not drag the order back.
	require.NoError(t, h.svc.UpdateTicketStatus(bar.ID, domain.KotInProgress))
	got, _ = h.store.Snapshot().Ticket(bar.ID)
	assert.Equal(t, domain.KotInProgress, got.Status)
	assert.Equal(t, domain.OrderReady, h.order(t, orderID).Status)

	err = h.svc.UpdateTicketStatus(bar.ID, domain.KotStatus("burnt"))
	assert.ErrorIs(t, err, service.ErrInvalidTicketStatus)
}

func TestFloorService_OccupancyInvariantAcrossFlow(t *testing.T) {
	h := newHarness(t)
	first := createAB(t, h)
	assertOccupancy(t, h.store.Snapshot())

	second, err := h.svc.CreateOrder(domain.CreateOrderInput{WaiterID: "w2", TableID: "T2", Items: []domain.ItemRequest{{MenuItemID: "C", Quantity: 1}}})
	require.NoError(t, err)
	assertOccupancy(t, h.store.Snapshot())

	steps := []func(){
		func() { h.svc.FireOrderToKitchen(first, domain.StationKitchen, nil) },
		func() { h.svc.FireOrderToKitchen(second, domain.StationPastry, nil) },
		func() { _ = h.svc.UpdateOrderStatus(first, domain.OrderReady) },
		func() { _ = h.svc.RecordPayment(second, domain.Payment{Amount: 4, Method: "cash"}) },
		func() { _ = h.svc.UpdateOrderStatus(first, domain.OrderServed) },
		func() { _ = h.svc.RecordPayment(first, domain.Payment{Amount: 9, Method: "card"}) },
	}
	for _, step := range steps {
		step()
		assertOccupancy(t, h.store.Snapshot())
	}

	assert.Equal(t, domain.TableDirty, h.table(t, "T1").Status)
	assert.Equal(t, domain.TableDirty, h.table(t, "T2").Status)
}

func TestFloorService_PublishesEvents(t *testing.T) {
	publisher := mocks.NewEventPublisher(t)
	h := newHarness(t, service.WithPublisher(publisher))
	orderID := createAB(t, h)

	publisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(e domain.FloorEvent) bool {
		return e.Type == domain.EventTicketFired && e.OrderID == orderID && e.Station == domain.StationBar && e.TableID == "T1"
	})).Return(nil).Once()
	publisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(e domain.FloorEvent) bool {
		return e.Type == domain.EventOrderSettled && e.OrderID == orderID && e.Amount == 9.0
	})).Return(assert.AnError).Once()

	_, ok := h.svc.FireOrderToKitchen(orderID, domain.StationBar, nil)
	require.True(t, ok)

	err := h.svc.RecordPayment(orderID, domain.Payment{Amount: 9, Method: "card"})
	assert.NoError(t, err, "publish failures never fail the operation")
	assert.Equal(t, domain.OrderSettled, h.order(t, orderID).Status)
}
