package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"cafe-floor/pos-svc/internal/domain"
	"cafe-floor/pos-svc/internal/store"

	"github.com/google/uuid"
)

const publishTimeout = 5 * time.Second

// FloorService is the orchestration layer. Each operation reads one snapshot,
// plans the primitive actions and commits them in a single store transaction,
// so no caller ever sees half of an operation. Lookups that miss are silent:
// ids come from earlier responses, and a miss means a stale view.
type FloorService struct {
	store     *store.Store
	publisher EventPublisher
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

type Option func(*FloorService)

func WithPublisher(p EventPublisher) Option {
	return func(s *FloorService) { s.publisher = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *FloorService) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *FloorService) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *FloorService) { s.newID = newID }
}

func NewFloorService(st *store.Store, opts ...Option) *FloorService {
	s := &FloorService{
		store:  st,
		logger: slog.Default(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FloorService) State() domain.State {
	return s.store.Snapshot()
}

func (s *FloorService) Order(orderID string) (domain.Order, bool) {
	return s.store.Snapshot().Order(orderID)
}

func (s *FloorService) CreateOrder(input domain.CreateOrderInput) (string, error) {
	var id string
	_, err := s.store.Transact(func(state domain.State) ([]store.Action, error) {
		items, err := s.priceItems(state, input.Items)
		if err != nil {
			return nil, err
		}

		now := s.now()
		id = s.newID()
		order := domain.Order{
			ID:           id,
			TableID:      input.TableID,
			WaiterID:     input.WaiterID,
			Status:       domain.OrderPending,
			Notes:        input.Notes,
			CustomerName: input.CustomerName,
			CreatedAt:    now,
			UpdatedAt:    now,
			Items:        items,
			Payments:     []domain.Payment{},
		}
		actions := []store.Action{store.CreateOrder{Order: order}}

		if input.TableID != "" {
			if table, ok := state.Table(input.TableID); ok {
				table.Status = domain.TableOccupied
				table.ActiveOrderID = id
				actions = append(actions, store.UpdateTable{Table: table})
			}
		}
		return actions, nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("order created", "order_id", id, "table_id", input.TableID, "items", len(input.Items))
	return id, nil
}

func (s *FloorService) AddItemsToOrder(orderID string, items []domain.ItemRequest) ([]domain.OrderItem, error) {
	var added []domain.OrderItem
	_, err := s.store.Transact(func(state domain.State) ([]store.Action, error) {
		order, ok := state.Order(orderID)
		if !ok {
			return nil, nil
		}
		priced, err := s.priceItems(state, items)
		if err != nil {
			return nil, err
		}

		order.Items = append(slices.Clone(order.Items), priced...)
		order.UpdatedAt = s.now()
		added = priced
		return []store.Action{store.UpsertOrder{Order: order}}, nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// FireOrderToKitchen sends the order to station and debits inventory.
//
// Explicit items are debited as given. Without them, the first fire debits
// every item on the order and later fires debit nothing, so a refire never
// charges stock twice. An empty station is routed by the items' categories;
// an unknown one fires nothing.
func (s *FloorService) FireOrderToKitchen(orderID string, station domain.Station, items []domain.OrderItem) (domain.KotEvent, bool) {
	if station != "" && !station.Valid() {
		s.logger.Warn("fire to unknown station", "order_id", orderID, "station", station)
		return domain.KotEvent{}, false
	}

	var ticket domain.KotEvent
	var tableID string
	_, _ = s.store.Transact(func(state domain.State) ([]store.Action, error) {
		order, ok := state.Order(orderID)
		if !ok {
			return nil, nil
		}

		toDebit := items
		if toDebit == nil && order.FiredToKitchenAt == nil {
			toDebit = order.Items
		}

		if station == "" {
			routeBy := toDebit
			if len(routeBy) == 0 {
				routeBy = order.Items
			}
			station = routeStation(state, routeBy)
		}

		now := s.now()
		if order.Status == domain.OrderPending {
			order.Status = domain.OrderInProgress
		}
		if order.FiredToKitchenAt == nil {
			firedAt := now
			order.FiredToKitchenAt = &firedAt
		}
		order.UpdatedAt = now

		itemIDs := make([]string, 0, len(toDebit))
		for _, item := range toDebit {
			itemIDs = append(itemIDs, item.ID)
		}
		ticket = domain.KotEvent{
			ID:      s.newID(),
			OrderID: order.ID,
			FiredAt: now,
			Status:  domain.KotNew,
			Station: station,
			ItemIDs: itemIDs,
		}
		tableID = order.TableID

		actions := []store.Action{
			store.UpsertOrder{Order: order},
			store.UpsertKot{Ticket: ticket},
		}
		return append(actions, inventoryDebits(state, toDebit, s.logger)...), nil
	})
	if ticket.ID == "" {
		return domain.KotEvent{}, false
	}

	s.logger.Info("order fired", "order_id", orderID, "ticket_id", ticket.ID, "station", ticket.Station, "debited_items", len(ticket.ItemIDs))
	s.publish(domain.FloorEvent{
		Type:      domain.EventTicketFired,
		OrderID:   orderID,
		TicketID:  ticket.ID,
		Station:   ticket.Station,
		Status:    string(ticket.Status),
		TableID:   tableID,
		Timestamp: ticket.FiredAt,
	})
	return ticket, true
}

func (s *FloorService) UpdateOrderStatus(orderID string, status domain.OrderStatus) error {
	var events []domain.FloorEvent
	_, err := s.store.Transact(func(state domain.State) ([]store.Action, error) {
		order, ok := state.Order(orderID)
		if !ok {
			return nil, nil
		}
		actions, evts, err := s.transition(state, order, status, s.now())
		events = evts
		return actions, err
	})
	if err != nil {
		return err
	}
	s.publish(events...)
	return nil
}

// RecordPayment appends the payment and settles the order once it is paid in
// full. Settling goes through the same transition as UpdateOrderStatus, so the
// table is released here too.
func (s *FloorService) RecordPayment(orderID string, payment domain.Payment) error {
	if payment.Amount <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPayment, payment.Amount)
	}

	var events []domain.FloorEvent
	_, err := s.store.Transact(func(state domain.State) ([]store.Action, error) {
		order, ok := state.Order(orderID)
		if !ok {
			return nil, nil
		}

		now := s.now()
		if payment.Timestamp.IsZero() {
			payment.Timestamp = now
		}
		order.Payments = append(slices.Clone(order.Payments), payment)
		order.UpdatedAt = now

		if order.Status == domain.OrderSettled || !isPaidInFull(order) {
			return []store.Action{store.UpsertOrder{Order: order}}, nil
		}
		actions, evts, err := s.transition(state, order, domain.OrderSettled, now)
		events = evts
		return actions, err
	})
	if err != nil {
		return err
	}
	s.publish(events...)
	return nil
}

func (s *FloorService) AdjustInventory(update domain.InventoryUpdate) {
	if update.Quantity != nil && *update.Quantity < 0 {
		zero := 0.0
		update.Quantity = &zero
	}
	_, _ = s.store.Transact(func(state domain.State) ([]store.Action, error) {
		if _, ok := state.InventoryItem(update.ID); !ok {
			return nil, nil
		}
		return []store.Action{store.UpdateInventory{
			ID:       update.ID,
			Quantity: update.Quantity,
			ParLevel: update.ParLevel,
		}}, nil
	})
}

func (s *FloorService) UpdateMenuItem(update domain.MenuItemUpdate) {
	_, _ = s.store.Transact(func(state domain.State) ([]store.Action, error) {
		if _, ok := state.MenuItem(update.ID); !ok {
			return nil, nil
		}
		return []store.Action{store.UpdateMenuItem{
			ID:          update.ID,
			Price:       update.Price,
			IsAvailable: update.IsAvailable,
			Tags:        update.Tags,
		}}, nil
	})
}

// UpdateTableStatus overrides a table directly. It bypasses the order flow,
// so it can leave a table out of step with its order on purpose.
func (s *FloorService) UpdateTableStatus(update domain.TableStatusUpdate) {
	_, _ = s.store.Transact(func(state domain.State) ([]store.Action, error) {
		table, ok := state.Table(update.ID)
		if !ok {
			return nil, nil
		}
		table.Status = update.Status
		if update.ActiveOrderID != nil {
			table.ActiveOrderID = *update.ActiveOrderID
		}
		return []store.Action{store.UpdateTable{Table: table}}, nil
	})
}

// UpdateTicketStatus moves a kitchen ticket and pulls its order along: a
// completed ticket makes the order ready, a started ticket puts it in
// progress. The order change is skipped when the order has already moved past
// that point.
func (s *FloorService) UpdateTicketStatus(ticketID string, status domain.KotStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTicketStatus, status)
	}

	var events []domain.FloorEvent
	_, err := s.store.Transact(func(state domain.State) ([]store.Action, error) {
		ticket, ok := state.Ticket(ticketID)
		if !ok {
			return nil, nil
		}

		now := s.now()
		ticket.Status = status
		actions := []store.Action{store.UpsertKot{Ticket: ticket}}
		events = append(events, domain.FloorEvent{
			Type:      domain.EventTicketStatus,
			OrderID:   ticket.OrderID,
			TicketID:  ticket.ID,
			Station:   ticket.Station,
			Status:    string(status),
			Timestamp: now,
		})

		var target domain.OrderStatus
		switch status {
		case domain.KotCompleted:
			target = domain.OrderReady
		case domain.KotInProgress:
			target = domain.OrderInProgress
		default:
			return actions, nil
		}

		order, ok := state.Order(ticket.OrderID)
		if !ok {
			return actions, nil
		}
		if !domain.CanTransition(order.Status, target) {
			s.logger.Debug("ticket moved without order change",
				"ticket_id", ticket.ID, "order_id", order.ID,
				"order_status", order.Status, "wanted", target)
			return actions, nil
		}

		staged := store.Reduce(state, actions[0], now)
		more, evts, err := s.transition(staged, order, target, now)
		if err != nil {
			return nil, err
		}
		events = append(events, evts...)
		return append(actions, more...), nil
	})
	if err != nil {
		return err
	}
	s.publish(events...)
	return nil
}

// transition is the single place an order changes status. It stamps the
// lifecycle timestamps and applies the cross-entity effects: ready completes
// every ticket of the order, settled releases its table unless another order
// has taken the table since.
func (s *FloorService) transition(state domain.State, order domain.Order, status domain.OrderStatus, now time.Time) ([]store.Action, []domain.FloorEvent, error) {
	if !domain.CanTransition(order.Status, status) {
		return nil, nil, &TransitionError{OrderID: order.ID, From: order.Status, To: status}
	}

	order.Status = status
	order.UpdatedAt = now
	switch status {
	case domain.OrderReady:
		readyAt := now
		order.ReadyAt = &readyAt
	case domain.OrderServed:
		servedAt := now
		order.ServedAt = &servedAt
	}

	actions := []store.Action{store.UpsertOrder{Order: order}}
	var events []domain.FloorEvent

	switch status {
	case domain.OrderReady:
		for _, ticket := range state.TicketsForOrder(order.ID) {
			if ticket.Status == domain.KotCompleted {
				continue
			}
			ticket.Status = domain.KotCompleted
			actions = append(actions, store.UpsertKot{Ticket: ticket})
		}
		events = append(events, domain.FloorEvent{
			Type:      domain.EventOrderReady,
			OrderID:   order.ID,
			TableID:   order.TableID,
			Status:    string(status),
			Timestamp: now,
		})
	case domain.OrderSettled:
		if order.TableID != "" {
			table, ok := state.Table(order.TableID)
			if ok && (table.ActiveOrderID == "" || table.ActiveOrderID == order.ID) {
				table.Status = domain.TableDirty
				table.ActiveOrderID = ""
				actions = append(actions, store.UpdateTable{Table: table})
			}
		}
		events = append(events, domain.FloorEvent{
			Type:      domain.EventOrderSettled,
			OrderID:   order.ID,
			TableID:   order.TableID,
			Status:    string(status),
			Amount:    OrderTotal(order).InexactFloat64(),
			Timestamp: now,
		})
	}
	return actions, events, nil
}

// priceItems resolves each request against the menu and snapshots the
// current price onto a new order item.
func (s *FloorService) priceItems(state domain.State, requests []domain.ItemRequest) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(requests))
	for _, req := range requests {
		if req.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %s has quantity %d", ErrInvalidQuantity, req.MenuItemID, req.Quantity)
		}
		menuItem, ok := state.MenuItem(req.MenuItemID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMenuItem, req.MenuItemID)
		}
		items = append(items, domain.OrderItem{
			ID:         s.newID(),
			MenuItemID: req.MenuItemID,
			Quantity:   req.Quantity,
			Price:      menuItem.Price,
			Note:       req.Note,
		})
	}
	return items, nil
}

func (s *FloorService) publish(events ...domain.FloorEvent) {
	if s.publisher == nil || len(events) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	for _, event := range events {
		if err := s.publisher.PublishEvent(ctx, event); err != nil {
			s.logger.Error("publish floor event", "type", event.Type, "order_id", event.OrderID, "error", err)
		}
	}
}
