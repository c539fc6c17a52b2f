package service

import (
	"context"

	"cafe-floor/pos-svc/internal/domain"
)

type FloorServiceInterface interface {
	CreateOrder(input domain.CreateOrderInput) (string, error)
	AddItemsToOrder(orderID string, items []domain.ItemRequest) ([]domain.OrderItem, error)
	FireOrderToKitchen(orderID string, station domain.Station, items []domain.OrderItem) (domain.KotEvent, bool)
	UpdateOrderStatus(orderID string, status domain.OrderStatus) error
	RecordPayment(orderID string, payment domain.Payment) error
	AdjustInventory(update domain.InventoryUpdate)
	UpdateMenuItem(update domain.MenuItemUpdate)
	UpdateTableStatus(update domain.TableStatusUpdate)
	UpdateTicketStatus(ticketID string, status domain.KotStatus) error
	State() domain.State
	Order(orderID string) (domain.Order, bool)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event domain.FloorEvent) error
}

var _ FloorServiceInterface = (*FloorService)(nil)
