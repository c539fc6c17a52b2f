package service

import (
	"context"

	"cafe-floor/kitchen-svc/internal/domain"
	"cafe-floor/kitchen-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
	AddTicket(ctx context.Context, ticket domain.QueuedTicket) error
	SetTicketStatus(ctx context.Context, ticketID, status string) error
	RemoveTicket(ctx context.Context, ticketID string) error
	RemoveOrder(ctx context.Context, orderID string) error
	Queue(ctx context.Context, station domain.Station) ([]domain.QueuedTicket, error)
}

// MessageReader fetches without committing, so an offset only moves once the
// message has been handled.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event domain.FloorEvent) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
