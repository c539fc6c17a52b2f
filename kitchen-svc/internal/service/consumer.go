package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cafe-floor/kitchen-svc/internal/domain"
	"cafe-floor/kitchen-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

const (
	defaultMaxAttempts = 5
	defaultRetryDelay  = 200 * time.Millisecond
)

type Consumer struct {
	Reader      MessageReader
	Store       StoreInterface
	Logger      *slog.Logger
	MaxAttempts int
	RetryDelay  time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *slog.Logger) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{
		Reader:      reader,
		Store:       store,
		Logger:      logger,
		MaxAttempts: defaultMaxAttempts,
		RetryDelay:  defaultRetryDelay,
	}
}

// Start reads floor events until ctx is cancelled. A message is committed once
// it has been applied, found unreadable, or has failed MaxAttempts times. An
// event still being retried at shutdown stays uncommitted and comes back on
// the next start.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("starting kitchen feed consumer")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.Logger.Error("fetch message", "error", err)
			continue
		}

		if !c.handle(ctx, message) {
			return
		}
		if err := c.Reader.CommitMessages(ctx, message); err != nil {
			if ctx.Err() != nil {
				return
			}
			c.Logger.Error("commit message", "offset", message.Offset, "error", err)
		}
	}
}

// handle reports false only when ctx ended before the message was dealt with.
func (c *Consumer) handle(ctx context.Context, message kafka.Message) bool {
	var event domain.FloorEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		c.Logger.Error("unmarshal floor event", "offset", message.Offset, "error", err)
		return true
	}

	for attempt := 1; ; attempt++ {
		err := c.ProcessEvent(ctx, event)
		if err == nil {
			return true
		}
		if attempt >= c.MaxAttempts {
			c.Logger.Error("dropping floor event", "type", event.Type, "order_id", event.OrderID, "attempts", attempt, "error", err)
			return true
		}
		c.Logger.Warn("process floor event", "type", event.Type, "order_id", event.OrderID, "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(c.RetryDelay * time.Duration(attempt)):
		}
	}
}

// ProcessEvent applies one event to the station queues. A redelivered event is
// recognised by its marker and skipped; the marker is only set once the
// update succeeded.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.FloorEvent) error {
	marker := storage.MarkerKey(event)
	seen, err := c.Store.Exists(ctx, marker)
	if err != nil {
		return err
	}
	if seen {
		c.Logger.Debug("duplicate floor event", "type", event.Type, "order_id", event.OrderID)
		return nil
	}

	switch event.Type {
	case domain.EventTicketFired:
		if !event.Station.Valid() {
			c.Logger.Warn("ticket fired to unknown station", "ticket_id", event.TicketID, "station", event.Station)
			return nil
		}
		err = c.Store.AddTicket(ctx, domain.QueuedTicket{
			TicketID: event.TicketID,
			OrderID:  event.OrderID,
			Station:  event.Station,
			TableID:  event.TableID,
			Status:   event.Status,
			FiredAt:  event.Timestamp,
		})
	case domain.EventTicketStatus:
		if event.Status == domain.TicketCompleted {
			err = c.Store.RemoveTicket(ctx, event.TicketID)
		} else {
			err = c.Store.SetTicketStatus(ctx, event.TicketID, event.Status)
		}
	case domain.EventOrderReady, domain.EventOrderSettled:
		err = c.Store.RemoveOrder(ctx, event.OrderID)
	default:
		return nil
	}
	if err != nil {
		return err
	}

	return c.Store.SetMarker(ctx, marker)
}
