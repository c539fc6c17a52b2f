package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cafe-floor/kitchen-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const ticketsKey = "kitchen:tickets"

// Store keeps one sorted set per station, scored by fire time, plus the ticket
// bodies in a hash and an index of ticket ids per order.
type Store struct {
	rdb       *redis.Client
	markerTTL time.Duration
}

func NewStore(rdb *redis.Client, markerTTL time.Duration) *Store {
	return &Store{rdb: rdb, markerTTL: markerTTL}
}

func QueueKey(station domain.Station) string {
	return "kitchen:queue:" + string(station)
}

func orderKey(orderID string) string {
	return "kitchen:order:" + orderID
}

func MarkerKey(event domain.FloorEvent) string {
	return fmt.Sprintf("kitchen:seen:%s:%s:%s:%s:%d",
		event.Type, event.OrderID, event.TicketID, event.Status, event.Timestamp.UnixNano())
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	res, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (s *Store) SetMarker(ctx context.Context, key string) error {
	return s.rdb.Set(ctx, key, "1", s.markerTTL).Err()
}

func (s *Store) AddTicket(ctx context.Context, ticket domain.QueuedTicket) error {
	body, err := json.Marshal(ticket)
	if err != nil {
		return fmt.Errorf("marshal ticket %s: %w", ticket.TicketID, err)
	}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, QueueKey(ticket.Station), redis.Z{
			Score:  float64(ticket.FiredAt.UnixMilli()),
			Member: ticket.TicketID,
		})
		pipe.HSet(ctx, ticketsKey, ticket.TicketID, body)
		pipe.SAdd(ctx, orderKey(ticket.OrderID), ticket.TicketID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("queue ticket %s: %w", ticket.TicketID, err)
	}
	return nil
}

func (s *Store) ticket(ctx context.Context, ticketID string) (domain.QueuedTicket, bool, error) {
	body, err := s.rdb.HGet(ctx, ticketsKey, ticketID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.QueuedTicket{}, false, nil
	}
	if err != nil {
		return domain.QueuedTicket{}, false, err
	}
	var ticket domain.QueuedTicket
	if err := json.Unmarshal(body, &ticket); err != nil {
		return domain.QueuedTicket{}, false, fmt.Errorf("decode ticket %s: %w", ticketID, err)
	}
	return ticket, true, nil
}

// SetTicketStatus updates a queued ticket. Unknown tickets are ignored.
func (s *Store) SetTicketStatus(ctx context.Context, ticketID, status string) error {
	ticket, ok, err := s.ticket(ctx, ticketID)
	if err != nil || !ok {
		return err
	}
	ticket.Status = status
	body, err := json.Marshal(ticket)
	if err != nil {
		return err
	}
	return s.rdb.HSet(ctx, ticketsKey, ticketID, body).Err()
}

func (s *Store) RemoveTicket(ctx context.Context, ticketID string) error {
	ticket, ok, err := s.ticket(ctx, ticketID)
	if err != nil || !ok {
		return err
	}
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, QueueKey(ticket.Station), ticketID)
		pipe.HDel(ctx, ticketsKey, ticketID)
		pipe.SRem(ctx, orderKey(ticket.OrderID), ticketID)
		return nil
	})
	return err
}

func (s *Store) RemoveOrder(ctx context.Context, orderID string) error {
	ids, err := s.rdb.SMembers(ctx, orderKey(orderID)).Result()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := s.RemoveTicket(ctx, id); err != nil {
			return fmt.Errorf("remove ticket %s of order %s: %w", id, orderID, err)
		}
	}
	return s.rdb.Del(ctx, orderKey(orderID)).Err()
}

// Queue returns the station's open tickets, oldest first.
func (s *Store) Queue(ctx context.Context, station domain.Station) ([]domain.QueuedTicket, error) {
	ids, err := s.rdb.ZRange(ctx, QueueKey(station), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	queue := make([]domain.QueuedTicket, 0, len(ids))
	if len(ids) == 0 {
		return queue, nil
	}

	bodies, err := s.rdb.HMGet(ctx, ticketsKey, ids...).Result()
	if err != nil {
		return nil, err
	}
	for i, body := range bodies {
		raw, ok := body.(string)
		if !ok {
			continue
		}
		var ticket domain.QueuedTicket
		if err := json.Unmarshal([]byte(raw), &ticket); err != nil {
			return nil, fmt.Errorf("decode ticket %s: %w", ids[i], err)
		}
		queue = append(queue, ticket)
	}
	return queue, nil
}
