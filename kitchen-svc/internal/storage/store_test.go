package storage

import (
	"context"
	"testing"
	"time"

	"cafe-floor/kitchen-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStore(rdb, time.Hour), mr
}

func ticket(id, order string, station domain.Station, offset time.Duration) domain.QueuedTicket {
	return domain.QueuedTicket{
		TicketID: id,
		OrderID:  order,
		Station:  station,
		Status:   "new",
		FiredAt:  base.Add(offset),
	}
}

func ids(queue []domain.QueuedTicket) []string {
	out := make([]string, 0, len(queue))
	for _, q := range queue {
		out = append(out, q.TicketID)
	}
	return out
}

func TestStore_QueueOrdersByFireTime(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddTicket(ctx, ticket("k-2", "o-2", domain.StationBar, 2*time.Minute)))
	require.NoError(t, s.AddTicket(ctx, ticket("k-1", "o-1", domain.StationBar, time.Minute)))
	require.NoError(t, s.AddTicket(ctx, ticket("k-3", "o-1", domain.StationKitchen, 0)))

	bar, err := s.Queue(ctx, domain.StationBar)
	require.NoError(t, err)
	assert.Equal(t, []string{"k-1", "k-2"}, ids(bar))
	assert.Equal(t, base.Add(time.Minute), bar[0].FiredAt)

	pastry, err := s.Queue(ctx, domain.StationPastry)
	require.NoError(t, err)
	assert.NotNil(t, pastry)
	assert.Empty(t, pastry)
}

func TestStore_AddTicketTwiceKeepsOneEntry(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddTicket(ctx, ticket("k-1", "o-1", domain.StationBar, 0)))
	require.NoError(t, s.AddTicket(ctx, ticket("k-1", "o-1", domain.StationBar, 0)))

	bar, err := s.Queue(ctx, domain.StationBar)
	require.NoError(t, err)
	assert.Len(t, bar, 1)
}

func TestStore_SetTicketStatus(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.AddTicket(ctx, ticket("k-1", "o-1", domain.StationKitchen, 0)))

	require.NoError(t, s.SetTicketStatus(ctx, "k-1", "in-progress"))
	require.NoError(t, s.SetTicketStatus(ctx, "unknown", "in-progress"))

	queue, err := s.Queue(ctx, domain.StationKitchen)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, "in-progress", queue[0].Status)
}

func TestStore_RemoveTicketAndOrder(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddTicket(ctx, ticket("k-1", "o-1", domain.StationKitchen, 0)))
	require.NoError(t, s.AddTicket(ctx, ticket("k-2", "o-1", domain.StationBar, time.Second)))
	require.NoError(t, s.AddTicket(ctx, ticket("k-3", "o-2", domain.StationBar, 2*time.Second)))

	require.NoError(t, s.RemoveTicket(ctx, "k-3"))
	require.NoError(t, s.RemoveTicket(ctx, "k-3"))
	bar, err := s.Queue(ctx, domain.StationBar)
	require.NoError(t, err)
	assert.Equal(t, []string{"k-2"}, ids(bar))

	require.NoError(t, s.RemoveOrder(ctx, "o-1"))
	for _, station := range []domain.Station{domain.StationKitchen, domain.StationBar} {
		queue, err := s.Queue(ctx, station)
		require.NoError(t, err)
		assert.Empty(t, queue, "station %s", station)
	}
	assert.False(t, mr.Exists("kitchen:order:o-1"))
	assert.NoError(t, s.RemoveOrder(ctx, "never-seen"))
}

func TestStore_Markers(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()
	key := MarkerKey(domain.FloorEvent{Type: domain.EventTicketFired, OrderID: "o-1", TicketID: "k-1", Timestamp: base})

	seen, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, s.SetMarker(ctx, key))
	seen, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, seen)

	mr.FastForward(2 * time.Hour)
	seen, err = s.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, seen, "markers expire")
}
