package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cafe-floor/pos-svc/internal/domain"
	"cafe-floor/pos-svc/internal/store"
)

const saveTimeout = 5 * time.Second

// Bridge moves the floor state between the store and a SnapshotStore.
// Saving is last-write-wins: Enqueue keeps only the newest pending state and
// Run writes it out on a single goroutine.
type Bridge struct {
	snapshots SnapshotStore
	seed      func() domain.State
	logger    *slog.Logger
	pending   chan domain.State
}

func NewBridge(snapshots SnapshotStore, seed func() domain.State, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bridge{
		snapshots: snapshots,
		seed:      seed,
		logger:    logger,
		pending:   make(chan domain.State, 1),
	}
}

// Load returns the persisted state, or the seed state when there is none, it
// cannot be read or it holds neither tables nor menu. It never fails.
func (b *Bridge) Load(ctx context.Context) domain.State {
	payload, err := b.snapshots.LoadSnapshot(ctx)
	if errors.Is(err, ErrSnapshotNotFound) {
		b.logger.Info("no saved floor state, starting from seed")
		return b.seed()
	}
	if err != nil {
		b.logger.Warn("load floor state failed, starting from seed", "error", err)
		return b.seed()
	}

	var state domain.State
	if err := json.Unmarshal(payload, &state); err != nil {
		b.logger.Warn("saved floor state is unreadable, starting from seed", "error", err)
		return b.seed()
	}
	if len(state.Tables) == 0 && len(state.Menu) == 0 {
		b.logger.Warn("saved floor state is empty, starting from seed")
		return b.seed()
	}
	return state
}

// Restore loads the saved state into st.
func (b *Bridge) Restore(ctx context.Context, st *store.Store) domain.State {
	return st.Dispatch(store.SyncFromStorage{State: b.Load(ctx)})
}

func (b *Bridge) Save(ctx context.Context, state domain.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal floor state: %w", err)
	}
	return b.snapshots.SaveSnapshot(ctx, payload)
}

// Enqueue is a store.Listener. It never blocks; a state that has not been
// written yet is replaced by the newer one.
func (b *Bridge) Enqueue(state domain.State) {
	for {
		select {
		case b.pending <- state:
			return
		default:
		}
		select {
		case <-b.pending:
		default:
		}
	}
}

// Run saves enqueued states until ctx is done, then flushes what is left.
func (b *Bridge) Run(ctx context.Context) {
	for {
		select {
		case state := <-b.pending:
			b.saveWithTimeout(state)
		case <-ctx.Done():
			select {
			case state := <-b.pending:
				b.saveWithTimeout(state)
			default:
			}
			return
		}
	}
}

func (b *Bridge) saveWithTimeout(state domain.State) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := b.Save(ctx, state); err != nil {
		b.logger.Error("save floor state", "error", err)
	}
}
