package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cafe-floor/config"
	httpapi "cafe-floor/pos-svc/internal/api/http"
	"cafe-floor/pos-svc/internal/domain"
	"cafe-floor/pos-svc/internal/seed"
	"cafe-floor/pos-svc/internal/service"
	"cafe-floor/pos-svc/internal/storage"
	"cafe-floor/pos-svc/internal/store"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

type app struct {
	store  *store.Store
	bridge *storage.Bridge
	floor  *service.FloorService
	router http.Handler
}

// newApp restores the floor from snapshots and wires the service and HTTP
// surface on top of it. Every committed change is handed to the bridge.
func newApp(ctx context.Context, cfg config.Config, snapshots storage.SnapshotStore, publisher service.EventPublisher, logger *slog.Logger) *app {
	bridge := storage.NewBridge(snapshots, seed.State, logger)
	st := store.New(domain.State{})
	bridge.Restore(ctx, st)
	st.Subscribe(bridge.Enqueue)

	opts := []service.Option{service.WithLogger(logger)}
	if publisher != nil {
		opts = append(opts, service.WithPublisher(publisher))
	}
	floor := service.NewFloorService(st, opts...)

	handler := httpapi.NewHandler(floor, service.DefaultQRGenerator{BaseURL: cfg.QR.BaseURL}, logger)
	return &app{
		store:  st,
		bridge: bridge,
		floor:  floor,
		router: httpapi.NewRouter(handler),
	}
}

func openSnapshotStore(ctx context.Context, cfg config.Config) (storage.SnapshotStore, func(), error) {
	switch cfg.Persistence.Backend {
	case "memory":
		return storage.NewMemorySnapshotStore(), func() {}, nil
	case "postgres":
		db := config.MustInitPostgres(cfg.Postgres)
		snapshots := storage.NewPostgresSnapshotStore(db, cfg.Persistence.Key)
		if err := snapshots.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return snapshots, func() { db.Close() }, nil
	case "redis", "":
		client := config.MustInitRedis(cfg.Redis)
		return storage.NewRedisSnapshotStore(client, cfg.Persistence.Key), func() { client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown persistence backend %q", cfg.Persistence.Backend)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", "pos-svc")
	slog.SetDefault(logger)

	cfg, err := config.Load("pos-svc")
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snapshots, closeSnapshots, err := openSnapshotStore(ctx, cfg)
	if err != nil {
		logger.Error("open snapshot store", "backend", cfg.Persistence.Backend, "error", err)
		os.Exit(1)
	}
	defer closeSnapshots()

	var publisher service.EventPublisher
	if cfg.Kafka.Broker != "" {
		writer := config.NewKafkaWriter(cfg.Kafka)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	a := newApp(ctx, cfg, snapshots, publisher, logger)

	saverCtx, stopSaver := context.WithCancel(context.Background())
	saverDone := make(chan struct{})
	go func() {
		a.bridge.Run(saverCtx)
		close(saverDone)
	}()

	server := httpapi.NewServer(cfg.HTTP.Addr, a.router)
	go func() {
		logger.Info("POS service starting", "addr", cfg.HTTP.Addr, "persistence", cfg.Persistence.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}

	stopSaver()
	<-saverDone
}
