package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cafe-floor/config"
	httpapi "cafe-floor/kitchen-svc/internal/api/http"
	"cafe-floor/kitchen-svc/internal/service"
	"cafe-floor/kitchen-svc/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", "kitchen-svc")
	slog.SetDefault(logger)

	cfg, err := config.Load("kitchen-svc")
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	store := storage.NewStore(rdb, cfg.Kitchen.DedupeTTL)

	if cfg.Kafka.Broker != "" {
		reader := config.NewKafkaReader(cfg.Kafka)
		defer reader.Close()
		go service.NewConsumer(reader, store, logger).Start(ctx)
	} else {
		logger.Warn("kafka.broker is not set, station queues will not be fed")
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httpapi.NewRouter(httpapi.NewHandler(store, logger)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Kitchen Service starting", "addr", cfg.HTTP.Addr, "topic", cfg.Kafka.Topic)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "error", err)
	}
}
