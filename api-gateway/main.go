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

	"cafe-floor/api-gateway/internal/gateway"
	"cafe-floor/config"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", "api-gateway")
	slog.SetDefault(logger)

	cfg, err := config.Load("api-gateway")
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	gw := gateway.NewGateway(gateway.Config{
		PosSvcURL:     cfg.Gateway.PosURL,
		KitchenSvcURL: cfg.Gateway.KitchenURL,
	}, &http.Client{Timeout: 15 * time.Second}, logger)

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           gw.SetupRoutes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("API Gateway starting", "addr", cfg.HTTP.Addr, "pos", cfg.Gateway.PosURL, "kitchen", cfg.Gateway.KitchenURL)
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
