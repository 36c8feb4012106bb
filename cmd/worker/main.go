package main

import (
	"context"
	"dormy/config"
	"dormy/di"
	"dormy/shared/logger"
	"dormy/shared/metrics"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const readHeaderTimeout = 10 * time.Second

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.App.Metrics.Enable {
		go serveMetrics(ctx, net.JoinHostPort(cfg.Server.Host, cfg.Server.Port))
	}

	worker := di.InitializeWorker()

	log.Info().Msg("Notification worker started")

	worker.Run(ctx)

	log.Info().Msg("Notification worker stopped")
}

func serveMetrics(ctx context.Context, addr string) {
	metrics.Register()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: readHeaderTimeout}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), readHeaderTimeout)
		defer cancel()

		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
	}
}
