package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	amqpadapter "ave-engine/internal/adapter/amqp"
	"ave-engine/internal/adapter/http"
	"ave-engine/internal/adapter/memory"
	"ave-engine/internal/adapter/postgres"
	redisadapter "ave-engine/internal/adapter/redis"
	"ave-engine/internal/adapter/usecase"
	"ave-engine/internal/config"
	"ave-engine/internal/core/port"
	"ave-engine/internal/db"
	"ave-engine/internal/metrics"
)

// main is the entry point of the AVE valuation service. It loads
// configuration, optionally runs database migrations and seeds reference
// rates, wires the repositories, caches and publisher, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from .env and environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, cfg.Valuation.Currency); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("reference rates seeded")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	var (
		rates   port.RateRepository = postgres.NewRateRepository(pool, cfg.Valuation.Currency)
		pending port.PendingStore
	)
	if cfg.Redis.Enabled() {
		client, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer client.Close()

		if cfg.Redis.SnapshotTTL > 0 {
			rates = redisadapter.NewSnapshotCache(rates, client, cfg.Redis.SnapshotTTL, logger, m)
		}
		pending = redisadapter.NewPendingStore(client, cfg.Redis.PendingTTL)
		logger.Info("redis enabled", slog.String("addr", cfg.Redis.Addr))
	} else {
		pending = memory.NewPendingStore(cfg.Redis.PendingTTL)
	}

	opts := []usecase.Option{
		usecase.WithMetrics(m),
		usecase.WithRecordTimeout(cfg.Valuation.RecordTimeout),
	}
	if cfg.AMQP.Enabled() {
		publisher, err := amqpadapter.NewPublisher(cfg.AMQP)
		if err != nil {
			logger.Error("amqp connection error", slog.Any("error", err))
			return
		}
		defer publisher.Close()
		opts = append(opts, usecase.WithPublisher(publisher))
		logger.Info("publishing calculation events", slog.String("exchange", cfg.AMQP.Exchange))
	}

	svc := usecase.NewValuationUseCase(rates, postgres.NewCalculationLogRepository(pool), pending, logger, opts...)

	handler := httpadapter.NewHandler(svc, logger,
		httpadapter.WithMetrics(m, reg),
		httpadapter.WithRateLimit(cfg.HTTP.RateLimit, cfg.HTTP.RateBurst),
	)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-srvErr:
		logger.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
