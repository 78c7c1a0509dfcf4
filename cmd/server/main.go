package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payrouter/internal/audit"
	"payrouter/internal/idempotency"
	"payrouter/internal/jwttoken"
	"payrouter/internal/platform/config"
	"payrouter/internal/platform/httpserver"
	"payrouter/internal/platform/logger"
	platformmetrics "payrouter/internal/platform/metrics"
	platformredis "payrouter/internal/platform/redis"
	"payrouter/internal/registry"
	registryhandler "payrouter/internal/registry/handler"
	regmetrics "payrouter/internal/registry/metrics"
	"payrouter/internal/routing"
	routinghandler "payrouter/internal/routing/handler"
	routingmetrics "payrouter/internal/routing/metrics"
	transport "payrouter/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "payrouter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	reg, err := registry.Load(cfg.ProvidersPath,
		registry.WithLogger(log),
		registry.WithMetrics(regmetrics.New()),
	)
	if err != nil {
		return fmt.Errorf("load provider registry: %w", err)
	}

	var store idempotency.Store
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		store = idempotency.NewRedisStore(redisClient.Client, cfg.IdempotencyTTL)
		log.Info("idempotency store: redis", "ttl", cfg.IdempotencyTTL.String())
	} else {
		store = idempotency.NewInMemoryStore()
		log.Info("idempotency store: in-memory")
	}

	var sink audit.Sink
	var kafkaSink *audit.KafkaSink
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink, err = audit.NewKafkaSink(cfg.KafkaBrokers, cfg.AuditTopic)
		if err != nil {
			return fmt.Errorf("create kafka audit sink: %w", err)
		}
		sink = kafkaSink
		log.Info("audit sink: kafka", "brokers", cfg.KafkaBrokers)
	} else {
		sink = audit.NewLogSink(log)
		log.Info("audit sink: log")
	}
	publisher := audit.NewPublisher(sink, log)

	svc, err := routing.New(reg, store,
		routing.WithLogger(log),
		routing.WithMetrics(routingmetrics.New()),
		routing.WithAuditPublisher(publisher),
	)
	if err != nil {
		return fmt.Errorf("create routing service: %w", err)
	}

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "payrouter")

	router := transport.New(transport.Deps{
		Logger:       log,
		Metrics:      platformmetrics.New(),
		JWTValidator: jwtService,
		Routing:      routinghandler.New(svc, log),
		Registry:     registryhandler.New(reg, log),
		Providers:    reg,
	})

	server := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()
	go func() {
		if err := publisher.Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.Addr, "providers", reg.Count())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}

	cancelWorker()
	if dropped := publisher.Dropped(); dropped > 0 {
		log.Warn("audit events dropped during run", "count", dropped)
	}
	if kafkaSink != nil {
		kafkaSink.Close()
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn("redis close failed", "error", err)
		}
	}

	return nil
}
