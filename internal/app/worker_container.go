package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"fleet-dispatch-go/internal/config"
	"fleet-dispatch-go/internal/logx"
	"fleet-dispatch-go/internal/repository"
	"fleet-dispatch-go/internal/service/hr"
	"fleet-dispatch-go/internal/transport/kafka"
)

// MustBuildWorkerContainer builds the DI container for the driver-status
// worker process.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	container, err := buildWorkerContainer(ctx, connectDbWithRetry)
	if err != nil {
		log.Fatalf("failed to build worker container: %v", err)
	}
	return container
}

func buildWorkerContainer(
	ctx context.Context,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		repository.NewRefRepo,
		func(refs *repository.RefRepo, timeout time.Duration, logger logx.Logger) *hr.Processor {
			return hr.NewProcessor(refs, timeout, logger)
		},
		func(cfg *config.Config, p *hr.Processor, logger logx.Logger) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, makeDriverStatusKafka(p))
		},
	)
}
