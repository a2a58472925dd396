package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"fleet-dispatch-go/internal/config"
	"fleet-dispatch-go/internal/http/handlers"
	"fleet-dispatch-go/internal/http/router"
	"fleet-dispatch-go/internal/logx"
	"fleet-dispatch-go/internal/metrics"
	redisclient "fleet-dispatch-go/internal/redis"
	"fleet-dispatch-go/internal/repository"
	"fleet-dispatch-go/internal/service/availability"
	"fleet-dispatch-go/internal/service/trips"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() *log.Logger { return log.Default() },
		NewLogger,
		config.Load,
		func(cfg *config.Config) trips.Rules {
			return trips.Rules{
				PastGrace:      cfg.Scheduling.PastGrace,
				BookingHorizon: cfg.Scheduling.BookingHorizon,
				MaxDuration:    cfg.Scheduling.MaxDuration,
			}
		},
		func(cfg *config.Config) time.Duration { return cfg.OperationTimeout },
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	providerRedis := func(ctx context.Context, cfg *config.Config) (*goredis.Client, error) {
		return redisclient.New(ctx, cfg.Redis)
	}
	return provideAll(container, providerDB, providerRedis)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewTripRepo,
		repository.NewRefRepo,
		func(repo *repository.TripRepo, timeout time.Duration, logger logx.Logger) *availability.Service {
			return availability.NewService(repo, timeout, logger)
		},
		// the cached index wraps the direct one when Redis is configured
		func(svc *availability.Service, rdb *goredis.Client, cfg *config.Config, logger logx.Logger) availability.Index {
			if rdb == nil {
				return svc
			}
			return availability.NewCachedIndex(svc, rdb, cfg.Redis.AvailabilityTTL, logger)
		},
		newSchedulingMetrics,
		func(
			refs *repository.RefRepo,
			idx availability.Index,
			tripRepo *repository.TripRepo,
			rules trips.Rules,
			timeout time.Duration,
			logger logx.Logger,
			m trips.Metrics,
		) *trips.Service {
			return trips.NewService(refs, idx, tripRepo, rules, timeout, logger, m)
		},
	)
}

func newSchedulingMetrics() trips.Metrics {
	committed := metrics.NewTripsCommittedTotal()
	conflicts := metrics.NewCommitConflictsTotal()
	rejections := metrics.NewValidationRejectionsTotal()
	registerCollectors(committed, conflicts, rejections)

	return trips.Metrics{
		Committed: committed,
		Conflicts: conflicts,
		Rejected:  metrics.NewRejectionCounter(rejections),
	}
}

// registerCollectors tolerates re-registration so container rebuilds in
// one process do not fail.
func registerCollectors(cs ...prometheus.Collector) {
	for _, c := range cs {
		if err := prometheus.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				log.Printf("metrics register: %v", err)
			}
		}
	}
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewTripUsecase,
		handlers.NewTripHandler,
		handlers.NewAvailabilityUsecase,
		handlers.NewAvailabilityHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
	)
}
