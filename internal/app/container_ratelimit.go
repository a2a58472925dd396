package app

import (
	"fleet-dispatch-go/internal/config"
	"fleet-dispatch-go/internal/http/middleware/ratelimit"
	"fleet-dispatch-go/internal/logx"
	"fleet-dispatch-go/internal/metrics"
)

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewTokenBucket(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

func newRateLimitMiddleware(logger logx.Logger, limiter ratelimit.Limiter) *ratelimit.Middleware {
	counter := metrics.NewRateLimitedTotal()
	registerCollectors(counter)
	return ratelimit.New(logger, counter, limiter)
}
