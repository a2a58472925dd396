package ratelimit

import (
	"sync"
	"time"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// Clock provides current time. Injected so refill can be tested.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

// Now returns current time.
func (RealClock) Now() time.Time { return time.Now() }

// NopLimiter admits every request.
type NopLimiter struct{}

// Allow always returns true.
func (NopLimiter) Allow(string) bool { return true }

// Config stores TokenBucket settings.
type Config struct {
	Rate       float64       // sustained allowance in tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // evict buckets idle longer than this, 0 keeps all
	MaxBuckets int           // cap on tracked keys, 0 means unbounded
}

// TokenBucket is a per-key token bucket limiter. Each key refills at
// cfg.Rate up to cfg.Burst capacity; one request spends one token.
type TokenBucket struct {
	cfg   Config
	clock Clock

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	tokens   float64
	refilled time.Time
	lastSeen time.Time
}

// NewTokenBucket builds a limiter with the given clock and config.
func NewTokenBucket(clock Clock, cfg Config) *TokenBucket {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &TokenBucket{cfg: cfg, clock: clock, buckets: map[string]*bucket{}}
}

// Allow spends one token for key, refilling lazily from elapsed time. A
// new key seen while the tracked-key cap is full is refused outright.
func (l *TokenBucket) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.maybeSweep(now)

	b := l.buckets[key]
	if b == nil {
		if l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets {
			return false
		}
		b = &bucket{tokens: float64(l.cfg.Burst), refilled: now, lastSeen: now}
		l.buckets[key] = b
	}

	if dt := now.Sub(b.refilled); dt > 0 {
		b.tokens += dt.Seconds() * l.cfg.Rate
		if capacity := float64(l.cfg.Burst); b.tokens > capacity {
			b.tokens = capacity
		}
		b.refilled = now
	}
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// maybeSweep drops buckets idle past the TTL, at most once per sweep
// interval so the scan does not run on every request.
func (l *TokenBucket) maybeSweep(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}
	interval := time.Minute
	if half := l.cfg.TTL / 2; half > interval {
		interval = half
	}
	if !l.lastSweep.IsZero() && now.Sub(l.lastSweep) < interval {
		return
	}
	l.lastSweep = now

	for k, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}
