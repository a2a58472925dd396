package trips

import (
	"context"
	"time"

	"fleet-dispatch-go/internal/domain"
	"fleet-dispatch-go/internal/logx"
	"fleet-dispatch-go/internal/ports/triptx"
)

// Rules configures the temporal admission windows.
type Rules struct {
	// PastGrace tolerates clock skew and submit latency: a start time may
	// lie at most this far in the past.
	PastGrace time.Duration
	// BookingHorizon bounds how far ahead a client-initiated booking may
	// start. Zero disables the bound.
	BookingHorizon time.Duration
	// MaxDuration bounds a single trip's length.
	MaxDuration time.Duration
}

// Metrics holds the counters the service increments. Nil fields are fine.
type Metrics struct {
	Committed counter
	Conflicts counter
	Rejected  codeCounter
}

// Service is the scheduling core's write-side entry point: it validates
// proposed trips, commits accepted drafts, and drives the status lifecycle.
// Validation is read-only and lock-free; Commit is the sole synchronization
// point and relies on the storage layer's overlap exclusion.
type Service struct {
	refs             referenceReader
	index            availabilityIndex
	tx               triptx.Runner
	rules            Rules
	operationTimeout time.Duration
	logger           logx.Logger
	metrics          Metrics
	now              func() time.Time
}

// NewService creates and configures a trip scheduling Service.
func NewService(refs referenceReader, index availabilityIndex, runner triptx.Runner, rules Rules, timeout time.Duration, logger logx.Logger, m Metrics) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		refs:             refs,
		index:            index,
		tx:               runner,
		rules:            rules,
		operationTimeout: timeout,
		logger:           logger,
		metrics:          m,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) incCommitted() {
	if s.metrics.Committed != nil {
		s.metrics.Committed.Inc()
	}
}

func (s *Service) incConflict() {
	if s.metrics.Conflicts != nil {
		s.metrics.Conflicts.Inc()
	}
}

func (s *Service) countRejections(rejs domain.Rejections) {
	if s.metrics.Rejected == nil {
		return
	}
	for _, r := range rejs {
		s.metrics.Rejected.Inc(string(r.Code))
	}
}
