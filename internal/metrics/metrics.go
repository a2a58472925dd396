package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewTripsCommittedTotal returns a Prometheus counter for successfully committed trips
func NewTripsCommittedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "trips_committed_total",
		Help: "Total number of trips committed to storage",
	})
}

// NewCommitConflictsTotal returns a Prometheus counter for commit attempts lost to a concurrent booking
func NewCommitConflictsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "trip_commit_conflicts_total",
		Help: "Total number of trip commits rejected by the storage overlap guard",
	})
}

// NewRateLimitedTotal returns a Prometheus counter for requests refused by the rate limiter
func NewRateLimitedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "http_rate_limited_total",
		Help: "Total number of requests refused by the per-tenant rate limiter",
	})
}

// NewValidationRejectionsTotal returns a Prometheus counter vector for validation rejections by code
func NewValidationRejectionsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trip_validation_rejections_total",
		Help: "Total number of trip validation rejections by rejection code",
	}, []string{"code"})
}

// RejectionCounter adapts a CounterVec to the per-code counter interface the
// scheduling services expect.
type RejectionCounter struct {
	vec *prometheus.CounterVec
}

// NewRejectionCounter wraps a rejections CounterVec.
func NewRejectionCounter(vec *prometheus.CounterVec) RejectionCounter {
	return RejectionCounter{vec: vec}
}

// Inc increments the counter for one rejection code.
func (c RejectionCounter) Inc(code string) {
	if c.vec == nil {
		return
	}
	c.vec.WithLabelValues(code).Inc()
}
