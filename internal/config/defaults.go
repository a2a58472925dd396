package config

import "time"

const (
	defaultPort             = 8080
	defaultOperationTimeout = 3 * time.Second

	defaultKafkaTopic   = "driver-status"
	defaultKafkaGroupID = "fleet-dispatch"

	defaultAvailabilityTTL = 5 * time.Minute
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "fleet_dispatch",
}

// The 5-minute grace period for past start times follows the product rule;
// the 3-week horizon applies to client-initiated bookings only.
var defaultScheduling = Scheduling{
	PastGrace:      5 * time.Minute,
	BookingHorizon: 3 * 7 * 24 * time.Hour,
	MaxDuration:    24 * time.Hour,
}

// DefaultScheduling returns the default scheduling rules.
func DefaultScheduling() Scheduling {
	return defaultScheduling
}

// Off by default; the knobs only apply once RATE_LIMIT_ENABLED is set.
var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       10,
	Burst:      20,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}
