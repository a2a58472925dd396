package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(nil)
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 3*time.Second, cfg.OperationTimeout)
	require.Equal(t, "127.0.0.1", cfg.DB.Host)
	require.Equal(t, "5432", cfg.DB.Port)
	require.Equal(t, "fleet_dispatch", cfg.DB.Name)
	require.Equal(t, 5*time.Minute, cfg.Scheduling.PastGrace)
	require.Equal(t, 3*7*24*time.Hour, cfg.Scheduling.BookingHorizon)
	require.Equal(t, 24*time.Hour, cfg.Scheduling.MaxDuration)
	require.Nil(t, cfg.Kafka.Brokers)
	require.Equal(t, "driver-status", cfg.Kafka.Topic)
	require.Equal(t, "fleet-dispatch", cfg.Kafka.GroupID)
	require.Empty(t, cfg.Redis.Addr)
	require.Equal(t, 5*time.Minute, cfg.Redis.AvailabilityTTL)
	require.False(t, cfg.RateLimit.Enabled)
	require.Equal(t, float64(10), cfg.RateLimit.Rate)
	require.Equal(t, 20, cfg.RateLimit.Burst)
	require.Equal(t, 10*time.Minute, cfg.RateLimit.TTL)
	require.Equal(t, 10000, cfg.RateLimit.MaxBuckets)
}

func TestLoad_RateLimitEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RATE", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("RATE_LIMIT_TTL", "30s")
	t.Setenv("RATE_LIMIT_MAX_BUCKETS", "100")

	cfg, err := load(nil)
	require.NoError(t, err)
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 2.5, cfg.RateLimit.Rate)
	require.Equal(t, 5, cfg.RateLimit.Burst)
	require.Equal(t, 30*time.Second, cfg.RateLimit.TTL)
	require.Equal(t, 100, cfg.RateLimit.MaxBuckets)
}

func TestLoad_RateLimitEnabledNeedsPositiveRateAndBurst(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "1")
	t.Setenv("RATE_LIMIT_RATE", "-1")

	_, err := load(nil)
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPERATION_TIMEOUT", "7s")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "dispatch_test")
	t.Setenv("SCHED_PAST_GRACE", "1m")
	t.Setenv("SCHED_BOOKING_HORIZON", "168h")
	t.Setenv("SCHED_MAX_DURATION", "12h")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("REDIS_AVAILABILITY_TTL", "90s")

	cfg, err := load(nil)
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 7*time.Second, cfg.OperationTimeout)
	require.Equal(t, "db.internal", cfg.DB.Host)
	require.Equal(t, "dispatch_test", cfg.DB.Name)
	require.Equal(t, time.Minute, cfg.Scheduling.PastGrace)
	require.Equal(t, 168*time.Hour, cfg.Scheduling.BookingHorizon)
	require.Equal(t, 12*time.Hour, cfg.Scheduling.MaxDuration)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	require.Equal(t, 90*time.Second, cfg.Redis.AvailabilityTTL)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := load([]string{"--port", "9999"})
	require.NoError(t, err)
	require.Equal(t, 9999, cfg.Port)
}

func TestLoad_MalformedEnvFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("OPERATION_TIMEOUT", "soon")

	cfg, err := load(nil)
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 3*time.Second, cfg.OperationTimeout)
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "port out of range", key: "PORT", val: "70000"},
		{name: "negative grace", key: "SCHED_PAST_GRACE", val: "-5m"},
		{name: "zero max duration", key: "SCHED_MAX_DURATION", val: "0s"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := load(nil)
			require.Error(t, err)
		})
	}
}

func TestLoad_BadFlag(t *testing.T) {
	_, err := load([]string{"--nope"})
	require.Error(t, err)
}

func TestDSN(t *testing.T) {
	t.Parallel()

	db := DB{Host: "localhost", Port: "5432", User: "u", Pass: "p", Name: "d"}
	require.Equal(t, "postgres://u:p@localhost:5432/d?sslmode=disable", db.DSN())
}
