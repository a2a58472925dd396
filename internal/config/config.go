package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port             int
	OperationTimeout time.Duration
	DB               DB
	Scheduling       Scheduling
	Kafka            Kafka
	Redis            Redis
	RateLimit        RateLimit
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Scheduling stores the temporal admission rules for trip validation.
type Scheduling struct {
	// PastGrace tolerates clock skew and submit latency for start times.
	PastGrace time.Duration
	// BookingHorizon bounds how far ahead client-initiated bookings may
	// start. Zero disables the bound.
	BookingHorizon time.Duration
	// MaxDuration bounds a single trip's length.
	MaxDuration time.Duration
}

// Kafka stores consumer settings for the driver-status worker. An empty
// broker list disables the consumer.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Redis stores the availability cache settings. An empty address disables
// the cache.
type Redis struct {
	Addr            string
	AvailabilityTTL time.Duration
}

// RateLimit stores the per-tenant request limit for the booking endpoints.
// Disabled unless RATE_LIMIT_ENABLED is set.
type RateLimit struct {
	Enabled    bool
	Rate       float64 // sustained requests per second per tenant
	Burst      int
	TTL        time.Duration // idle bucket eviction, 0 keeps all
	MaxBuckets int
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{
		Port:             envInt("PORT", defaultPort),
		OperationTimeout: envDuration("OPERATION_TIMEOUT", defaultOperationTimeout),
		DB: DB{
			Host: envStr("DB_HOST", defaultDB.Host),
			Port: envStr("DB_PORT", defaultDB.Port),
			User: envStr("DB_USER", defaultDB.User),
			Pass: envStr("DB_PASS", defaultDB.Pass),
			Name: envStr("DB_NAME", defaultDB.Name),
		},
		Scheduling: Scheduling{
			PastGrace:      envDuration("SCHED_PAST_GRACE", defaultScheduling.PastGrace),
			BookingHorizon: envDuration("SCHED_BOOKING_HORIZON", defaultScheduling.BookingHorizon),
			MaxDuration:    envDuration("SCHED_MAX_DURATION", defaultScheduling.MaxDuration),
		},
		Kafka: Kafka{
			Brokers: envList("KAFKA_BROKERS"),
			Topic:   envStr("KAFKA_TOPIC", defaultKafkaTopic),
			GroupID: envStr("KAFKA_GROUP_ID", defaultKafkaGroupID),
		},
		Redis: Redis{
			Addr:            envStr("REDIS_ADDR", ""),
			AvailabilityTTL: envDuration("REDIS_AVAILABILITY_TTL", defaultAvailabilityTTL),
		},
		RateLimit: RateLimit{
			Enabled:    envBool("RATE_LIMIT_ENABLED", defaultRateLimit.Enabled),
			Rate:       envFloat("RATE_LIMIT_RATE", defaultRateLimit.Rate),
			Burst:      envInt("RATE_LIMIT_BURST", defaultRateLimit.Burst),
			TTL:        envDuration("RATE_LIMIT_TTL", defaultRateLimit.TTL),
			MaxBuckets: envInt("RATE_LIMIT_MAX_BUCKETS", defaultRateLimit.MaxBuckets),
		},
	}

	fs := pflag.NewFlagSet("fleet-dispatch", pflag.ContinueOnError)
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.OperationTimeout <= 0 {
		return fmt.Errorf("invalid operation timeout: %v", c.OperationTimeout)
	}
	if c.Scheduling.PastGrace < 0 || c.Scheduling.BookingHorizon < 0 || c.Scheduling.MaxDuration <= 0 {
		return fmt.Errorf("invalid scheduling rules: %+v", c.Scheduling)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid rate limit: %+v", c.RateLimit)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("warning: %s=%q is not an int, using %d", key, os.Getenv(key), fallback)
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("warning: %s=%q is not a bool, using %v", key, os.Getenv(key), fallback)
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("warning: %s=%q is not a number, using %v", key, os.Getenv(key), fallback)
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("warning: %s=%q is not a duration, using %v", key, os.Getenv(key), fallback)
	}
	return fallback
}

func envList(key string) []string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
