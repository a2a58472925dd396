// Migrations live in Go; order is fixed by the list below. All Up functions
// are in up.go. schema_version is created by the first migration.
package migrations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Runner applies migrations in order.
type Runner struct {
	pool *pgxpool.Pool
}

// NewRunner creates a migration runner for the given pool.
func NewRunner(pool *pgxpool.Pool) *Runner {
	return &Runner{pool: pool}
}

// Up executes all migrations in order.
func (r *Runner) Up(ctx context.Context) error {
	for i, m := range migrations {
		if err := m.Up(ctx, r.pool); err != nil {
			return fmt.Errorf("migration %d (%s): %w", i, m.Name, err)
		}
	}
	return nil
}

type migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// Migration list: order matters.
var migrations = []migration{
	{Name: "create_reference_tables", Up: UpReferenceTables},
	{Name: "create_trips", Up: UpTrips},
	{Name: "trips_overlap_exclusion", Up: UpTripsOverlapExclusion},
}
