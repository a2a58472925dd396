// All migrations in one file; order is fixed by the list in migrations.go.
package migrations

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// 1: schema_version + clients, drivers, vehicles, driver_vehicles
func UpReferenceTables(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS schema_version (
			version    INT PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS clients (
			id         BIGSERIAL PRIMARY KEY,
			tenant_id  BIGINT NOT NULL,
			name       TEXT NOT NULL,
			phone      TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS clients_tenant_idx ON clients (tenant_id)`,
		`CREATE TABLE IF NOT EXISTS drivers (
			id                BIGSERIAL PRIMARY KEY,
			tenant_id         BIGINT NOT NULL,
			name              TEXT NOT NULL,
			phone             TEXT,
			employment_status TEXT NOT NULL DEFAULT 'active'
				CHECK (employment_status IN ('active', 'inactive')),
			created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS drivers_tenant_idx ON drivers (tenant_id)`,
		`CREATE TABLE IF NOT EXISTS vehicles (
			id         BIGSERIAL PRIMARY KEY,
			tenant_id  BIGINT NOT NULL,
			name       TEXT NOT NULL,
			type       TEXT NOT NULL DEFAULT 'car'
				CHECK (type IN ('car', 'van', 'truck', 'bus')),
			active     BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS vehicles_tenant_idx ON vehicles (tenant_id)`,
		`CREATE TABLE IF NOT EXISTS driver_vehicles (
			driver_id  BIGINT NOT NULL REFERENCES drivers(id) ON DELETE CASCADE,
			vehicle_id BIGINT NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
			tenant_id  BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (driver_id, vehicle_id)
		)`,
		`CREATE INDEX IF NOT EXISTS driver_vehicles_tenant_idx ON driver_vehicles (tenant_id)`,
		`INSERT INTO schema_version (version, name) VALUES (1, 'create_reference_tables')
			ON CONFLICT (version) DO NOTHING`,
	}
	return execAll(ctx, pool, stmts)
}

// 2: trips
func UpTrips(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trips (
			id           BIGSERIAL PRIMARY KEY,
			tenant_id    BIGINT NOT NULL,
			client_id    BIGINT REFERENCES clients(id) ON DELETE SET NULL,
			driver_id    BIGINT NOT NULL REFERENCES drivers(id) ON DELETE CASCADE,
			vehicle_id   BIGINT NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
			vehicle_type TEXT NOT NULL DEFAULT 'car'
				CHECK (vehicle_type IN ('car', 'van', 'truck', 'bus')),
			start_time   TIMESTAMPTZ NOT NULL,
			end_time     TIMESTAMPTZ NOT NULL,
			description  TEXT,
			status       TEXT NOT NULL DEFAULT 'planned'
				CHECK (status IN ('planned', 'active', 'completed', 'cancelled')),
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at   TIMESTAMPTZ,
			CONSTRAINT trips_time_order CHECK (start_time < end_time)
		)`,
		`CREATE INDEX IF NOT EXISTS trips_driver_time_idx
			ON trips (tenant_id, driver_id, start_time, end_time)`,
		`CREATE INDEX IF NOT EXISTS trips_vehicle_time_idx
			ON trips (tenant_id, vehicle_id, start_time, end_time)`,
		`CREATE INDEX IF NOT EXISTS trips_tenant_idx ON trips (tenant_id)`,
		`INSERT INTO schema_version (version, name) VALUES (2, 'create_trips')
			ON CONFLICT (version) DO NOTHING`,
	}
	return execAll(ctx, pool, stmts)
}

// 3: overlap exclusion constraints. tstzrange(a, b) defaults to the
// half-open form [a, b), matching domain.Interval.Overlaps: touching trips
// coexist, overlapping ones collide. Partial on status+deleted_at so only
// planned/active, non-deleted trips occupy their resources. These
// constraints, not the application pre-check, are the authority on
// concurrent double-booking.
func UpTripsOverlapExclusion(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,
		`DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'trips_driver_no_overlap'
			) THEN
				ALTER TABLE trips ADD CONSTRAINT trips_driver_no_overlap
					EXCLUDE USING gist (
						tenant_id WITH =,
						driver_id WITH =,
						tstzrange(start_time, end_time) WITH &&
					)
					WHERE (status IN ('planned', 'active') AND deleted_at IS NULL);
			END IF;
		END $$`,
		`DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'trips_vehicle_no_overlap'
			) THEN
				ALTER TABLE trips ADD CONSTRAINT trips_vehicle_no_overlap
					EXCLUDE USING gist (
						tenant_id WITH =,
						vehicle_id WITH =,
						tstzrange(start_time, end_time) WITH &&
					)
					WHERE (status IN ('planned', 'active') AND deleted_at IS NULL);
			END IF;
		END $$`,
		`INSERT INTO schema_version (version, name) VALUES (3, 'trips_overlap_exclusion')
			ON CONFLICT (version) DO NOTHING`,
	}
	return execAll(ctx, pool, stmts)
}

func execAll(ctx context.Context, pool *pgxpool.Pool, stmts []string) error {
	for _, s := range stmts {
		if _, err := pool.Exec(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
