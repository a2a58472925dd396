package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fleet-dispatch-go/internal/apperr"
	"fleet-dispatch-go/internal/domain"
	"fleet-dispatch-go/internal/ports/triptx"
)

// TripRepo represents the trip repository. Plain reads run on the pool;
// mutations run through WithTx so the insert/update and the overlap
// exclusion constraints commit atomically.
type TripRepo struct {
	db *pgxpool.Pool
	q  tripQueries
}

// NewTripRepo creates a new TripRepo.
func NewTripRepo(db *pgxpool.Pool) *TripRepo {
	return &TripRepo{db: db, q: tripQueries{db: db}}
}

// Get returns a trip by tenant and id, nil when absent or soft-deleted.
func (r *TripRepo) Get(ctx context.Context, tenantID, tripID int64) (*domain.Trip, error) {
	return r.q.get(ctx, tenantID, tripID, false)
}

// Occupied returns the busy intervals of one resource overlapping the query window.
func (r *TripRepo) Occupied(ctx context.Context, q domain.OccupancyQuery) ([]domain.BusyInterval, error) {
	return r.q.occupied(ctx, q)
}

// OccupiedForMany returns busy intervals for several resources of one kind
// in a single query, keyed by resource id. Resources with no busy interval
// are absent from the map.
func (r *TripRepo) OccupiedForMany(ctx context.Context, tenantID int64, kind domain.ResourceKind, ids []int64, window domain.Interval) (map[int64][]domain.BusyInterval, error) {
	col, err := resourceColumn(kind)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return map[int64][]domain.BusyInterval{}, nil
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf(`
        SELECT %s, id, start_time, end_time
        FROM trips
        WHERE tenant_id = $1
          AND %s = ANY($2)
          AND status IN ('planned','active')
          AND deleted_at IS NULL
          AND start_time < $4 AND end_time > $3
        ORDER BY start_time
    `, col, col), tenantID, ids, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("occupied for %s set: %w", kind, err)
	}
	defer rows.Close()

	out := make(map[int64][]domain.BusyInterval)
	for rows.Next() {
		var rid int64
		var b domain.BusyInterval
		if err := rows.Scan(&rid, &b.TripID, &b.Period.Start, &b.Period.End); err != nil {
			return nil, err
		}
		out[rid] = append(out[rid], b)
	}
	return out, rows.Err()
}

// Assignments lists the permitted driver/vehicle pairings of a tenant for
// one vehicle type, restricted to active drivers and active vehicles.
func (r *TripRepo) Assignments(ctx context.Context, tenantID int64, vt domain.VehicleType) ([]domain.Assignment, error) {
	rows, err := r.db.Query(ctx, `
        SELECT dv.driver_id, dv.vehicle_id
        FROM driver_vehicles dv
        JOIN drivers d ON d.id = dv.driver_id
        JOIN vehicles v ON v.id = dv.vehicle_id
        WHERE dv.tenant_id = $1
          AND v.type = $2
          AND v.active
          AND v.deleted_at IS NULL
          AND d.employment_status = 'active'
        ORDER BY dv.driver_id, dv.vehicle_id
    `, tenantID, string(vt))
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var out []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(&a.DriverID, &a.VehicleID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// WithTx opens a transaction and executes fn within it.
func (r *TripRepo) WithTx(ctx context.Context, fn func(tx triptx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{q: tripQueries{db: tx}, tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// TxRepo represents the trip repository bound to one transaction.
type TxRepo struct {
	q  tripQueries
	tx pgx.Tx
}

// GetForUpdate loads a trip and locks its row for the rest of the transaction.
func (r *TxRepo) GetForUpdate(ctx context.Context, tenantID, tripID int64) (*domain.Trip, error) {
	return r.q.get(ctx, tenantID, tripID, true)
}

// Insert persists a new trip. The trips overlap exclusion constraints fire
// here when a concurrent commit already booked the driver or the vehicle.
func (r *TxRepo) Insert(ctx context.Context, t *domain.Trip) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO trips (tenant_id, client_id, driver_id, vehicle_id, vehicle_type,
                           start_time, end_time, description, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at
    `, t.TenantID, t.ClientID, t.DriverID, t.VehicleID, string(t.VehicleType),
		t.Period.Start, t.Period.End, t.Description, string(t.Status),
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return overlapGuard("insert trip", err)
	}
	return nil
}

// Update rewrites a trip's schedulable fields. The same exclusion
// constraints re-check the new interval.
func (r *TxRepo) Update(ctx context.Context, t *domain.Trip) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE trips
        SET client_id    = $3,
            driver_id    = $4,
            vehicle_id   = $5,
            vehicle_type = $6,
            start_time   = $7,
            end_time     = $8,
            description  = $9,
            status       = $10,
            updated_at   = now()
        WHERE tenant_id = $1 AND id = $2 AND deleted_at IS NULL
    `, t.TenantID, t.ID, t.ClientID, t.DriverID, t.VehicleID, string(t.VehicleType),
		t.Period.Start, t.Period.End, t.Description, string(t.Status))
	if err != nil {
		return overlapGuard(fmt.Sprintf("update trip %d", t.ID), err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("update trip %d: %w", t.ID, apperr.ErrNotFound)
	}
	return nil
}

// UpdateStatus sets a trip's status.
func (r *TxRepo) UpdateStatus(ctx context.Context, tenantID, tripID int64, status domain.TripStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE trips
        SET status = $3, updated_at = now()
        WHERE tenant_id = $1 AND id = $2 AND deleted_at IS NULL
    `, tenantID, tripID, string(status))
	if err != nil {
		return fmt.Errorf("update trip %d status: %w", tripID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("update trip %d status: %w", tripID, apperr.ErrNotFound)
	}
	return nil
}

// SoftDelete marks a trip deleted. The row stays for audit; the partial
// exclusion constraints stop counting it immediately.
func (r *TxRepo) SoftDelete(ctx context.Context, tenantID, tripID int64) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE trips
        SET deleted_at = now(), updated_at = now()
        WHERE tenant_id = $1 AND id = $2 AND deleted_at IS NULL
    `, tenantID, tripID)
	if err != nil {
		return fmt.Errorf("soft delete trip %d: %w", tripID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("soft delete trip %d: %w", tripID, apperr.ErrNotFound)
	}
	return nil
}

// Occupied returns busy intervals as seen by this transaction.
func (r *TxRepo) Occupied(ctx context.Context, q domain.OccupancyQuery) ([]domain.BusyInterval, error) {
	return r.q.occupied(ctx, q)
}

// overlapGuard maps storage-level exclusion/uniqueness violations to the
// commit conflict sentinel; anything else passes through wrapped.
func overlapGuard(op string, err error) error {
	if IsExclusion(err) || IsDuplicate(err) {
		return fmt.Errorf("%s: %s: %w", op, ConstraintName(err), apperr.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// tripQueries holds the query implementations shared by pool and tx paths.
type tripQueries struct {
	db querier
}

const tripColumns = `id, tenant_id, client_id, driver_id, vehicle_id, vehicle_type,
       start_time, end_time, COALESCE(description, ''), status,
       created_at, updated_at, deleted_at`

func (q tripQueries) get(ctx context.Context, tenantID, tripID int64, forUpdate bool) (*domain.Trip, error) {
	sql := `SELECT ` + tripColumns + `
        FROM trips
        WHERE tenant_id = $1 AND id = $2 AND deleted_at IS NULL`
	if forUpdate {
		sql += ` FOR UPDATE`
	}

	var t domain.Trip
	var vt, st string
	err := q.db.QueryRow(ctx, sql, tenantID, tripID).Scan(
		&t.ID, &t.TenantID, &t.ClientID, &t.DriverID, &t.VehicleID, &vt,
		&t.Period.Start, &t.Period.End, &t.Description, &st,
		&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trip %d: %w", tripID, err)
	}
	t.VehicleType = domain.VehicleType(vt)
	t.Status = domain.TripStatus(st)
	return &t, nil
}

func (q tripQueries) occupied(ctx context.Context, oq domain.OccupancyQuery) ([]domain.BusyInterval, error) {
	col, err := resourceColumn(oq.Kind)
	if err != nil {
		return nil, err
	}

	rows, err := q.db.Query(ctx, fmt.Sprintf(`
        SELECT id, start_time, end_time
        FROM trips
        WHERE tenant_id = $1
          AND %s = $2
          AND status IN ('planned','active')
          AND deleted_at IS NULL
          AND start_time < $4 AND end_time > $3
          AND ($5 = 0 OR id <> $5)
        ORDER BY start_time
    `, col), oq.TenantID, oq.ResourceID, oq.Window.Start, oq.Window.End, oq.ExcludeTripID)
	if err != nil {
		return nil, fmt.Errorf("occupied %s %d: %w", oq.Kind, oq.ResourceID, err)
	}
	defer rows.Close()

	var out []domain.BusyInterval
	for rows.Next() {
		var b domain.BusyInterval
		if err := rows.Scan(&b.TripID, &b.Period.Start, &b.Period.End); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func resourceColumn(kind domain.ResourceKind) (string, error) {
	switch kind {
	case domain.ResourceDriver:
		return "driver_id", nil
	case domain.ResourceVehicle:
		return "vehicle_id", nil
	default:
		return "", fmt.Errorf("unknown resource kind %q", kind)
	}
}
