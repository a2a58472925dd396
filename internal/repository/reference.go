package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fleet-dispatch-go/internal/domain"
)

// RefRepo reads the tenant-scoped reference data (clients, drivers,
// vehicles, assignments) the scheduling core validates against. All of it
// is owned by external fleet/HR flows; the core only reads, except for the
// employment status updates the worker applies.
type RefRepo struct{ db *pgxpool.Pool }

// NewRefRepo creates a new RefRepo.
func NewRefRepo(db *pgxpool.Pool) *RefRepo { return &RefRepo{db: db} }

// Client returns a client by tenant and id, nil when absent.
func (r *RefRepo) Client(ctx context.Context, tenantID, id int64) (*domain.Client, error) {
	var c domain.Client
	err := r.db.QueryRow(ctx,
		`SELECT id, tenant_id, name FROM clients WHERE tenant_id=$1 AND id=$2`,
		tenantID, id,
	).Scan(&c.ID, &c.TenantID, &c.Name)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}
	return &c, nil
}

// Driver returns a driver by tenant and id, nil when absent.
func (r *RefRepo) Driver(ctx context.Context, tenantID, id int64) (*domain.Driver, error) {
	var d domain.Driver
	var st string
	err := r.db.QueryRow(ctx,
		`SELECT id, tenant_id, name, employment_status FROM drivers WHERE tenant_id=$1 AND id=$2`,
		tenantID, id,
	).Scan(&d.ID, &d.TenantID, &d.Name, &st)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %d: %w", id, err)
	}
	d.EmploymentStatus = domain.EmploymentStatus(st)
	return &d, nil
}

// Vehicle returns a vehicle by tenant and id, nil when absent or soft-deleted.
func (r *RefRepo) Vehicle(ctx context.Context, tenantID, id int64) (*domain.Vehicle, error) {
	var v domain.Vehicle
	var vt string
	err := r.db.QueryRow(ctx,
		`SELECT id, tenant_id, name, type, active FROM vehicles
         WHERE tenant_id=$1 AND id=$2 AND deleted_at IS NULL`,
		tenantID, id,
	).Scan(&v.ID, &v.TenantID, &v.Name, &vt, &v.Active)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle %d: %w", id, err)
	}
	v.Type = domain.VehicleType(vt)
	return &v, nil
}

// DriverHasVehicle reports whether the vehicle is in the driver's
// assigned-vehicle set.
func (r *RefRepo) DriverHasVehicle(ctx context.Context, tenantID, driverID, vehicleID int64) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM driver_vehicles
            WHERE tenant_id=$1 AND driver_id=$2 AND vehicle_id=$3
        )
    `, tenantID, driverID, vehicleID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check assignment driver %d vehicle %d: %w", driverID, vehicleID, err)
	}
	return ok, nil
}

// UpdateDriverEmploymentStatus applies an employment status change coming
// from the external HR flow. It returns true if a row was affected.
func (r *RefRepo) UpdateDriverEmploymentStatus(ctx context.Context, tenantID, driverID int64, status domain.EmploymentStatus) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE drivers
        SET employment_status = $3, updated_at = now()
        WHERE tenant_id = $1 AND id = $2
    `, tenantID, driverID, string(status))
	if err != nil {
		return false, fmt.Errorf("update driver %d employment status: %w", driverID, err)
	}
	return ct.RowsAffected() > 0, nil
}
