//go:generate mockgen -source=contracts.go -destination=trips_mocks_test.go -package=trips
package trips

import (
	"context"

	"fleet-dispatch-go/internal/domain"
)

// referenceReader provides the tenant-scoped reference data admission
// checks run against.
type referenceReader interface {
	Client(ctx context.Context, tenantID, id int64) (*domain.Client, error)
	Driver(ctx context.Context, tenantID, id int64) (*domain.Driver, error)
	Vehicle(ctx context.Context, tenantID, id int64) (*domain.Vehicle, error)
	DriverHasVehicle(ctx context.Context, tenantID, driverID, vehicleID int64) (bool, error)
}

// availabilityIndex answers occupancy questions during validation.
type availabilityIndex interface {
	Occupied(ctx context.Context, q domain.OccupancyQuery) (*domain.BusyInterval, error)
}

// counter is the minimal metrics counter the service increments.
type counter interface {
	Inc()
}

// codeCounter counts events labelled by a code.
type codeCounter interface {
	Inc(code string)
}
