package availability

import (
	"context"

	"fleet-dispatch-go/internal/domain"
)

// tripReader provides the committed occupancy data the index is built from.
// The naive per-resource scan behind it can be swapped for an interval tree
// or sorted-range lookup without touching the service contract.
type tripReader interface {
	Occupied(ctx context.Context, q domain.OccupancyQuery) ([]domain.BusyInterval, error)
	OccupiedForMany(ctx context.Context, tenantID int64, kind domain.ResourceKind, ids []int64, window domain.Interval) (map[int64][]domain.BusyInterval, error)
	Assignments(ctx context.Context, tenantID int64, vt domain.VehicleType) ([]domain.Assignment, error)
}

// Index is the read side of the availability component consumed by the
// validator and the HTTP layer. *Service and *CachedIndex both satisfy it.
type Index interface {
	Occupied(ctx context.Context, q domain.OccupancyQuery) (*domain.BusyInterval, error)
	IsFree(ctx context.Context, q domain.OccupancyQuery) (bool, error)
	ListAvailable(ctx context.Context, tenantID int64, kind domain.ResourceKind, candidateIDs []int64, window domain.Interval) ([]int64, error)
	AutoAssign(ctx context.Context, tenantID int64, vt domain.VehicleType, window domain.Interval) (*domain.Assignment, error)
}
