package availability

import (
	"context"
	"time"

	"fleet-dispatch-go/internal/domain"
	"fleet-dispatch-go/internal/logx"
)

// Service answers occupancy questions for drivers and vehicles from the
// committed trip set. It never errors on unknown resources or empty
// candidate sets; those simply read as unavailable/empty. All answers are
// advisory: the commit path re-checks under its own guarantees.
type Service struct {
	reader           tripReader
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures an availability Service.
func NewService(r tripReader, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{reader: r, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Occupied returns the first busy interval of the resource overlapping the
// window, or nil when the resource is free. The Go-side Overlaps check is
// the authoritative predicate; the reader may over-fetch.
func (s *Service) Occupied(ctx context.Context, q domain.OccupancyQuery) (*domain.BusyInterval, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.occupied(ctx, q)
}

func (s *Service) occupied(ctx context.Context, q domain.OccupancyQuery) (*domain.BusyInterval, error) {
	busy, err := s.reader.Occupied(ctx, q)
	if err != nil {
		return nil, err
	}
	for _, b := range busy {
		if b.TripID != q.ExcludeTripID && b.Period.Overlaps(q.Window) {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

// IsFree reports whether no busy interval of the resource overlaps the window.
func (s *Service) IsFree(ctx context.Context, q domain.OccupancyQuery) (bool, error) {
	b, err := s.Occupied(ctx, q)
	if err != nil {
		return false, err
	}
	return b == nil, nil
}

// ListAvailable returns the subset of candidate resources free for the
// window. Candidates the store has never seen have no busy intervals and
// therefore come back as available; an empty candidate set yields an empty
// result, not an error.
func (s *Service) ListAvailable(ctx context.Context, tenantID int64, kind domain.ResourceKind, candidateIDs []int64, window domain.Interval) ([]int64, error) {
	if len(candidateIDs) == 0 {
		return nil, nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	busyByID, err := s.reader.OccupiedForMany(ctx, tenantID, kind, candidateIDs, window)
	if err != nil {
		return nil, err
	}

	free := make([]int64, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		if anyOverlap(busyByID[id], window) {
			continue
		}
		free = append(free, id)
	}
	return free, nil
}

// AutoAssign picks the first permitted driver/vehicle pairing of the
// requested vehicle type where both resources are free for the window.
// Returns nil when no pairing is available.
func (s *Service) AutoAssign(ctx context.Context, tenantID int64, vt domain.VehicleType, window domain.Interval) (*domain.Assignment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	pairs, err := s.reader.Assignments(ctx, tenantID, vt)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, nil
	}

	// one occupancy fetch per distinct resource, memoized across pairs
	freeDrivers := make(map[int64]bool)
	freeVehicles := make(map[int64]bool)

	for _, p := range pairs {
		driverFree, ok := freeDrivers[p.DriverID]
		if !ok {
			driverFree, err = s.resourceFree(ctx, tenantID, domain.ResourceDriver, p.DriverID, window)
			if err != nil {
				return nil, err
			}
			freeDrivers[p.DriverID] = driverFree
		}
		if !driverFree {
			continue
		}

		vehicleFree, ok := freeVehicles[p.VehicleID]
		if !ok {
			vehicleFree, err = s.resourceFree(ctx, tenantID, domain.ResourceVehicle, p.VehicleID, window)
			if err != nil {
				return nil, err
			}
			freeVehicles[p.VehicleID] = vehicleFree
		}
		if !vehicleFree {
			continue
		}

		found := p
		s.logger.Debug("auto-assign pairing selected",
			logx.Int64("driver_id", p.DriverID),
			logx.Int64("vehicle_id", p.VehicleID),
		)
		return &found, nil
	}
	return nil, nil
}

func (s *Service) resourceFree(ctx context.Context, tenantID int64, kind domain.ResourceKind, id int64, window domain.Interval) (bool, error) {
	b, err := s.occupied(ctx, domain.OccupancyQuery{
		TenantID:   tenantID,
		Kind:       kind,
		ResourceID: id,
		Window:     window,
	})
	if err != nil {
		return false, err
	}
	return b == nil, nil
}

func anyOverlap(busy []domain.BusyInterval, window domain.Interval) bool {
	for _, b := range busy {
		if b.Period.Overlaps(window) {
			return true
		}
	}
	return false
}
