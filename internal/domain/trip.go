package domain

import "time"

// Trip is the central scheduling entity: a time interval bound to exactly
// one driver and one vehicle, scoped to a tenant.
type Trip struct {
	ID          int64
	TenantID    int64
	ClientID    *int64
	DriverID    int64
	VehicleID   int64
	VehicleType VehicleType
	Period      Interval
	Description string
	Status      TripStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// Deleted reports whether the trip has been soft-deleted. Deleted trips are
// absent from overlap accounting and listings but retained for audit.
func (t *Trip) Deleted() bool {
	return t != nil && t.DeletedAt != nil
}

// TripRequest is a proposed trip mutation before any admission check.
// A zero TripID means creation; otherwise the identified trip is being
// edited and its own interval is excluded from overlap comparison.
type TripRequest struct {
	TenantID    int64
	TripID      int64
	ClientID    *int64
	DriverID    int64
	VehicleID   int64
	Period      Interval
	Status      TripStatus
	Description string
	// ClientBooked marks requests originating from the client booking flow,
	// which are additionally bounded by the booking horizon.
	ClientBooked bool
}

// Draft is a trip request that has passed every admission check, enriched
// with derived fields. Only a Draft may be handed to the commit service.
type Draft struct {
	TripRequest
	VehicleType VehicleType
}

// BusyInterval is one occupied slot of a resource, with the trip that holds it.
type BusyInterval struct {
	TripID int64
	Period Interval
}

// OccupancyQuery selects the busy intervals of a single resource that
// overlap a window, optionally ignoring one trip (used when editing it).
type OccupancyQuery struct {
	TenantID      int64
	Kind          ResourceKind
	ResourceID    int64
	Window        Interval
	ExcludeTripID int64
}

// Assignment is one permitted driver/vehicle pairing.
type Assignment struct {
	DriverID  int64
	VehicleID int64
}
