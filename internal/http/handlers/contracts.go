package handlers

import (
	"context"

	"fleet-dispatch-go/internal/domain"
	"fleet-dispatch-go/internal/service/availability"
	"fleet-dispatch-go/internal/service/trips"
)

type tripUsecase interface {
	Validate(ctx context.Context, req domain.TripRequest) (*domain.Draft, error)
	Schedule(ctx context.Context, req domain.TripRequest) (*domain.Trip, error)
	TransitionStatus(ctx context.Context, tenantID, tripID int64, target domain.TripStatus) (*domain.Trip, error)
	Delete(ctx context.Context, tenantID, tripID int64) error
}

// NewTripUsecase wires a trips.Service into a tripUsecase.
func NewTripUsecase(svc *trips.Service) tripUsecase {
	return svc
}

type availabilityUsecase interface {
	ListAvailable(ctx context.Context, tenantID int64, kind domain.ResourceKind, candidateIDs []int64, window domain.Interval) ([]int64, error)
	AutoAssign(ctx context.Context, tenantID int64, vt domain.VehicleType, window domain.Interval) (*domain.Assignment, error)
}

// NewAvailabilityUsecase wires an availability.Index into an
// availabilityUsecase.
func NewAvailabilityUsecase(idx availability.Index) availabilityUsecase {
	return idx
}
