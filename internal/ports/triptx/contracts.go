package triptx

import (
	"context"

	"fleet-dispatch-go/internal/domain"
)

// Repository is the set of trip storage operations available inside a
// commit transaction. Insert and Update are guarded by the storage layer's
// overlap exclusion; they return apperr.ErrConflict when a concurrent
// booking already holds the slot.
type Repository interface {
	GetForUpdate(ctx context.Context, tenantID, tripID int64) (*domain.Trip, error)
	Insert(ctx context.Context, t *domain.Trip) error
	Update(ctx context.Context, t *domain.Trip) error
	UpdateStatus(ctx context.Context, tenantID, tripID int64, status domain.TripStatus) error
	SoftDelete(ctx context.Context, tenantID, tripID int64) error
	Occupied(ctx context.Context, q domain.OccupancyQuery) ([]domain.BusyInterval, error)
}

// Runner is a transaction runner.
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
