package trips

import (
	"context"
	"errors"
	"fmt"

	"fleet-dispatch-go/internal/apperr"
	"fleet-dispatch-go/internal/domain"
	"fleet-dispatch-go/internal/logx"
	"fleet-dispatch-go/internal/ports/triptx"
)

// Commit persists a validated draft inside a single transaction. The
// in-transaction occupancy re-check catches races against rows committed
// after validation; the storage layer's exclusion constraint is the final
// arbiter, so a conflicting concurrent commit surfaces as
// apperr.ErrConflict even if the re-check missed it.
func (s *Service) Commit(ctx context.Context, draft *domain.Draft) (*domain.Trip, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	trip := tripFromDraft(draft)

	err := s.tx.WithTx(ctx, func(tx triptx.Repository) error {
		if trip.Status.Occupies() {
			if err := s.recheckOccupancy(ctx, tx, draft); err != nil {
				return err
			}
		}
		if draft.TripID == 0 {
			return tx.Insert(ctx, trip)
		}
		existing, err := tx.GetForUpdate(ctx, draft.TenantID, draft.TripID)
		if err != nil {
			return err
		}
		if existing == nil || existing.Deleted() {
			return fmt.Errorf("trip %d: %w", draft.TripID, apperr.ErrNotFound)
		}
		trip.ID = existing.ID
		trip.Status = existing.Status
		trip.CreatedAt = existing.CreatedAt
		return tx.Update(ctx, trip)
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			s.incConflict()
			s.logger.Warn("trip commit lost race",
				logx.Int64("tenant_id", draft.TenantID),
				logx.Int64("driver_id", draft.DriverID),
				logx.Int64("vehicle_id", draft.VehicleID),
				logx.Err(err),
			)
		}
		return nil, err
	}

	s.incCommitted()
	s.logger.Info("trip committed",
		logx.Int64("tenant_id", trip.TenantID),
		logx.Int64("trip_id", trip.ID),
		logx.Int64("driver_id", trip.DriverID),
		logx.Int64("vehicle_id", trip.VehicleID),
		logx.Time("start_time", trip.Period.Start),
		logx.Time("end_time", trip.Period.End),
	)
	return trip, nil
}

// Schedule is the validate-then-commit convenience used by the HTTP layer
// for both create and edit.
func (s *Service) Schedule(ctx context.Context, req domain.TripRequest) (*domain.Trip, error) {
	draft, err := s.Validate(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.Commit(ctx, draft)
}

// Delete soft-deletes a trip. A deleted trip no longer occupies its
// resources; the exclusion constraint ignores it.
func (s *Service) Delete(ctx context.Context, tenantID, tripID int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.tx.WithTx(ctx, func(tx triptx.Repository) error {
		existing, err := tx.GetForUpdate(ctx, tenantID, tripID)
		if err != nil {
			return err
		}
		if existing == nil || existing.Deleted() {
			return fmt.Errorf("trip %d: %w", tripID, apperr.ErrNotFound)
		}
		return tx.SoftDelete(ctx, tenantID, tripID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("trip deleted",
		logx.Int64("tenant_id", tenantID),
		logx.Int64("trip_id", tripID),
	)
	return nil
}

func (s *Service) recheckOccupancy(ctx context.Context, tx triptx.Repository, draft *domain.Draft) error {
	for _, q := range []domain.OccupancyQuery{
		{
			TenantID:      draft.TenantID,
			Kind:          domain.ResourceDriver,
			ResourceID:    draft.DriverID,
			Window:        draft.Period,
			ExcludeTripID: draft.TripID,
		},
		{
			TenantID:      draft.TenantID,
			Kind:          domain.ResourceVehicle,
			ResourceID:    draft.VehicleID,
			Window:        draft.Period,
			ExcludeTripID: draft.TripID,
		},
	} {
		busy, err := tx.Occupied(ctx, q)
		if err != nil {
			return err
		}
		if len(busy) > 0 {
			return fmt.Errorf("%s %d busy %s: %w", q.Kind, q.ResourceID, busy[0].Period, apperr.ErrConflict)
		}
	}
	return nil
}

func tripFromDraft(d *domain.Draft) *domain.Trip {
	return &domain.Trip{
		ID:          d.TripID,
		TenantID:    d.TenantID,
		ClientID:    d.ClientID,
		DriverID:    d.DriverID,
		VehicleID:   d.VehicleID,
		VehicleType: d.VehicleType,
		Period:      d.Period,
		Description: d.Description,
		Status:      d.Status,
	}
}
