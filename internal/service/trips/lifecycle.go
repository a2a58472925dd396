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

// TransitionStatus moves a trip along the status lifecycle. The row is
// locked for the duration so concurrent transitions serialize; an edge the
// lifecycle does not allow comes back as a rejection. Transitioning into
// cancelled or completed frees the trip's resources for new bookings.
func (s *Service) TransitionStatus(ctx context.Context, tenantID, tripID int64, target domain.TripStatus) (*domain.Trip, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if !target.Valid() {
		rejs := domain.Rejections{domain.Reject(
			domain.RejectInvalidStatusTransition, "status",
			fmt.Sprintf("invalid trip status %q", target),
		)}
		s.countRejections(rejs)
		return nil, rejs
	}

	var trip *domain.Trip
	err := s.tx.WithTx(ctx, func(tx triptx.Repository) error {
		existing, err := tx.GetForUpdate(ctx, tenantID, tripID)
		if err != nil {
			return err
		}
		if existing == nil || existing.Deleted() {
			return fmt.Errorf("trip %d: %w", tripID, apperr.ErrNotFound)
		}
		if !existing.Status.CanTransitionTo(target) {
			return domain.Rejections{domain.Reject(
				domain.RejectInvalidStatusTransition, "status",
				fmt.Sprintf("cannot transition trip from %s to %s", existing.Status, target),
			)}
		}
		if err := tx.UpdateStatus(ctx, tenantID, tripID, target); err != nil {
			return err
		}
		existing.Status = target
		trip = existing
		return nil
	})
	if err != nil {
		var rejs domain.Rejections
		if errors.As(err, &rejs) {
			s.countRejections(rejs)
		}
		return nil, err
	}

	s.logger.Info("trip status changed",
		logx.Int64("tenant_id", tenantID),
		logx.Int64("trip_id", tripID),
		logx.String("status", string(target)),
	)
	return trip, nil
}
