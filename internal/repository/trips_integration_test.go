//go:build integration

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fleet-dispatch-go/internal/apperr"
	"fleet-dispatch-go/internal/domain"
	"fleet-dispatch-go/internal/ports/triptx"
	"fleet-dispatch-go/internal/repository"
)

var tripsBase = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func at(h, m int) time.Time { return tripsBase.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

func insertTrip(t *testing.T, ctx context.Context, repo *repository.TripRepo, trip *domain.Trip) {
	t.Helper()
	err := repo.WithTx(ctx, func(tx triptx.Repository) error {
		return tx.Insert(ctx, trip)
	})
	require.NoError(t, err)
	require.NotZero(t, trip.ID)
}

func TestTripRepo_InsertAndGetRoundtrip(t *testing.T) {
	ctx := context.Background()
	f := seedTenant(t, ctx)
	repo := repository.NewTripRepo(tcPool)

	trip := f.trip(at(9, 0), at(11, 0))
	insertTrip(t, ctx, repo, trip)
	require.False(t, trip.CreatedAt.IsZero())

	got, err := repo.Get(ctx, f.TenantID, trip.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, trip.ID, got.ID)
	require.Equal(t, f.DriverID, got.DriverID)
	require.Equal(t, f.VehicleID, got.VehicleID)
	require.NotNil(t, got.ClientID)
	require.Equal(t, f.ClientID, *got.ClientID)
	require.Equal(t, domain.VehicleVan, got.VehicleType)
	require.Equal(t, domain.StatusPlanned, got.Status)
	require.True(t, got.Period.Start.Equal(at(9, 0)))
	require.True(t, got.Period.End.Equal(at(11, 0)))

	// wrong tenant reads nothing
	other, err := repo.Get(ctx, f.TenantID+1, trip.ID)
	require.NoError(t, err)
	require.Nil(t, other)
}

func TestTripRepo_DriverOverlapRejectedByConstraint(t *testing.T) {
	ctx := context.Background()
	f := seedTenant(t, ctx)
	repo := repository.NewTripRepo(tcPool)

	insertTrip(t, ctx, repo, f.trip(at(9, 0), at(11, 0)))

	err := repo.WithTx(ctx, func(tx triptx.Repository) error {
		return tx.Insert(ctx, f.trip(at(10, 0), at(12, 0)))
	})
	require.ErrorIs(t, err, apperr.ErrConflict)
	require.Contains(t, err.Error(), "no_overlap")
}

func TestTripRepo_TouchingIntervalsCoexist(t *testing.T) {
	ctx := context.Background()
	f := seedTenant(t, ctx)
	repo := repository.NewTripRepo(tcPool)

	insertTrip(t, ctx, repo, f.trip(at(9, 0), at(11, 0)))
	// [11:00, 13:00) starts exactly where the first ends
	insertTrip(t, ctx, repo, f.trip(at(11, 0), at(13, 0)))
}

func TestTripRepo_CancelledTripDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	f := seedTenant(t, ctx)
	repo := repository.NewTripRepo(tcPool)

	cancelled := f.trip(at(9, 0), at(11, 0))
	cancelled.Status = domain.StatusCancelled
	insertTrip(t, ctx, repo, cancelled)

	insertTrip(t, ctx, repo, f.trip(at(9, 30), at(10, 30)))
}

func TestTripRepo_SoftDeletedTripDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	f := seedTenant(t, ctx)
	repo := repository.NewTripRepo(tcPool)

	trip := f.trip(at(9, 0), at(11, 0))
	insertTrip(t, ctx, repo, trip)

	err := repo.WithTx(ctx, func(tx triptx.Repository) error {
		return tx.SoftDelete(ctx, f.TenantID, trip.ID)
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, f.TenantID, trip.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	insertTrip(t, ctx, repo, f.trip(at(9, 30), at(10, 30)))
}

func TestTripRepo_UpdateMovesIntervalPastItself(t *testing.T) {
	ctx := context.Background()
	f := seedTenant(t, ctx)
	repo := repository.NewTripRepo(tcPool)

	trip := f.trip(at(9, 0), at(11, 0))
	insertTrip(t, ctx, repo, trip)

	// shifting within the old window must not collide with the trip's own row
	trip.Period = domain.Interval{Start: at(10, 0), End: at(12, 0)}
	err := repo.WithTx(ctx, func(tx triptx.Repository) error {
		return tx.Update(ctx, trip)
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, f.TenantID, trip.ID)
	require.NoError(t, err)
	require.True(t, got.Period.Start.Equal(at(10, 0)))
}

func TestTripRepo_UpdateUnknownTripIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := seedTenant(t, ctx)
	repo := repository.NewTripRepo(tcPool)

	trip := f.trip(at(9, 0), at(11, 0))
	trip.ID = 999999
	err := repo.WithTx(ctx, func(tx triptx.Repository) error {
		return tx.Update(ctx, trip)
	})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestTripRepo_Occupied(t *testing.T) {
	ctx := context.Background()
	f := seedTenant(t, ctx)
	repo := repository.NewTripRepo(tcPool)

	trip := f.trip(at(9, 0), at(11, 0))
	insertTrip(t, ctx, repo, trip)

	busy, err := repo.Occupied(ctx, domain.OccupancyQuery{
		TenantID:   f.TenantID,
		Kind:       domain.ResourceDriver,
		ResourceID: f.DriverID,
		Window:     domain.Interval{Start: at(10, 0), End: at(12, 0)},
	})
	require.NoError(t, err)
	require.Len(t, busy, 1)
	require.Equal(t, trip.ID, busy[0].TripID)

	// the trip's own id can be excluded for edit flows
	busy, err = repo.Occupied(ctx, domain.OccupancyQuery{
		TenantID:      f.TenantID,
		Kind:          domain.ResourceDriver,
		ResourceID:    f.DriverID,
		Window:        domain.Interval{Start: at(10, 0), End: at(12, 0)},
		ExcludeTripID: trip.ID,
	})
	require.NoError(t, err)
	require.Empty(t, busy)

	// a touching window is free
	busy, err = repo.Occupied(ctx, domain.OccupancyQuery{
		TenantID:   f.TenantID,
		Kind:       domain.ResourceDriver,
		ResourceID: f.DriverID,
		Window:     domain.Interval{Start: at(11, 0), End: at(13, 0)},
	})
	require.NoError(t, err)
	require.Empty(t, busy)
}

func TestTripRepo_OccupiedForMany(t *testing.T) {
	ctx := context.Background()
	f := seedTenant(t, ctx)
	repo := repository.NewTripRepo(tcPool)

	trip := f.trip(at(9, 0), at(11, 0))
	insertTrip(t, ctx, repo, trip)

	byDriver, err := repo.OccupiedForMany(ctx, f.TenantID, domain.ResourceDriver,
		[]int64{f.DriverID, f.DriverID + 1000},
		domain.Interval{Start: at(8, 0), End: at(18, 0)})
	require.NoError(t, err)
	require.Len(t, byDriver, 1)
	require.Len(t, byDriver[f.DriverID], 1)
	require.Equal(t, trip.ID, byDriver[f.DriverID][0].TripID)
}

func TestTripRepo_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := seedTenant(t, ctx)
	repo := repository.NewTripRepo(tcPool)

	trip := f.trip(at(9, 0), at(11, 0))
	insertTrip(t, ctx, repo, trip)

	err := repo.WithTx(ctx, func(tx triptx.Repository) error {
		return tx.UpdateStatus(ctx, f.TenantID, trip.ID, domain.StatusActive)
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, f.TenantID, trip.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, got.Status)

	err = repo.WithTx(ctx, func(tx triptx.Repository) error {
		return tx.UpdateStatus(ctx, f.TenantID, 999999, domain.StatusActive)
	})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestTripRepo_WithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	f := seedTenant(t, ctx)
	repo := repository.NewTripRepo(tcPool)

	sentinel := errors.New("abort")
	trip := f.trip(at(9, 0), at(11, 0))
	err := repo.WithTx(ctx, func(tx triptx.Repository) error {
		if err := tx.Insert(ctx, trip); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	got, err := repo.Get(ctx, f.TenantID, trip.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestTripRepo_GetForUpdateLocksRow(t *testing.T) {
	ctx := context.Background()
	f := seedTenant(t, ctx)
	repo := repository.NewTripRepo(tcPool)

	trip := f.trip(at(9, 0), at(11, 0))
	insertTrip(t, ctx, repo, trip)

	err := repo.WithTx(ctx, func(tx triptx.Repository) error {
		got, err := tx.GetForUpdate(ctx, f.TenantID, trip.ID)
		if err != nil {
			return err
		}
		require.NotNil(t, got)
		require.Equal(t, trip.ID, got.ID)
		return nil
	})
	require.NoError(t, err)
}

func TestTripRepo_Assignments(t *testing.T) {
	ctx := context.Background()
	f := seedTenant(t, ctx)
	repo := repository.NewTripRepo(tcPool)

	pairs, err := repo.Assignments(ctx, f.TenantID, domain.VehicleVan)
	require.NoError(t, err)
	require.Equal(t, []domain.Assignment{{DriverID: f.DriverID, VehicleID: f.VehicleID}}, pairs)

	// inactive drivers drop out of the pairing set
	_, err = tcPool.Exec(ctx,
		`UPDATE drivers SET employment_status='inactive' WHERE id=$1`, f.DriverID)
	require.NoError(t, err)

	pairs, err = repo.Assignments(ctx, f.TenantID, domain.VehicleVan)
	require.NoError(t, err)
	require.Empty(t, pairs)
}
