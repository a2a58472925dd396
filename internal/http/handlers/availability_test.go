package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"fleet-dispatch-go/internal/domain"
	"fleet-dispatch-go/internal/http/handlers"
)

type stubAvailabilityUsecase struct {
	listFn   func(ctx context.Context, tenantID int64, kind domain.ResourceKind, candidateIDs []int64, window domain.Interval) ([]int64, error)
	assignFn func(ctx context.Context, tenantID int64, vt domain.VehicleType, window domain.Interval) (*domain.Assignment, error)
}

func (s *stubAvailabilityUsecase) ListAvailable(ctx context.Context, tenantID int64, kind domain.ResourceKind, candidateIDs []int64, window domain.Interval) ([]int64, error) {
	return s.listFn(ctx, tenantID, kind, candidateIDs, window)
}

func (s *stubAvailabilityUsecase) AutoAssign(ctx context.Context, tenantID int64, vt domain.VehicleType, window domain.Interval) (*domain.Assignment, error) {
	return s.assignFn(ctx, tenantID, vt, window)
}

func TestAvailabilityHandler_Search(t *testing.T) {
	t.Parallel()

	uc := &stubAvailabilityUsecase{
		listFn: func(_ context.Context, tenantID int64, kind domain.ResourceKind, ids []int64, _ domain.Interval) ([]int64, error) {
			require.Equal(t, int64(1), tenantID)
			require.Equal(t, domain.ResourceDriver, kind)
			require.Equal(t, []int64{1, 2, 3}, ids)
			return []int64{1, 3}, nil
		},
	}
	h := handlers.NewAvailabilityHandler(uc)

	body := `{
		"resource_kind": "driver",
		"candidate_ids": [1, 2, 3],
		"start_time": "2026-03-10T13:00:00Z",
		"end_time": "2026-03-10T15:00:00Z"
	}`
	rr := httptest.NewRecorder()
	h.Search(rr, newTripRequest(http.MethodPost, "/availability/search", body))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		AvailableIDs []int64 `json:"available_ids"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, []int64{1, 3}, resp.AvailableIDs)
}

func TestAvailabilityHandler_Search_EmptyResultIsNotNull(t *testing.T) {
	t.Parallel()

	uc := &stubAvailabilityUsecase{
		listFn: func(context.Context, int64, domain.ResourceKind, []int64, domain.Interval) ([]int64, error) {
			return nil, nil
		},
	}
	h := handlers.NewAvailabilityHandler(uc)

	body := `{
		"resource_kind": "vehicle",
		"candidate_ids": [9],
		"start_time": "2026-03-10T13:00:00Z",
		"end_time": "2026-03-10T15:00:00Z"
	}`
	rr := httptest.NewRecorder()
	h.Search(rr, newTripRequest(http.MethodPost, "/availability/search", body))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"available_ids":[]`)
}

func TestAvailabilityHandler_Search_BadInput(t *testing.T) {
	t.Parallel()

	h := handlers.NewAvailabilityHandler(&stubAvailabilityUsecase{
		listFn: func(context.Context, int64, domain.ResourceKind, []int64, domain.Interval) ([]int64, error) {
			require.FailNow(t, "usecase must not be called for invalid input")
			return nil, nil
		},
	})

	cases := []struct {
		name string
		body string
	}{
		{
			name: "unknown resource kind",
			body: `{"resource_kind":"boat","candidate_ids":[1],"start_time":"2026-03-10T13:00:00Z","end_time":"2026-03-10T15:00:00Z"}`,
		},
		{
			name: "inverted window",
			body: `{"resource_kind":"driver","candidate_ids":[1],"start_time":"2026-03-10T15:00:00Z","end_time":"2026-03-10T13:00:00Z"}`,
		},
		{
			name: "empty window",
			body: `{"resource_kind":"driver","candidate_ids":[1],"start_time":"2026-03-10T13:00:00Z","end_time":"2026-03-10T13:00:00Z"}`,
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			h.Search(rr, newTripRequest(http.MethodPost, "/availability/search", tc.body))
			require.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestAvailabilityHandler_AutoAssign(t *testing.T) {
	t.Parallel()

	uc := &stubAvailabilityUsecase{
		assignFn: func(_ context.Context, tenantID int64, vt domain.VehicleType, _ domain.Interval) (*domain.Assignment, error) {
			require.Equal(t, int64(1), tenantID)
			require.Equal(t, domain.VehicleVan, vt)
			return &domain.Assignment{DriverID: 2, VehicleID: 20}, nil
		},
	}
	h := handlers.NewAvailabilityHandler(uc)

	body := `{"vehicle_type":"van","start_time":"2026-03-10T13:00:00Z","end_time":"2026-03-10T15:00:00Z"}`
	rr := httptest.NewRecorder()
	h.AutoAssign(rr, newTripRequest(http.MethodPost, "/availability/auto-assign", body))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"driver_id":2`)
	require.Contains(t, rr.Body.String(), `"vehicle_id":20`)
}

func TestAvailabilityHandler_AutoAssign_NoPairing(t *testing.T) {
	t.Parallel()

	uc := &stubAvailabilityUsecase{
		assignFn: func(context.Context, int64, domain.VehicleType, domain.Interval) (*domain.Assignment, error) {
			return nil, nil
		},
	}
	h := handlers.NewAvailabilityHandler(uc)

	body := `{"vehicle_type":"truck","start_time":"2026-03-10T13:00:00Z","end_time":"2026-03-10T15:00:00Z"}`
	rr := httptest.NewRecorder()
	h.AutoAssign(rr, newTripRequest(http.MethodPost, "/availability/auto-assign", body))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAvailabilityHandler_AutoAssign_InternalError(t *testing.T) {
	t.Parallel()

	uc := &stubAvailabilityUsecase{
		assignFn: func(context.Context, int64, domain.VehicleType, domain.Interval) (*domain.Assignment, error) {
			return nil, errors.New("db down")
		},
	}
	h := handlers.NewAvailabilityHandler(uc)

	body := `{"vehicle_type":"van","start_time":"2026-03-10T13:00:00Z","end_time":"2026-03-10T15:00:00Z"}`
	rr := httptest.NewRecorder()
	h.AutoAssign(rr, newTripRequest(http.MethodPost, "/availability/auto-assign", body))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}
