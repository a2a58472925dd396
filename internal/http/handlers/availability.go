package handlers

import (
	"net/http"

	"fleet-dispatch-go/internal/domain"
)

// AvailabilityHandler serves HTTP endpoints for availability queries.
type AvailabilityHandler struct{ uc availabilityUsecase }

// NewAvailabilityHandler wires an availabilityUsecase into HTTP handlers.
func NewAvailabilityHandler(uc availabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc}
}

// Search handles POST /availability/search and returns the candidate
// resources free for the requested window.
func (h *AvailabilityHandler) Search(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromHeader(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	var req searchRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	kind := domain.ResourceKind(req.ResourceKind)
	if !kind.Valid() {
		writeError(w, r, http.StatusBadRequest, "invalid resource_kind")
		return
	}
	window := domain.Interval{Start: req.StartTime.UTC(), End: req.EndTime.UTC()}
	if !window.Valid() {
		writeError(w, r, http.StatusBadRequest, "end_time must be after start_time")
		return
	}

	ids, err := h.uc.ListAvailable(r.Context(), tenantID, kind, req.CandidateIDs, window)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	writeJSON(w, r, http.StatusOK, searchResponse{AvailableIDs: ids})
}

// AutoAssign handles POST /availability/auto-assign. 404 means no free
// driver/vehicle pairing exists for the window, not a routing miss.
func (h *AvailabilityHandler) AutoAssign(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromHeader(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	var req autoAssignRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	vt := domain.VehicleType(req.VehicleType)
	if !vt.Valid() {
		writeError(w, r, http.StatusBadRequest, "invalid vehicle_type")
		return
	}
	window := domain.Interval{Start: req.StartTime.UTC(), End: req.EndTime.UTC()}
	if !window.Valid() {
		writeError(w, r, http.StatusBadRequest, "end_time must be after start_time")
		return
	}

	pair, err := h.uc.AutoAssign(r.Context(), tenantID, vt, window)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if pair == nil {
		writeError(w, r, http.StatusNotFound, "no available driver and vehicle pairing")
		return
	}
	writeJSON(w, r, http.StatusOK, autoAssignResponse{DriverID: pair.DriverID, VehicleID: pair.VehicleID})
}
