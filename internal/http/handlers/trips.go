package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"fleet-dispatch-go/internal/apperr"
	"fleet-dispatch-go/internal/domain"
)

// TripHandler serves HTTP endpoints for trip scheduling.
type TripHandler struct{ uc tripUsecase }

// NewTripHandler wires a tripUsecase into HTTP handlers.
func NewTripHandler(uc tripUsecase) *TripHandler { return &TripHandler{uc: uc} }

// Validate handles POST /trips/validate. It is a dry run: the outcome is
// reported in the body with status 200 either way and nothing is persisted.
// Edit forms carry trip_id in the body so the trip's own interval is
// excluded from overlap comparison; create forms omit it.
func (h *TripHandler) Validate(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromHeader(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	var req validateRequestDTO
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	_, err = h.uc.Validate(r.Context(), req.toModel(tenantID, req.TripID))
	var rejs domain.Rejections
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, validateResponse{Valid: true})
	case errors.As(err, &rejs):
		writeJSON(w, r, http.StatusOK, validateResponse{Valid: false, Rejections: rejectionsToResponse(rejs)})
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// Create handles POST /trips.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromHeader(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	var req tripRequestDTO
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	trip, err := h.uc.Schedule(r.Context(), req.toModel(tenantID, 0))
	var rejs domain.Rejections
	switch {
	case err == nil:
		w.Header().Set("Location", "/trips/"+strconv.FormatInt(trip.ID, 10))
		writeJSON(w, r, http.StatusCreated, tripToResponse(trip))
	case errors.As(err, &rejs):
		writeJSON(w, r, http.StatusUnprocessableEntity, validateResponse{Valid: false, Rejections: rejectionsToResponse(rejs)})
	case errors.Is(err, apperr.ErrConflict):
		writeError(w, r, http.StatusConflict, "resource was booked concurrently, re-run validation")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PUT /trips/{id}. The trip's own interval never conflicts
// with itself, so shrinking or shifting a booking works in one call.
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromHeader(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	tripID, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req tripRequestDTO
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	trip, err := h.uc.Schedule(r.Context(), req.toModel(tenantID, tripID))
	var rejs domain.Rejections
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, tripToResponse(trip))
	case errors.As(err, &rejs):
		writeJSON(w, r, http.StatusUnprocessableEntity, validateResponse{Valid: false, Rejections: rejectionsToResponse(rejs)})
	case errors.Is(err, apperr.ErrConflict):
		writeError(w, r, http.StatusConflict, "resource was booked concurrently, re-run validation")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// Transition handles POST /trips/{id}/status.
func (h *TripHandler) Transition(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromHeader(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	tripID, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req transitionRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	trip, err := h.uc.TransitionStatus(r.Context(), tenantID, tripID, domain.TripStatus(req.Status))
	var rejs domain.Rejections
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, tripToResponse(trip))
	case errors.As(err, &rejs):
		writeJSON(w, r, http.StatusUnprocessableEntity, validateResponse{Valid: false, Rejections: rejectionsToResponse(rejs)})
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// Delete handles DELETE /trips/{id}.
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenantFromHeader(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	tripID, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.uc.Delete(r.Context(), tenantID, tripID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
