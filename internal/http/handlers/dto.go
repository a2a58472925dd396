package handlers

import "time"

type tripRequestDTO struct {
	ClientID     *int64    `json:"client_id,omitempty"`
	DriverID     int64     `json:"driver_id"`
	VehicleID    int64     `json:"vehicle_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status,omitempty"`
	Description  string    `json:"description,omitempty"`
	ClientBooked bool      `json:"client_booked,omitempty"`
}

// validateRequestDTO is a tripRequestDTO plus the optional id of an
// existing trip. Edit forms send trip_id so the dry run excludes the
// trip's own interval from overlap comparison.
type validateRequestDTO struct {
	tripRequestDTO
	TripID int64 `json:"trip_id,omitempty"`
}

type tripDTO struct {
	ID          int64     `json:"id"`
	ClientID    *int64    `json:"client_id,omitempty"`
	DriverID    int64     `json:"driver_id"`
	VehicleID   int64     `json:"vehicle_id"`
	VehicleType string    `json:"vehicle_type"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type conflictDTO struct {
	TripID    int64     `json:"trip_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type rejectionDTO struct {
	Code     string       `json:"code"`
	Field    string       `json:"field"`
	Message  string       `json:"message"`
	Conflict *conflictDTO `json:"conflict,omitempty"`
}

type validateResponse struct {
	Valid      bool           `json:"valid"`
	Rejections []rejectionDTO `json:"rejections,omitempty"`
}

type transitionRequest struct {
	Status string `json:"status"`
}

type searchRequest struct {
	ResourceKind string    `json:"resource_kind"`
	CandidateIDs []int64   `json:"candidate_ids"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
}

type searchResponse struct {
	AvailableIDs []int64 `json:"available_ids"`
}

type autoAssignRequest struct {
	VehicleType string    `json:"vehicle_type"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

type autoAssignResponse struct {
	DriverID  int64 `json:"driver_id"`
	VehicleID int64 `json:"vehicle_id"`
}
