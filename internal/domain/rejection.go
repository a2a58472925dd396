package domain

import (
	"fmt"
	"strings"

	"fleet-dispatch-go/internal/apperr"
)

// RejectionCode classifies why an admission check turned a request down.
type RejectionCode string

// List of rejection codes
const (
	RejectInvalidInterval         RejectionCode = "invalid_interval"
	RejectPastStartTime           RejectionCode = "past_start_time"
	RejectStartTimeTooFarOut      RejectionCode = "start_time_too_far_out"
	RejectDurationTooLong         RejectionCode = "duration_too_long"
	RejectResourceNotOwned        RejectionCode = "resource_not_owned"
	RejectDriverNotActive         RejectionCode = "driver_not_active"
	RejectVehicleNotAssigned      RejectionCode = "vehicle_not_assigned_to_driver"
	RejectDriverConflict          RejectionCode = "driver_conflict"
	RejectVehicleConflict         RejectionCode = "vehicle_conflict"
	RejectInvalidInitialStatus    RejectionCode = "invalid_initial_status"
	RejectInvalidStatusTransition RejectionCode = "invalid_status_transition"
)

// Rejection is one field-attributed reason a request was refused.
// Overlap rejections carry the conflicting trip's interval for display.
type Rejection struct {
	Code     RejectionCode
	Field    string
	Message  string
	Conflict *BusyInterval
}

// Rejections is the full structured outcome of a refused admission check.
// It is an error so services can return it through the usual error path,
// and it matches apperr.ErrInvalid under errors.Is.
type Rejections []Rejection

func (rs Rejections) Error() string {
	if len(rs) == 0 {
		return "rejected"
	}
	parts := make([]string, 0, len(rs))
	for _, r := range rs {
		parts = append(parts, fmt.Sprintf("%s: %s", r.Field, r.Code))
	}
	return "rejected: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, apperr.ErrInvalid) match a rejection set.
func (rs Rejections) Is(target error) bool {
	return target == apperr.ErrInvalid
}

// Reject builds a plain rejection.
func Reject(code RejectionCode, field, message string) Rejection {
	return Rejection{Code: code, Field: field, Message: message}
}

// RejectConflict builds an overlap rejection citing the busy interval that
// blocks the request.
func RejectConflict(code RejectionCode, field, kind string, busy BusyInterval) Rejection {
	msg := fmt.Sprintf("%s has a conflicting trip scheduled from %s to %s",
		kind,
		busy.Period.Start.Format(timeDisplay),
		busy.Period.End.Format(timeDisplay),
	)
	b := busy
	return Rejection{Code: code, Field: field, Message: msg, Conflict: &b}
}

const timeDisplay = "2006-01-02 15:04"
