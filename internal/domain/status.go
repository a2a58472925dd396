package domain

// transitions is the closed edge set of the trip status state machine.
// Completed and Cancelled are terminal: they have no outgoing edges.
var transitions = map[TripStatus][]TripStatus{
	StatusPlanned: {StatusActive, StatusCancelled},
	StatusActive:  {StatusCompleted, StatusCancelled},
}

// CanTransitionTo reports whether the status may move to next. Any pair
// outside the allowed set is rejected; there is no coercion.
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	for _, v := range transitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions.
func (s TripStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// Occupies reports whether a trip in this status blocks its driver and
// vehicle for the trip interval. Completed and cancelled trips free their
// resources: the trip either already happened or never will.
func (s TripStatus) Occupies() bool {
	return s == StatusPlanned || s == StatusActive
}
