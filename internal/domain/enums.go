package domain

type (
	// TripStatus represents the lifecycle state of a trip.
	TripStatus string
	// EmploymentStatus represents whether a driver may take new trips.
	EmploymentStatus string
	// VehicleType classifies a vehicle for assignment and filtering.
	VehicleType string
	// ResourceKind names one of the two bookable resources a trip occupies.
	ResourceKind string
)

// List of possible trip statuses
const (
	StatusPlanned   TripStatus = "planned"
	StatusActive    TripStatus = "active"
	StatusCompleted TripStatus = "completed"
	StatusCancelled TripStatus = "cancelled"
)

// List of possible driver employment statuses
const (
	EmploymentActive   EmploymentStatus = "active"
	EmploymentInactive EmploymentStatus = "inactive"
)

// List of possible vehicle types
const (
	VehicleCar   VehicleType = "car"
	VehicleVan   VehicleType = "van"
	VehicleTruck VehicleType = "truck"
	VehicleBus   VehicleType = "bus"
)

// List of bookable resource kinds
const (
	ResourceDriver  ResourceKind = "driver"
	ResourceVehicle ResourceKind = "vehicle"
)

var allowedStatuses = [...]TripStatus{
	StatusPlanned, StatusActive, StatusCompleted, StatusCancelled,
}

var allowedEmploymentStatuses = [...]EmploymentStatus{
	EmploymentActive, EmploymentInactive,
}

var allowedVehicleTypes = [...]VehicleType{
	VehicleCar, VehicleVan, VehicleTruck, VehicleBus,
}

// Valid checks if the TripStatus is valid
func (s TripStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the EmploymentStatus is valid
func (s EmploymentStatus) Valid() bool {
	for _, v := range allowedEmploymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the VehicleType is valid
func (t VehicleType) Valid() bool {
	for _, v := range allowedVehicleTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Valid checks if the ResourceKind is valid
func (k ResourceKind) Valid() bool {
	return k == ResourceDriver || k == ResourceVehicle
}
