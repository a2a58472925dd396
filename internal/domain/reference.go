package domain

// Client is the party a trip is performed for. Owned by a tenant; only the
// identity and name are read by the scheduling core.
type Client struct {
	ID       int64
	TenantID int64
	Name     string
}

// Driver is a bookable human resource. Mutated by external HR flows; the
// core reads the employment status and the assigned-vehicle set.
type Driver struct {
	ID               int64
	TenantID         int64
	Name             string
	EmploymentStatus EmploymentStatus
}

// Vehicle is a bookable physical resource.
type Vehicle struct {
	ID       int64
	TenantID int64
	Name     string
	Type     VehicleType
	Active   bool
}
