package kafka

import (
	"strings"
	"time"

	"fleet-dispatch-go/internal/domain"
	"fleet-dispatch-go/internal/service/hr"
)

// EventDTO is a data transfer object for hr.Event
type EventDTO struct {
	TenantID         int64     `json:"tenant_id"`
	DriverID         int64     `json:"driver_id"`
	EmploymentStatus string    `json:"employment_status"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// ToDomain converts EventDTO to hr.Event
func ToDomain(dto EventDTO) hr.Event {
	return hr.Event{
		TenantID:         dto.TenantID,
		DriverID:         dto.DriverID,
		EmploymentStatus: domain.EmploymentStatus(strings.TrimSpace(dto.EmploymentStatus)),
		OccurredAt:       dto.OccurredAt,
	}
}
