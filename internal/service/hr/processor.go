package hr

import (
	"context"
	"fmt"
	"time"

	"fleet-dispatch-go/internal/domain"
	"fleet-dispatch-go/internal/logx"
)

// Event is a driver employment status change coming from the HR stream.
type Event struct {
	TenantID         int64
	DriverID         int64
	EmploymentStatus domain.EmploymentStatus
	OccurredAt       time.Time
}

// driverStatusWriter applies employment status changes to driver records.
type driverStatusWriter interface {
	UpdateDriverEmploymentStatus(ctx context.Context, tenantID, driverID int64, status domain.EmploymentStatus) (bool, error)
}

// Processor applies HR employment events to the driver roster. A driver
// marked inactive stops passing trip validation; existing trips are left
// untouched.
type Processor struct {
	writer           driverStatusWriter
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewProcessor creates an HR event processor.
func NewProcessor(writer driverStatusWriter, timeout time.Duration, logger logx.Logger) *Processor {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Processor{writer: writer, operationTimeout: timeout, logger: logger}
}

// Process applies one employment status event. Events for unknown drivers
// are skipped, not retried.
func (p *Processor) Process(ctx context.Context, ev Event) error {
	ctx, cancel := context.WithTimeout(ctx, p.operationTimeout)
	defer cancel()

	if ev.TenantID <= 0 || ev.DriverID <= 0 {
		return fmt.Errorf("hr event missing tenant_id or driver_id")
	}
	if !ev.EmploymentStatus.Valid() {
		return fmt.Errorf("hr event has unknown employment status %q", ev.EmploymentStatus)
	}

	updated, err := p.writer.UpdateDriverEmploymentStatus(ctx, ev.TenantID, ev.DriverID, ev.EmploymentStatus)
	if err != nil {
		return fmt.Errorf("update driver employment status: %w", err)
	}
	if !updated {
		p.logger.Warn("hr event for unknown driver, skipping",
			logx.Int64("tenant_id", ev.TenantID),
			logx.Int64("driver_id", ev.DriverID),
		)
		return nil
	}

	p.logger.Info("driver employment status updated",
		logx.Int64("tenant_id", ev.TenantID),
		logx.Int64("driver_id", ev.DriverID),
		logx.String("employment_status", string(ev.EmploymentStatus)),
	)
	return nil
}
