package trips

import (
	"context"
	"fmt"

	"fleet-dispatch-go/internal/domain"
	"fleet-dispatch-go/internal/logx"
)

// Validate runs the full admission check for a proposed trip mutation and
// returns an enriched draft on success or a domain.Rejections error naming
// every surfaced reason. It is read-only and idempotent: validating the
// same request twice yields the same outcome with no hidden state.
//
// Checks run in order with fail-fast semantics, except the driver and
// vehicle overlap checks, which are evaluated together so the caller gets
// complete conflict diagnostics in one round.
func (s *Service) Validate(ctx context.Context, req domain.TripRequest) (*domain.Draft, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	draft, rejs, err := s.admit(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(rejs) > 0 {
		s.countRejections(rejs)
		s.logger.Info("trip rejected",
			logx.Int64("tenant_id", req.TenantID),
			logx.Int64("trip_id", req.TripID),
			logx.Any("reasons", rejs.Error()),
		)
		return nil, rejs
	}
	return draft, nil
}

func (s *Service) admit(ctx context.Context, req domain.TripRequest) (*domain.Draft, domain.Rejections, error) {
	// 1. temporal sanity
	if !req.Period.Valid() {
		return nil, domain.Rejections{domain.Reject(
			domain.RejectInvalidInterval, "end_time", "end time must be after start time",
		)}, nil
	}

	// 2. business window
	if rej := s.checkBusinessWindow(req); rej != nil {
		return nil, domain.Rejections{*rej}, nil
	}

	// 3. tenancy/ownership; misses for all three fields surface together
	client, driver, vehicle, rejs, err := s.checkOwnership(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	if len(rejs) > 0 {
		return nil, rejs, nil
	}

	// 4. driver eligibility
	if driver.EmploymentStatus != domain.EmploymentActive {
		return nil, domain.Rejections{domain.Reject(
			domain.RejectDriverNotActive, "driver_id",
			fmt.Sprintf("selected driver is not currently active (status: %s)", driver.EmploymentStatus),
		)}, nil
	}

	// 5. assignment
	assigned, err := s.refs.DriverHasVehicle(ctx, req.TenantID, req.DriverID, req.VehicleID)
	if err != nil {
		return nil, nil, err
	}
	if !assigned {
		return nil, domain.Rejections{domain.Reject(
			domain.RejectVehicleNotAssigned, "vehicle_id",
			"the selected vehicle is not assigned to the selected driver",
		)}, nil
	}

	// 6. overlaps, driver and vehicle jointly; the requested status is not
	// consulted here, so even a request that would not occupy its slot is
	// refused over a busy one
	overlapRejs, err := s.checkOverlaps(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	if len(overlapRejs) > 0 {
		return nil, overlapRejs, nil
	}

	// 7. status admission
	status := req.Status
	if status == "" {
		status = domain.StatusPlanned
	}
	if rej := checkRequestedStatus(req.TripID, status); rej != nil {
		return nil, domain.Rejections{*rej}, nil
	}
	req.Status = status

	return s.enrich(req, client, driver, vehicle), nil, nil
}

func (s *Service) checkBusinessWindow(req domain.TripRequest) *domain.Rejection {
	now := s.now()

	if req.Period.Start.Before(now.Add(-s.rules.PastGrace)) {
		r := domain.Reject(domain.RejectPastStartTime, "start_time",
			"trip cannot be scheduled in the past")
		return &r
	}
	if req.ClientBooked && s.rules.BookingHorizon > 0 &&
		req.Period.Start.After(now.Add(s.rules.BookingHorizon)) {
		r := domain.Reject(domain.RejectStartTimeTooFarOut, "start_time",
			fmt.Sprintf("start time cannot be more than %s in the future", s.rules.BookingHorizon))
		return &r
	}
	if s.rules.MaxDuration > 0 && req.Period.Duration() > s.rules.MaxDuration {
		r := domain.Reject(domain.RejectDurationTooLong, "end_time",
			fmt.Sprintf("trip duration cannot exceed %s", s.rules.MaxDuration))
		return &r
	}
	return nil
}

func (s *Service) checkOwnership(ctx context.Context, req domain.TripRequest) (*domain.Client, *domain.Driver, *domain.Vehicle, domain.Rejections, error) {
	var rejs domain.Rejections

	var client *domain.Client
	if req.ClientID != nil {
		c, err := s.refs.Client(ctx, req.TenantID, *req.ClientID)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		if c == nil {
			rejs = append(rejs, domain.Reject(domain.RejectResourceNotOwned, "client_id",
				"invalid client selected or client does not belong to your account"))
		}
		client = c
	}

	driver, err := s.refs.Driver(ctx, req.TenantID, req.DriverID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if driver == nil {
		rejs = append(rejs, domain.Reject(domain.RejectResourceNotOwned, "driver_id",
			"invalid driver selected or driver does not belong to your account"))
	}

	vehicle, err := s.refs.Vehicle(ctx, req.TenantID, req.VehicleID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if vehicle == nil {
		rejs = append(rejs, domain.Reject(domain.RejectResourceNotOwned, "vehicle_id",
			"invalid vehicle selected or vehicle does not belong to your account"))
	}

	return client, driver, vehicle, rejs, nil
}

func (s *Service) checkOverlaps(ctx context.Context, req domain.TripRequest) (domain.Rejections, error) {
	var rejs domain.Rejections

	driverBusy, err := s.index.Occupied(ctx, domain.OccupancyQuery{
		TenantID:      req.TenantID,
		Kind:          domain.ResourceDriver,
		ResourceID:    req.DriverID,
		Window:        req.Period,
		ExcludeTripID: req.TripID,
	})
	if err != nil {
		return nil, err
	}
	if driverBusy != nil {
		rejs = append(rejs, domain.RejectConflict(
			domain.RejectDriverConflict, "driver_id", "driver", *driverBusy))
	}

	vehicleBusy, err := s.index.Occupied(ctx, domain.OccupancyQuery{
		TenantID:      req.TenantID,
		Kind:          domain.ResourceVehicle,
		ResourceID:    req.VehicleID,
		Window:        req.Period,
		ExcludeTripID: req.TripID,
	})
	if err != nil {
		return nil, err
	}
	if vehicleBusy != nil {
		rejs = append(rejs, domain.RejectConflict(
			domain.RejectVehicleConflict, "vehicle_id", "vehicle", *vehicleBusy))
	}

	return rejs, nil
}

// checkRequestedStatus enforces the creation-time status rule: active and
// completed are lifecycle-only states, never creation values.
func checkRequestedStatus(tripID int64, status domain.TripStatus) *domain.Rejection {
	if !status.Valid() {
		r := domain.Reject(domain.RejectInvalidInitialStatus, "status",
			fmt.Sprintf("invalid trip status %q", status))
		return &r
	}
	if tripID == 0 && status != domain.StatusPlanned && status != domain.StatusCancelled {
		r := domain.Reject(domain.RejectInvalidInitialStatus, "status",
			"new trips can only be created with planned or cancelled status")
		return &r
	}
	return nil
}

// enrich copies the vehicle type onto the draft and fills in a default
// description when the request carries none.
func (s *Service) enrich(req domain.TripRequest, client *domain.Client, driver *domain.Driver, vehicle *domain.Vehicle) *domain.Draft {
	draft := &domain.Draft{TripRequest: req, VehicleType: vehicle.Type}
	if draft.Description == "" {
		hours := int(req.Period.Duration().Hours())
		if client != nil {
			draft.Description = fmt.Sprintf("Trip for %s with driver %s (%dh duration)",
				client.Name, driver.Name, hours)
		} else {
			draft.Description = fmt.Sprintf("Trip with driver %s (%dh duration)",
				driver.Name, hours)
		}
	}
	return draft
}
